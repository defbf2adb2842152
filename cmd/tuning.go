package cmd

import (
	"errors"
	"fmt"
	"os"

	"fleetplan/internal/core/domain/model/plan"
	"fleetplan/internal/core/domain/services"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML search configuration. Missing keys keep their defaults.
//
//	strategy: greedy
//	search:
//	  max_iterations: 5000
//	  acceptance: annealing
//	  initial_temperature: 50
//	  cooling: 0.995
//	  max_stall: 1000
type Tuning struct {
	Strategy string       `yaml:"strategy"`
	Search   SearchTuning `yaml:"search"`
}

type SearchTuning struct {
	MaxIterations      int     `yaml:"max_iterations"`
	Acceptance         string  `yaml:"acceptance"`
	InitialTemperature float64 `yaml:"initial_temperature"`
	Cooling            float64 `yaml:"cooling"`
	MaxStall           int     `yaml:"max_stall"`
}

// DefaultTuning mirrors services.DefaultSearchOptions with the greedy strategy.
func DefaultTuning() Tuning {
	defaults := services.DefaultSearchOptions()
	return Tuning{
		Strategy: plan.StrategyGreedy.String(),
		Search: SearchTuning{
			MaxIterations:      defaults.MaxIterations,
			Acceptance:         defaults.Acceptance.String(),
			InitialTemperature: defaults.InitialTemperature,
			Cooling:            defaults.Cooling,
			MaxStall:           defaults.MaxStall,
		},
	}
}

// LoadTuning reads path over DefaultTuning. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err = yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// PlanStrategy parses the configured initial-plan strategy.
func (t Tuning) PlanStrategy() (plan.Strategy, error) {
	return plan.ParseStrategy(t.Strategy)
}

// SearchOptions converts the tuning and validates the result.
func (t Tuning) SearchOptions() (services.SearchOptions, error) {
	acceptance, err := services.ParseAcceptance(t.Search.Acceptance)
	if err != nil {
		return services.SearchOptions{}, err
	}

	options := services.SearchOptions{
		MaxIterations:      t.Search.MaxIterations,
		Acceptance:         acceptance,
		InitialTemperature: t.Search.InitialTemperature,
		Cooling:            t.Search.Cooling,
		MaxStall:           t.Search.MaxStall,
	}
	if err = options.Validate(); err != nil {
		return services.SearchOptions{}, errors.Join(errors.New("invalid search tuning"), err)
	}
	return options, nil
}
