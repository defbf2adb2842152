package cmd

import (
	"fmt"
	"strconv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ReplanningSchedule is a six-field cron expression; empty means the job default.
	ReplanningSchedule string
	// SearchSeed seeds the planner generators; empty means 1.
	SearchSeed string
	// TuningPath points to an optional YAML file with the search tuning.
	TuningPath string
}

// DSN builds the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Seed parses SearchSeed.
func (c Config) Seed() (uint64, error) {
	if c.SearchSeed == "" {
		return 1, nil
	}
	seed, err := strconv.ParseUint(c.SearchSeed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("SEARCH_SEED: %w", err)
	}
	return seed, nil
}
