package ports

import (
	"context"
	"time"
)

// SearchSummary describes one finished optimization run.
type SearchSummary struct {
	Strategy      string
	Acceptance    string
	Tasks         int
	Iterations    int
	Improvements  int
	AcceptedWorse int
	InitialCost   float64
	BestCost      float64
	Duration      time.Duration
}

// SearchObserver is notified after every optimization run, e.g. to export metrics.
type SearchObserver interface {
	ObserveSearch(ctx context.Context, summary SearchSummary)
}
