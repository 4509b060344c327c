package model

import "time"

// Outcome values recorded for each generation attempt.
const (
	OutcomeGenerated        = "generated"
	OutcomeNoClasses        = "no_classes"
	OutcomeInsufficientPool = "insufficient_pool"
	OutcomeInvalidLength    = "invalid_length"
)

// GenerationEvent records the parameters and outcome of one generation
// attempt. The generated string is never part of it.
type GenerationEvent struct {
	ID           int64
	Classes      string // comma separated class names
	Length       int
	AllowRepeats bool
	Outcome      string
	CreatedAt    time.Time
}

// OutcomeStats aggregates events sharing an outcome.
type OutcomeStats struct {
	Count         int64   `json:"count"`
	AverageLength float64 `json:"average_length"`
}

// StatsResponse represents the generation statistics response.
type StatsResponse struct {
	Total     int64                   `json:"total"`
	ByOutcome map[string]OutcomeStats `json:"by_outcome"`
}
