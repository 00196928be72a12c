package engine

import (
	"boxes/experiments/metrics"
	"boxes/game"
)

type Engine interface {
	// Run plays turns until every cell is claimed
	Run() (Result, error)
}

// Result summarizes a finished game.
type Result struct {
	Outcome game.Outcome
	Score   game.Score
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}
