package metrics

import (
	"boxes/game"
	"time"
)

// MatchConfig describes one pairing of strategies on a board size.
type MatchConfig struct {
	ID      int
	Player1 string // Strategy name
	Player2 string // Strategy name
	Width   int
	Height  int
	Seed    uint64
}

type MoveMetric struct {
	Step     int
	Player   string
	Move     game.Move
	Claimed  int // Cells claimed by this move
	Filled   int // Fill counter after the move
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	Score          game.Score
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(startingPlayer game.Player)
	AddMove(MoveMetric)
	Complete(outcome game.Outcome, score game.Score) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer game.Player
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer game.Player) {
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(m MoveMetric) {
	c.moves = append(c.moves, m)
}

func (c *collector) Complete(outcome game.Outcome, score game.Score) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer.String(),
		Winner:         outcome.String(),
		Score:          score,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
	}, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(startingPlayer game.Player) {}
func (c *dummyCollector) AddMove(m MoveMetric)             {}
func (c *dummyCollector) Complete(outcome game.Outcome, score game.Score) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
