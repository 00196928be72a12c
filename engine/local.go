package engine

import (
	"boxes/experiments/metrics"
	"boxes/game"
	"boxes/player"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrIllegalMove = errors.New("illegal move")

type Option func(e *LocalEngine)

func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.metrics = metrics.NewCollector()
	}
}

// WithStartingPlayer picks who moves first. Player1 starts by default.
func WithStartingPlayer(p game.Player) Option {
	return func(e *LocalEngine) {
		if p.Valid() {
			e.starting = p
		}
	}
}

type LocalEngine struct {
	Board    *game.Board
	Players  [2]player.Player
	starting game.Player
	metrics  metrics.Collector
}

func NewLocalEngine(board *game.Board, players []player.Player, options ...Option) *LocalEngine {
	if board == nil {
		panic("board is required")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}
	e := &LocalEngine{
		Board:    board,
		Players:  [2]player.Player{players[0], players[1]},
		starting: game.PlayerA,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run alternates turns until the board is full. The board is checked for
// consistency after every move; a violation panics since the board can no
// longer be trusted.
func (e *LocalEngine) Run() (Result, error) {
	current := e.starting
	// Every move closes at least one open oriented edge
	maxTurns := len(e.Board.LegalMoves(current))

	log.Info().Msgf("%s (%s) is starting on a %dx%d board",
		current, e.Players[current].Name(), e.Board.Width(), e.Board.Height())
	e.metrics.Start(current)

	turn := 1
	for !e.Board.IsFull() {
		if turn > maxTurns {
			return Result{}, fmt.Errorf("game did not finish after %d turns", maxTurns)
		}

		start := time.Now()
		move, claimed, err := e.play(current)
		if err != nil {
			return Result{}, err
		}
		if err := e.Board.CheckConsistency(); err != nil {
			panic(err)
		}

		e.metrics.AddMove(metrics.MoveMetric{
			Step:     turn,
			Player:   current.String(),
			Move:     move,
			Claimed:  claimed,
			Filled:   e.Board.Filled(),
			Duration: time.Since(start),
		})
		log.Debug().
			Int("turn", turn).
			Stringer("move", move).
			Int("claimed", claimed).
			Int("filled", e.Board.Filled()).
			Msg("move applied")
		if ev := log.Debug(); ev.Enabled() {
			ev.Msgf("\n%s", e.Board)
		}

		current = current.Other()
		turn++
	}

	score := e.Board.CountByOwner()
	outcome := score.Outcome()
	log.Info().Msgf("game over after %d turns, winner: %s (%d to %d)", turn-1, outcome, score.A, score.B)

	gameMetric, moveMetrics := e.metrics.Complete(outcome, score)
	return Result{
		Outcome: outcome,
		Score:   score,
		Game:    gameMetric,
		Moves:   moveMetrics,
	}, nil
}

func (e *LocalEngine) play(current game.Player) (game.Move, int, error) {
	source := e.Players[current]
	move, err := source.Move(e.Board, current)
	if err != nil {
		return move, 0, fmt.Errorf("%s (%s) failed to move: %w", current, source.Name(), err)
	}
	if move.Player != current {
		return move, 0, fmt.Errorf("%w: %s played for %s", ErrIllegalMove, current, move.Player)
	}

	open, err := e.Board.IsEdgeOpen(move.X, move.Y, move.Direction)
	if err != nil {
		return move, 0, fmt.Errorf("%w: %s: %w", ErrIllegalMove, move, err)
	}
	if !open {
		log.Error().Stringer("move", move).Str("strategy", source.Name()).Msg("edge already drawn")
		return move, 0, fmt.Errorf("%w: %s: edge already drawn", ErrIllegalMove, move)
	}

	claimed, err := e.Board.ApplyMove(move)
	if err != nil {
		return move, 0, fmt.Errorf("apply %s: %w", move, err)
	}
	return move, claimed, nil
}
