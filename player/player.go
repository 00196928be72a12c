package player

import (
	"boxes/game"
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

var (
	ErrNoMoves         = errors.New("no open edges left")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

const (
	RandomStrategy = "random"
	GreedyStrategy = "greedy"
)

// Player picks the next move for one side of the game. It only reads the
// board; the engine applies the move.
type Player interface {
	Name() string
	Move(view game.View, p game.Player) (game.Move, error)
}

// New creates a player for the named strategy, seeded for reproducible games.
func New(strategy string, seed uint64) (Player, error) {
	switch strategy {
	case RandomStrategy:
		return NewRandomPlayer(seed), nil
	case GreedyStrategy:
		return NewGreedyPlayer(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
}

// RandomPlayer draws a uniformly random open edge.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomPlayer) Name() string {
	return RandomStrategy
}

func (r *RandomPlayer) Move(view game.View, p game.Player) (game.Move, error) {
	moves := view.LegalMoves(p)
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
