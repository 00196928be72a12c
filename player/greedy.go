package player

import (
	"boxes/game"

	"golang.org/x/exp/slices"
)

// GreedyPlayer completes a cell whenever one has three edges drawn and falls
// back to a random open edge otherwise.
type GreedyPlayer struct {
	fallback *RandomPlayer
}

func NewGreedyPlayer(seed uint64) *GreedyPlayer {
	return &GreedyPlayer{fallback: NewRandomPlayer(seed)}
}

func (g *GreedyPlayer) Name() string {
	return GreedyStrategy
}

func (g *GreedyPlayer) Move(view game.View, p game.Player) (game.Move, error) {
	moves := view.LegalMoves(p)
	i := slices.IndexFunc(moves, func(m game.Move) bool {
		c, err := view.Cell(m.X, m.Y)
		return err == nil && !c.Owner().Claimed() && c.DrawnEdges() == 3
	})
	if i >= 0 {
		return moves[i], nil
	}
	return g.fallback.Move(view, p)
}
