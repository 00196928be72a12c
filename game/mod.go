package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrOutOfBounds       = errors.New("out of bounds")
	ErrUnknownPlayer     = errors.New("unknown player")
)

// ConsistencyViolation reports a drawn edge whose mirrored copy on the
// neighboring cell is missing. It indicates a corrupted board.
type ConsistencyViolation struct {
	X, Y      int
	Direction Direction
}

func (v *ConsistencyViolation) Error() string {
	return fmt.Sprintf("consistency violation: cell (%d, %d) has %s drawn but neighbor is missing %s",
		v.X, v.Y, v.Direction, v.Direction.Opposite())
}

// View is the read-only side of a board handed to move sources.
type View interface {
	Width() int
	Height() int
	IsEdgeOpen(x, y int, d Direction) (bool, error)
	Cell(x, y int) (Cell, error)
	LegalMoves(p Player) []Move
}

type Outcome int

const (
	Tie Outcome = iota
	PlayerAWins
	PlayerBWins
)

func (o Outcome) String() string {
	switch o {
	case PlayerAWins:
		return PlayerA.String()
	case PlayerBWins:
		return PlayerB.String()
	}
	return "Tie"
}

// Score holds the number of cells claimed by each player.
type Score struct {
	A int
	B int
}

// Outcome compares claimed cells. Higher count wins, equal counts tie.
func (s Score) Outcome() Outcome {
	switch {
	case s.A > s.B:
		return PlayerAWins
	case s.B > s.A:
		return PlayerBWins
	}
	return Tie
}
