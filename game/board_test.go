package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, width, height int) *Board {
	t.Helper()
	b, err := NewBoard(width, height)
	require.NoError(t, err)
	return b
}

func apply(t *testing.T, b *Board, m Move) int {
	t.Helper()
	claimed, err := b.ApplyMove(m)
	require.NoError(t, err)
	return claimed
}

// completeCells counts the cells with all four edges drawn.
func completeCells(b *Board) int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c.Complete() {
				n++
			}
		}
	}
	return n
}

func TestNewBoard(t *testing.T) {
	t.Run("rejects zero dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-1, 2}} {
			b, err := NewBoard(dims[0], dims[1])
			require.Nil(t, b)
			require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		}
	})

	t.Run("starts with every edge open and no owner", func(t *testing.T) {
		b := newBoard(t, 3, 2)

		require.Equal(t, 3, b.Width())
		require.Equal(t, 2, b.Height())
		require.Equal(t, 6, b.Total())
		require.Equal(t, 0, b.Filled())
		require.False(t, b.IsFull())
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				c, err := b.Cell(x, y)
				require.NoError(t, err)
				require.Equal(t, 0, c.DrawnEdges())
				require.False(t, c.Owner().Claimed())
				for _, d := range Directions {
					open, err := b.IsEdgeOpen(x, y, d)
					require.NoError(t, err)
					require.True(t, open)
				}
			}
		}
		require.Equal(t, Score{}, b.CountByOwner())
	})
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, South, North.Opposite())
	require.Equal(t, North, South.Opposite())
	require.Equal(t, West, East.Opposite())
	require.Equal(t, East, West.Opposite())
	for _, d := range Directions {
		require.Equal(t, d, d.Opposite().Opposite())
	}
	require.False(t, Direction(4).Valid())
	require.False(t, Direction(-1).Valid())
}

func TestIsEdgeOpen(t *testing.T) {
	b := newBoard(t, 2, 2)

	t.Run("rejects coordinates outside the board", func(t *testing.T) {
		for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
			_, err := b.IsEdgeOpen(xy[0], xy[1], North)
			require.ErrorIs(t, err, ErrOutOfBounds, "cell %v", xy)
		}
	})

	t.Run("rejects non canonical directions", func(t *testing.T) {
		_, err := b.IsEdgeOpen(0, 0, Direction(7))
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("reports drawn edges as closed", func(t *testing.T) {
		apply(t, b, Move{X: 0, Y: 0, Direction: East, Player: PlayerA})

		open, err := b.IsEdgeOpen(0, 0, East)
		require.NoError(t, err)
		require.False(t, open)
		open, err = b.IsEdgeOpen(1, 0, West)
		require.NoError(t, err)
		require.False(t, open, "mirrored edge should be closed too")
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("mirrors interior edges onto the neighbor", func(t *testing.T) {
		cases := []struct {
			move   Move
			nx, ny int
		}{
			{Move{X: 1, Y: 1, Direction: North}, 1, 0},
			{Move{X: 1, Y: 1, Direction: South}, 1, 2},
			{Move{X: 1, Y: 1, Direction: East}, 2, 1},
			{Move{X: 1, Y: 1, Direction: West}, 0, 1},
		}
		for _, tc := range cases {
			b := newBoard(t, 3, 3)
			apply(t, b, tc.move)

			c, _ := b.Cell(1, 1)
			require.True(t, c.Edge(tc.move.Direction))
			n, _ := b.Cell(tc.nx, tc.ny)
			require.True(t, n.Edge(tc.move.Direction.Opposite()), "neighbor of %s", tc.move.Direction)
			require.Equal(t, 1, n.DrawnEdges())
			require.NoError(t, b.CheckConsistency())
		}
	})

	t.Run("west edge mirrors onto the cell to the left", func(t *testing.T) {
		b := newBoard(t, 2, 2)
		apply(t, b, Move{X: 1, Y: 1, Direction: West})

		left, _ := b.Cell(0, 1)
		above, _ := b.Cell(1, 0)
		require.True(t, left.East)
		require.Equal(t, 0, above.DrawnEdges())
		require.NoError(t, b.CheckConsistency())
	})

	t.Run("boundary edges touch a single cell", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		for _, d := range Directions {
			apply(t, b, Move{X: 0, Y: 0, Direction: d, Player: PlayerB})
		}
		c, _ := b.Cell(0, 0)
		require.Equal(t, 4, c.DrawnEdges())
		require.NoError(t, b.CheckConsistency())
	})

	t.Run("rejects invalid moves without touching the board", func(t *testing.T) {
		b := newBoard(t, 2, 2)

		_, err := b.ApplyMove(Move{X: 2, Y: 0, Direction: North})
		require.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.ApplyMove(Move{X: 0, Y: 0, Direction: Direction(9)})
		require.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.ApplyMove(Move{X: 0, Y: 0, Direction: North, Player: Player(5)})
		require.ErrorIs(t, err, ErrUnknownPlayer)

		require.Len(t, b.LegalMoves(PlayerA), 16)
	})
}

func TestClaiming(t *testing.T) {
	t.Run("fourth edge claims the cell for its player in any order", func(t *testing.T) {
		perms := permutations(Directions[:])
		require.Len(t, perms, 24)
		for _, order := range perms {
			b := newBoard(t, 1, 1)
			total := 0
			for i, d := range order {
				p := PlayerA
				if i%2 == 1 {
					p = PlayerB
				}
				total += apply(t, b, Move{X: 0, Y: 0, Direction: d, Player: p})
			}

			require.Equal(t, 1, total, "order %v", order)
			require.Equal(t, 1, b.Filled())
			owner, ok := b.cells[0][0].Owner().Player()
			require.True(t, ok)
			require.Equal(t, PlayerB, owner, "last move of four alternating moves is PlayerB")
		}
	})

	t.Run("shared edge can claim two cells at once", func(t *testing.T) {
		b := newBoard(t, 2, 1)
		for _, m := range []Move{
			{X: 0, Y: 0, Direction: North}, {X: 0, Y: 0, Direction: South}, {X: 0, Y: 0, Direction: West},
			{X: 1, Y: 0, Direction: North}, {X: 1, Y: 0, Direction: South}, {X: 1, Y: 0, Direction: East},
		} {
			require.Equal(t, 0, apply(t, b, m))
		}

		claimed := apply(t, b, Move{X: 1, Y: 0, Direction: West, Player: PlayerB})

		require.Equal(t, 2, claimed)
		require.Equal(t, 2, b.Filled())
		require.Equal(t, Score{A: 0, B: 2}, b.CountByOwner())
		require.True(t, b.IsFull())
	})

	t.Run("owned cells ignore repeated moves", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		for _, d := range Directions {
			apply(t, b, Move{X: 0, Y: 0, Direction: d, Player: PlayerA})
		}
		require.Equal(t, 1, b.Filled())

		claimed := apply(t, b, Move{X: 0, Y: 0, Direction: North, Player: PlayerB})

		require.Equal(t, 0, claimed)
		require.Equal(t, 1, b.Filled())
		require.Equal(t, Score{A: 1, B: 0}, b.CountByOwner())
	})

	t.Run("double draw after a claim leaves the fill counter alone", func(t *testing.T) {
		b := newBoard(t, 2, 1)
		for _, m := range []Move{
			{X: 0, Y: 0, Direction: North}, {X: 0, Y: 0, Direction: South}, {X: 0, Y: 0, Direction: West},
		} {
			apply(t, b, m)
		}
		require.Equal(t, 1, apply(t, b, Move{X: 0, Y: 0, Direction: East, Player: PlayerB}))

		require.Equal(t, 0, apply(t, b, Move{X: 1, Y: 0, Direction: West, Player: PlayerA}))
		require.Equal(t, 1, b.Filled())
		owner, _ := b.cells[0][0].Owner().Player()
		require.Equal(t, PlayerB, owner)
		require.NoError(t, b.CheckConsistency())
	})
}

func TestSingleCellBoard(t *testing.T) {
	b := newBoard(t, 1, 1)
	for _, d := range Directions {
		apply(t, b, Move{X: 0, Y: 0, Direction: d, Player: PlayerA})
	}

	require.True(t, b.IsFull())
	require.Equal(t, Score{A: 1, B: 0}, b.CountByOwner())
	require.Equal(t, PlayerAWins, b.CountByOwner().Outcome())
}

func TestFullGameTwoByTwo(t *testing.T) {
	b := newBoard(t, 2, 2)
	order := []Move{
		{X: 0, Y: 0, Direction: North},
		{X: 1, Y: 0, Direction: North},
		{X: 0, Y: 0, Direction: West},
		{X: 0, Y: 1, Direction: West},
		{X: 1, Y: 0, Direction: East},
		{X: 1, Y: 1, Direction: East},
		{X: 0, Y: 1, Direction: South},
		{X: 1, Y: 1, Direction: South},
		{X: 0, Y: 0, Direction: East},
		{X: 0, Y: 0, Direction: South},
		{X: 1, Y: 1, Direction: North},
		{X: 1, Y: 1, Direction: West},
	}
	p := PlayerA
	for _, m := range order {
		m.Player = p
		apply(t, b, m)
		require.NoError(t, b.CheckConsistency())
		score := b.CountByOwner()
		require.Equal(t, b.Filled(), score.A+score.B)
		require.Equal(t, completeCells(b), b.Filled())
		p = p.Other()
	}

	require.Equal(t, 4, b.Filled())
	require.True(t, b.IsFull())
	require.Empty(t, b.LegalMoves(PlayerA))
	score := b.CountByOwner()
	require.Equal(t, 4, score.A+score.B)
}

func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 25; game++ {
		width, height := rng.Intn(5)+1, rng.Intn(5)+1
		b := newBoard(t, width, height)
		p := PlayerA
		for !b.IsFull() {
			moves := b.LegalMoves(p)
			require.NotEmpty(t, moves)
			m := moves[rng.Intn(len(moves))]
			before, _ := b.Cell(m.X, m.Y)

			apply(t, b, m)

			require.NoError(t, b.CheckConsistency())
			score := b.CountByOwner()
			require.Equal(t, completeCells(b), b.Filled())
			require.Equal(t, b.Filled(), score.A+score.B)
			if before.Owner().Claimed() {
				after, _ := b.Cell(m.X, m.Y)
				require.Equal(t, before.Owner(), after.Owner())
			}
			p = p.Other()
		}
		require.Equal(t, width*height, b.Filled())
	}
}

func TestCheckConsistency(t *testing.T) {
	t.Run("reports a missing mirrored edge", func(t *testing.T) {
		b := newBoard(t, 2, 1)
		b.cells[0][0].East = true

		err := b.CheckConsistency()

		var violation *ConsistencyViolation
		require.True(t, errors.As(err, &violation))
		require.Equal(t, ConsistencyViolation{X: 0, Y: 0, Direction: East}, *violation)
		require.Contains(t, err.Error(), "(0, 0)")
	})

	t.Run("reports the neighbor side as well", func(t *testing.T) {
		b := newBoard(t, 1, 2)
		b.cells[1][0].North = true

		var violation *ConsistencyViolation
		require.ErrorAs(t, b.CheckConsistency(), &violation)
		require.Equal(t, 0, violation.X)
		require.Equal(t, 1, violation.Y)
		require.Equal(t, North, violation.Direction)
	})

	t.Run("ignores boundary edges", func(t *testing.T) {
		b := newBoard(t, 2, 2)
		b.cells[0][0].North = true
		b.cells[0][0].West = true
		b.cells[1][1].South = true
		b.cells[1][1].East = true

		require.NoError(t, b.CheckConsistency())
	})
}

func TestLegalMoves(t *testing.T) {
	b := newBoard(t, 3, 2)
	require.Len(t, b.LegalMoves(PlayerB), 24)

	apply(t, b, Move{X: 0, Y: 0, Direction: East, Player: PlayerB})
	moves := b.LegalMoves(PlayerB)

	require.Len(t, moves, 22)
	for _, m := range moves {
		require.Equal(t, PlayerB, m.Player)
		open, err := b.IsEdgeOpen(m.X, m.Y, m.Direction)
		require.NoError(t, err)
		require.True(t, open)
	}
}

func TestCopy(t *testing.T) {
	b := newBoard(t, 2, 2)
	apply(t, b, Move{X: 0, Y: 0, Direction: South})
	c := b.Copy()

	apply(t, c, Move{X: 1, Y: 1, Direction: North})

	require.Len(t, b.LegalMoves(PlayerA), 14)
	require.Len(t, c.LegalMoves(PlayerA), 12)
}

func TestScoreOutcome(t *testing.T) {
	require.Equal(t, PlayerAWins, Score{A: 3, B: 1}.Outcome())
	require.Equal(t, PlayerBWins, Score{A: 1, B: 3}.Outcome())
	require.Equal(t, Tie, Score{A: 2, B: 2}.Outcome())
	require.Equal(t, "Tie", Tie.String())
	require.Equal(t, "Player2", PlayerBWins.String())
}

func TestString(t *testing.T) {
	t.Run("empty cell", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		require.Equal(t, "Board[1, 1, \n  \n ○ \n  \n]", b.String())
	})

	t.Run("claimed cell", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		for _, d := range Directions {
			apply(t, b, Move{X: 0, Y: 0, Direction: d, Player: PlayerA})
		}
		require.Equal(t, "Board[1, 1, \n ―\n|█|\n ―\n]", b.String())
	})

	t.Run("interior edges", func(t *testing.T) {
		b := newBoard(t, 2, 2)
		apply(t, b, Move{X: 1, Y: 0, Direction: West})
		apply(t, b, Move{X: 0, Y: 0, Direction: South})

		want := "Board[2, 2, \n" +
			"    \n" +
			" ○|○ \n" +
			" ―  \n" +
			" ○ ○ \n" +
			"    \n" +
			"]"
		require.Equal(t, want, b.String())
	})
}

func permutations(ds []Direction) [][]Direction {
	if len(ds) <= 1 {
		return [][]Direction{append([]Direction{}, ds...)}
	}
	var out [][]Direction
	for i := range ds {
		rest := make([]Direction, 0, len(ds)-1)
		rest = append(rest, ds[:i]...)
		rest = append(rest, ds[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]Direction{ds[i]}, p...))
		}
	}
	return out
}
