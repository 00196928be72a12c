package game

import (
	"fmt"
)

// Board owns the edge and ownership state of a width x height grid.
//
// Every interior edge is stored twice, once on each bordering cell. ApplyMove
// keeps both copies in step and CheckConsistency verifies that they agree.
// A Board is not safe for concurrent use; callers take turns.
type Board struct {
	width  int
	height int
	// First index is the row (y), second the column (x)
	cells  [][]Cell
	filled int
}

// NewBoard returns a board with every edge undrawn and every cell unclaimed.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Filled returns the number of claimed cells.
func (b *Board) Filled() int {
	return b.filled
}

func (b *Board) Total() int {
	return b.width * b.height
}

// IsFull reports whether every cell has been claimed.
func (b *Board) IsFull() bool {
	return b.filled == b.Total()
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) check(x, y int, d Direction) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: cell (%d, %d) outside %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: direction %d", ErrOutOfBounds, int(d))
	}
	return nil
}

// Cell returns a snapshot of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, error) {
	if !b.inBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: cell (%d, %d) outside %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.cells[y][x], nil
}

// IsEdgeOpen reports whether the edge of (x, y) facing d is still undrawn.
func (b *Board) IsEdgeOpen(x, y int, d Direction) (bool, error) {
	if err := b.check(x, y, d); err != nil {
		return false, err
	}
	return !b.cells[y][x].Edge(d), nil
}

// Neighbor returns the cell sharing the edge of (x, y) facing d. ok is false
// on the outer boundary.
func (b *Board) Neighbor(x, y int, d Direction) (nx, ny int, ok bool) {
	if !d.Valid() {
		return 0, 0, false
	}
	nx, ny = x+offsets[d][0], y+offsets[d][1]
	if !b.inBounds(nx, ny) {
		return 0, 0, false
	}
	return nx, ny, true
}

// ApplyMove draws the edge named by m on its cell and on the neighbor across
// that edge, then claims each touched cell that became complete. It returns
// the number of cells claimed by this move.
//
// Drawing an edge that is already drawn is not rejected; cells that are
// already owned keep their owner and are not counted again.
func (b *Board) ApplyMove(m Move) (int, error) {
	if err := b.check(m.X, m.Y, m.Direction); err != nil {
		return 0, err
	}
	if !m.Player.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPlayer, int(m.Player))
	}

	claimed := 0
	cell := &b.cells[m.Y][m.X]
	cell.draw(m.Direction)

	var neighbor *Cell
	if nx, ny, ok := b.Neighbor(m.X, m.Y, m.Direction); ok {
		neighbor = &b.cells[ny][nx]
		neighbor.draw(m.Direction.Opposite())
	}

	if cell.resolve(m.Player) {
		claimed++
	}
	if neighbor != nil && neighbor.resolve(m.Player) {
		claimed++
	}
	b.filled += claimed
	return claimed, nil
}

// CountByOwner tallies claimed cells per player.
func (b *Board) CountByOwner() Score {
	var s Score
	for _, row := range b.cells {
		for _, c := range row {
			p, ok := c.owner.Player()
			if !ok {
				continue
			}
			switch p {
			case PlayerA:
				s.A++
			case PlayerB:
				s.B++
			}
		}
	}
	return s
}

// CheckConsistency verifies that every drawn edge is also drawn on the
// neighboring cell. The first mismatch is returned as a *ConsistencyViolation.
func (b *Board) CheckConsistency() error {
	for y, row := range b.cells {
		for x, c := range row {
			for _, d := range Directions {
				if !c.Edge(d) {
					continue
				}
				nx, ny, ok := b.Neighbor(x, y, d)
				if !ok {
					continue
				}
				if !b.cells[ny][nx].Edge(d.Opposite()) {
					return &ConsistencyViolation{X: x, Y: y, Direction: d}
				}
			}
		}
	}
	return nil
}

// LegalMoves lists every open oriented edge as a move for p. An interior edge
// appears once from each side.
func (b *Board) LegalMoves(p Player) []Move {
	var moves []Move
	for y, row := range b.cells {
		for x, c := range row {
			for _, d := range Directions {
				if !c.Edge(d) {
					moves = append(moves, Move{X: x, Y: y, Direction: d, Player: p})
				}
			}
		}
	}
	return moves
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([][]Cell, len(b.cells))
	for y, row := range b.cells {
		cells[y] = make([]Cell, len(row))
		copy(cells[y], row)
	}
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
		filled: b.filled,
	}
}
