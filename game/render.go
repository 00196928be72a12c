package game

import (
	"fmt"
	"strings"
)

const (
	horizontalGlyph = " ―"
	verticalGlyph   = "|"
)

func ownerGlyph(o Owner) string {
	p, ok := o.Player()
	if !ok {
		return "○"
	}
	if p == PlayerA {
		return "█"
	}
	return "▓"
}

func writeHorizontal(sb *strings.Builder, row []Cell, d Direction) {
	for _, c := range row {
		if c.Edge(d) {
			sb.WriteString(horizontalGlyph)
		} else {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")
}

// String renders the board for humans: horizontal edges between rows, west
// edges and owner glyphs on cell lines. It is a debug aid only.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Board[%d, %d, \n", b.width, b.height)
	for y, row := range b.cells {
		writeHorizontal(&sb, row, North)
		for x, c := range row {
			if c.West {
				sb.WriteString(verticalGlyph)
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(ownerGlyph(c.owner))
			if x == b.width-1 {
				if c.East {
					sb.WriteString(verticalGlyph)
				} else {
					sb.WriteString(" ")
				}
			}
		}
		sb.WriteString("\n")
		if y == b.height-1 {
			writeHorizontal(&sb, row, South)
		}
	}
	sb.WriteString("]")
	return sb.String()
}
