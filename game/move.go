package game

import "fmt"

// Move draws the edge of cell (X, Y) facing Direction on behalf of Player.
type Move struct {
	X         int
	Y         int
	Direction Direction
	Player    Player
}

func (m Move) String() string {
	return fmt.Sprintf("%s: (%d, %d) %s", m.Player, m.X, m.Y, m.Direction)
}
