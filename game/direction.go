package game

// Direction names one of the four sides of a cell.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the canonical directions in iteration order.
var Directions = [4]Direction{North, South, East, West}

var opposites = [4]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

// offsets holds the (dx, dy) step towards the neighbor in each direction.
// Rows grow southwards.
var offsets = [4][2]int{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction the neighboring cell uses for the same edge.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}
