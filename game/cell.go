package game

// Player identifies one of the two sides.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

// Other returns the opponent.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "Player1"
	case PlayerB:
		return "Player2"
	}
	return ""
}

// Owner is either unclaimed (the zero value) or claimed by a player.
type Owner struct {
	player  Player
	claimed bool
}

func ClaimedBy(p Player) Owner {
	return Owner{player: p, claimed: true}
}

// Player returns the owning player and whether the cell is claimed at all.
func (o Owner) Player() (Player, bool) {
	return o.player, o.claimed
}

func (o Owner) Claimed() bool {
	return o.claimed
}

func (o Owner) String() string {
	if !o.claimed {
		return "Unclaimed"
	}
	return o.player.String()
}

// Cell is a grid square: four edge flags and an owner.
type Cell struct {
	North bool
	South bool
	East  bool
	West  bool
	owner Owner
}

// Edge reports whether the edge facing d is drawn.
func (c Cell) Edge(d Direction) bool {
	switch d {
	case North:
		return c.North
	case South:
		return c.South
	case East:
		return c.East
	case West:
		return c.West
	}
	return false
}

func (c *Cell) draw(d Direction) {
	switch d {
	case North:
		c.North = true
	case South:
		c.South = true
	case East:
		c.East = true
	case West:
		c.West = true
	}
}

// DrawnEdges counts the drawn edges of the cell.
func (c Cell) DrawnEdges() int {
	n := 0
	for _, d := range Directions {
		if c.Edge(d) {
			n++
		}
	}
	return n
}

func (c Cell) Complete() bool {
	return c.North && c.South && c.East && c.West
}

func (c Cell) Owner() Owner {
	return c.owner
}

// resolve claims the cell for p if all four edges are drawn and nobody owns it
// yet. It returns true only on that first transition.
func (c *Cell) resolve(p Player) bool {
	if c.owner.claimed || !c.Complete() {
		return false
	}
	c.owner = ClaimedBy(p)
	return true
}
