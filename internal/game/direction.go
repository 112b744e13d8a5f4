package game

// Direction is one of the four movement directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// directionOffsets is the legacy direction table: North and South move along
// X, East and West along Y. Saves and muscle memory depend on it.
var directionOffsets = map[Direction][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Offset returns the coordinate delta of a direction.
func (d Direction) Offset() (dx, dy int, ok bool) {
	off, ok := directionOffsets[d]
	return off[0], off[1], ok
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "nowhere"
	}
}
