package world

import "math/rand/v2"

// shrineMessages is the flavor text pool for shrine interactions.
var shrineMessages = [...]string{
	"You feel a strange power ...",
	"You feel a strange presence ...",
	"You feel a strange energy ...",
}

// Tile is one discovered grid cell. Grids hand out copies of their tiles;
// changing a copy never changes the world.
type Tile struct {
	X    int
	Y    int
	ID   int
	Type TileType

	HasCollision bool
	CanInteract  bool
	Occupied     bool
	Broken       bool // Collision was removed by a bomb
}

// Pos returns the tile coordinate.
func (t Tile) Pos() Coord {
	return Coord{X: t.X, Y: t.Y}
}

// newTile creates a tile, typing it with the oracle unless explicitType is set.
func newTile(c Coord, id int, seed string, oracle Oracle, explicitType *TileType) *Tile {
	var typ TileType
	if explicitType != nil {
		typ = *explicitType
	} else {
		typ = oracle(c.X, c.Y, seed)
	}
	return &Tile{
		X:            c.X,
		Y:            c.Y,
		ID:           id,
		Type:         typ,
		HasCollision: typ.Collides(),
		CanInteract:  typ.Interactable(),
	}
}

// interact consumes the tile's one-shot interaction and returns its message.
func (t *Tile) interact(rng *rand.Rand) (string, error) {
	if !t.CanInteract {
		return "", &NotInteractableError{ID: t.ID, Pos: t.Pos()}
	}
	switch t.Type {
	case TileShrine:
		t.CanInteract = false
		return shrineMessages[rng.IntN(len(shrineMessages))], nil
	default:
		return "", &NotInteractableError{ID: t.ID, Pos: t.Pos()}
	}
}
