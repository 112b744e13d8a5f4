package world

import (
	"errors"
	"fmt"
)

var (
	// ErrTileExists is returned by CreateTile for an already discovered coordinate.
	ErrTileExists = errors.New("world: tile already exists")

	// ErrNoTile is returned by mutators addressed at an undiscovered coordinate.
	ErrNoTile = errors.New("world: no tile at coordinate")

	// ErrCorruptRecord is returned when a save record cannot be decoded.
	ErrCorruptRecord = errors.New("world: corrupt save record")

	// ErrInvalidSeed is returned for seeds the save format cannot carry.
	ErrInvalidSeed = errors.New("world: invalid seed")
)

// InvalidTypeError reports an explicit tile type name that is not known.
type InvalidTypeError struct {
	Value string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("world: invalid tile type %q", e.Value)
}

// NotInteractableError reports an interaction with a tile that has nothing to offer.
type NotInteractableError struct {
	ID  int
	Pos Coord
}

func (e *NotInteractableError) Error() string {
	return fmt.Sprintf("world: tile %d at %s cannot be interacted with", e.ID, e.Pos)
}

// ErrNoCollision is returned by BreakWall for a tile that does not block.
var ErrNoCollision = errors.New("world: tile has no collision")
