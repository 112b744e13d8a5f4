// Package world implements the lazily generated, seed-deterministic tile grid:
// the tile type oracle, tiles, the grid that owns them and the save record codec.
package world

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// TileType identifies the kind of a grid cell.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileWall
	TileShrine
)

// tileTypes lists every type in the fixed order used by the weighted draw.
// Changing this order or the weights changes every generated world.
var tileTypes = [...]TileType{TileEmpty, TileWall, TileShrine}

// String returns the name used in save records.
func (t TileType) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileShrine:
		return "shrine"
	default:
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
}

// Weight returns the generation weight of the type.
func (t TileType) Weight() float64 {
	switch t {
	case TileEmpty:
		return 0.75
	case TileWall:
		return 0.20
	case TileShrine:
		return 0.05
	}
	return 0
}

// Collides reports whether a fresh tile of this type blocks movement.
func (t TileType) Collides() bool {
	return t == TileWall
}

// Interactable reports whether a fresh tile of this type can be interacted with.
func (t TileType) Interactable() bool {
	return t == TileShrine
}

// ParseTileType maps a save record type name back to a TileType.
func ParseTileType(s string) (TileType, error) {
	for _, t := range tileTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, &InvalidTypeError{Value: s}
}

// Oracle assigns a type to a coordinate of a world.
type Oracle func(x, y int, seed string) TileType

// pcgIncrement is the second PCG seed word, derived from the first.
const pcgIncrement = 0x9e3779b97f4a7c15

// TypeOf is the default Oracle. It is pure: the tile key "x,y,seed" is hashed
// with 64-bit FNV-1a, the hash seeds a PCG generator (seed words h and
// h^0x9e3779b97f4a7c15), one Float64 u is drawn and the first type in
// Empty, Wall, Shrine order whose cumulative weight exceeds u is returned.
func TypeOf(x, y int, seed string) TileType {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d,%d,%s", x, y, seed)
	sum := h.Sum64()

	rng := rand.New(rand.NewPCG(sum, sum^pcgIncrement))
	return pick(rng.Float64())
}

// pick performs the inverse-CDF step of the weighted draw.
func pick(u float64) TileType {
	cumulative := 0.0
	for _, t := range tileTypes {
		cumulative += t.Weight()
		if u < cumulative {
			return t
		}
	}
	// Rounding can leave the total a hair under 1.
	return tileTypes[len(tileTypes)-1]
}
