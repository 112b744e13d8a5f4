package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Record markers. A tuple carries "occupied" only for the player's tile and
// "broken" only for walls whose collision was bombed away.
const (
	markerOccupied = "occupied"
	markerBroken   = "broken"
)

// ValidateSeed reports whether seed can be carried by a save record.
func ValidateSeed(seed string) error {
	if seed == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSeed)
	}
	if strings.ContainsAny(seed, "|\n") {
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidSeed, seed)
	}
	return nil
}

// Encode serializes the grid as
//
//	seed|[x,y,id,type,canInteract(,occupied)(,broken)]...
//
// with one tuple per tile in discovery order.
func Encode(g *Grid) (string, error) {
	if err := ValidateSeed(g.seed); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(g.seed)
	sb.WriteByte('|')
	for _, c := range g.order {
		t := g.tiles[c]
		fmt.Fprintf(&sb, "[%d,%d,%d,%s,%s", t.X, t.Y, t.ID, t.Type, pyBool(t.CanInteract))
		if t.Occupied {
			sb.WriteString("," + markerOccupied)
		}
		if t.Broken {
			sb.WriteString("," + markerBroken)
		}
		sb.WriteByte(']')
	}
	return sb.String(), nil
}

// pyBool spells booleans the way existing save files do.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Decode parses a record produced by Encode into a new grid. Tile types come
// from the record, not the oracle. Decoding is all or nothing: an unknown type
// yields *InvalidTypeError, any other defect wraps ErrCorruptRecord. A valid
// record has an Empty origin and a player standing on a passable tile.
func Decode(record string, opts ...Option) (*Grid, error) {
	seed, body, ok := strings.Cut(record, "|")
	if !ok {
		return nil, fmt.Errorf("%w: missing seed separator", ErrCorruptRecord)
	}
	if err := ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
		return nil, fmt.Errorf("%w: malformed tile list", ErrCorruptRecord)
	}

	g := newBareGrid(seed, opts...)
	ids := make(map[int]struct{})
	occupied := 0

	for _, tuple := range strings.Split(body[1:len(body)-1], "][") {
		t, err := decodeTile(tuple)
		if err != nil {
			return nil, err
		}
		if _, dup := ids[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile id %d", ErrCorruptRecord, t.ID)
		}
		ids[t.ID] = struct{}{}
		if t.Occupied {
			occupied++
		}
		if err := g.restore(t); err != nil {
			return nil, fmt.Errorf("%w: duplicate tile at %s", ErrCorruptRecord, t.Pos())
		}
	}

	if occupied != 1 {
		return nil, fmt.Errorf("%w: %d occupied tiles", ErrCorruptRecord, occupied)
	}
	origin, ok := g.tiles[Origin]
	if !ok {
		return nil, fmt.Errorf("%w: no origin tile", ErrCorruptRecord)
	}
	if origin.Type != TileEmpty {
		return nil, fmt.Errorf("%w: origin tile is %s", ErrCorruptRecord, origin.Type)
	}
	if g.tiles[g.occupant].HasCollision {
		return nil, fmt.Errorf("%w: player inside a wall at %s", ErrCorruptRecord, g.occupant)
	}
	return g, nil
}

func decodeTile(tuple string) (Tile, error) {
	fields := strings.Split(tuple, ",")
	if len(fields) < 5 {
		return Tile{}, fmt.Errorf("%w: short tuple %q", ErrCorruptRecord, tuple)
	}

	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return Tile{}, fmt.Errorf("%w: tuple %q: %w", ErrCorruptRecord, tuple, err)
		}
		nums[i] = n
	}
	if nums[2] <= 0 {
		return Tile{}, fmt.Errorf("%w: tuple %q: non-positive id", ErrCorruptRecord, tuple)
	}

	typ, err := ParseTileType(strings.TrimSpace(fields[3]))
	if err != nil {
		return Tile{}, err
	}
	canInteract, err := strconv.ParseBool(strings.TrimSpace(fields[4]))
	if err != nil {
		return Tile{}, fmt.Errorf("%w: tuple %q: %w", ErrCorruptRecord, tuple, err)
	}

	t := Tile{
		X:            nums[0],
		Y:            nums[1],
		ID:           nums[2],
		Type:         typ,
		HasCollision: typ.Collides(),
		CanInteract:  canInteract,
	}
	for _, marker := range fields[5:] {
		switch strings.TrimSpace(marker) {
		case markerOccupied:
			t.Occupied = true
		case markerBroken:
			if typ != TileWall {
				return Tile{}, fmt.Errorf("%w: tuple %q: only walls can be broken", ErrCorruptRecord, tuple)
			}
			t.HasCollision = false
			t.Broken = true
		default:
			return Tile{}, fmt.Errorf("%w: tuple %q: unknown marker %q", ErrCorruptRecord, tuple, marker)
		}
	}
	return t, nil
}
