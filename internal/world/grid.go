package world

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// Origin is where every world starts; its tile is always Empty.
var Origin = Coord{}

// Grid owns every tile discovered in one world. Tiles are created lazily and
// never removed; insertion order is discovery order.
type Grid struct {
	seed   string
	oracle Oracle

	tiles     map[Coord]*Tile
	order     []Coord
	tileCount int

	occupant    Coord
	hasOccupant bool

	revision uint64
}

// Option configures a Grid.
type Option func(*Grid)

// WithOracle replaces the default TypeOf oracle.
func WithOracle(o Oracle) Option {
	return func(g *Grid) {
		if o != nil {
			g.oracle = o
		}
	}
}

// NewGrid creates a world for seed. The origin tile is created immediately
// and forced to Empty, whatever the oracle would say about (0,0).
func NewGrid(seed string, opts ...Option) *Grid {
	g := newBareGrid(seed, opts...)
	empty := TileEmpty
	g.insert(Origin, &empty)
	return g
}

// newBareGrid creates a grid without any tile, used by NewGrid and the decoder.
func newBareGrid(seed string, opts ...Option) *Grid {
	g := &Grid{
		seed:   seed,
		oracle: TypeOf,
		tiles:  make(map[Coord]*Tile),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Seed returns the world seed.
func (g *Grid) Seed() string {
	return g.seed
}

// Len returns the number of discovered tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Revision increases on every change to the grid.
func (g *Grid) Revision() uint64 {
	return g.revision
}

// Tile returns a copy of the tile at c, if it has been discovered.
// It never creates tiles.
func (g *Grid) Tile(c Coord) (Tile, bool) {
	t, ok := g.tiles[c]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// Tiles returns copies of all tiles in discovery order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, 0, len(g.order))
	for _, c := range g.order {
		out = append(out, *g.tiles[c])
	}
	return out
}

// CreateTile discovers the tile at c. A nil explicitType asks the oracle.
// It fails with ErrTileExists if c is already discovered.
func (g *Grid) CreateTile(c Coord, explicitType *TileType) (Tile, error) {
	if _, ok := g.tiles[c]; ok {
		return Tile{}, ErrTileExists
	}
	return *g.insert(c, explicitType), nil
}

// insert assigns the next id and stores a new tile. Callers check for duplicates.
func (g *Grid) insert(c Coord, explicitType *TileType) *Tile {
	g.tileCount++
	t := newTile(c, g.tileCount, g.seed, g.oracle, explicitType)
	g.tiles[c] = t
	g.order = append(g.order, c)
	g.revision++
	return t
}

// getOrCreate is the single fetch-or-create path used by expansion.
func (g *Grid) getOrCreate(c Coord) *Tile {
	if t, ok := g.tiles[c]; ok {
		return t
	}
	return g.insert(c, nil)
}

// restore stores a decoded tile as-is, keeping its id.
func (g *Grid) restore(t Tile) error {
	if _, ok := g.tiles[t.Pos()]; ok {
		return ErrTileExists
	}
	tile := t
	g.tiles[t.Pos()] = &tile
	g.order = append(g.order, t.Pos())
	if t.ID > g.tileCount {
		g.tileCount = t.ID
	}
	if t.Occupied {
		g.occupant = t.Pos()
		g.hasOccupant = true
	}
	return nil
}

// Window returns the square of side 2*radius+1 centered on center. Rows run
// over X and columns over Y. Undiscovered cells are nil; the others are copies.
func (g *Grid) Window(center Coord, radius int) [][]*Tile {
	if radius < 0 {
		radius = 0
	}
	side := 2*radius + 1
	rows := make([][]*Tile, side)
	for i := range side {
		row := make([]*Tile, side)
		for j := range side {
			if t, ok := g.tiles[center.Add(i-radius, j-radius)]; ok {
				cp := *t
				row[j] = &cp
			}
		}
		rows[i] = row
	}
	return rows
}

// ExpandReachable walks the 4-connected lattice breadth-first from center,
// creating undiscovered tiles, and returns every tile within maxDepth hops in
// visiting order. Colliding tiles are included: reachable means known, and
// walls are enforced at move time.
func (g *Grid) ExpandReachable(center Coord, maxDepth int) []Tile {
	type node struct {
		pos   Coord
		depth int
	}

	queue := []node{{pos: center}}
	visited := mapset.New[Coord]()
	visited.Put(center)

	var reached []Tile
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.depth > maxDepth {
			break
		}
		reached = append(reached, *g.getOrCreate(cur.pos))

		for _, off := range neighborOffsets {
			next := cur.pos.Add(off[0], off[1])
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, node{pos: next, depth: cur.depth + 1})
		}
	}
	return reached
}

// Occupant returns a copy of the occupied tile, if any.
func (g *Grid) Occupant() (Tile, bool) {
	if !g.hasOccupant {
		return Tile{}, false
	}
	return g.Tile(g.occupant)
}

// Occupy marks the tile at c as occupied and clears the previous occupant in
// the same step, so at most one tile is ever occupied.
func (g *Grid) Occupy(c Coord) error {
	next, ok := g.tiles[c]
	if !ok {
		return ErrNoTile
	}
	if g.hasOccupant {
		if prev, ok := g.tiles[g.occupant]; ok {
			prev.Occupied = false
		}
	}
	next.Occupied = true
	g.occupant = c
	g.hasOccupant = true
	g.revision++
	return nil
}

// BreakWall permanently removes the collision of the tile at c.
func (g *Grid) BreakWall(c Coord) error {
	t, ok := g.tiles[c]
	if !ok {
		return ErrNoTile
	}
	if !t.HasCollision {
		return ErrNoCollision
	}
	t.HasCollision = false
	t.Broken = true
	g.revision++
	return nil
}

// Interact runs the one-shot interaction of the tile at c. The rng only picks
// flavor text and is not part of the world state.
func (g *Grid) Interact(c Coord, rng *rand.Rand) (string, error) {
	t, ok := g.tiles[c]
	if !ok {
		return "", ErrNoTile
	}
	msg, err := t.interact(rng)
	if err != nil {
		return "", err
	}
	g.revision++
	return msg, nil
}
