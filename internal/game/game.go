// Package game implements the player session on top of a world grid: the
// movement, bombing and interaction state machine plus save and load.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-explorer/internal/world"
)

// Settings holds the player-chosen parameters of a session.
type Settings struct {
	Seed            string
	GenerationRange int
	Viewport        int
	Rewards         RewardPolicy
}

// Slots is the persistence adapter a game saves to and loads from.
type Slots interface {
	Get(name string) (string, error)
	Put(name, record string) error
}

// Reward is the outcome of a successful interaction.
type Reward struct {
	Message string
	Bombs   int // Bombs actually added after applying the cap
}

// Game is the player's session. It owns the grid exclusively; callers read
// tiles as copies and change them only through Game methods.
type Game struct {
	grid *world.Grid
	pos  world.Coord

	reachable      mapset.Set[world.Coord]
	reachableOrder []world.Coord

	genRange int
	viewport int
	rewards  RewardPolicy
	bombs    int
	bombing  bool

	savedRevision uint64

	oracle world.Oracle
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithOracle sets the tile type oracle for every grid the game creates or loads.
func WithOracle(o world.Oracle) Option {
	return func(g *Game) {
		g.oracle = o
	}
}

// WithRand sets the generator used for flavor text and shrine rewards.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New starts a fresh game for s.Seed with the player on the origin.
func New(s Settings, opts ...Option) (*Game, error) {
	if err := world.ValidateSeed(s.Seed); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	now := uint64(time.Now().UnixNano())
	g := &Game{
		genRange: max(1, s.GenerationRange),
		viewport: max(1, s.Viewport),
		rewards:  s.Rewards.normalized(),
		rng:      rand.New(rand.NewPCG(now, now>>1)),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.start(s.Seed)
	return g, nil
}

// start builds a new world and puts the player on its origin.
func (g *Game) start(seed string) {
	g.grid = world.NewGrid(seed, world.WithOracle(g.oracle))
	g.pos = world.Origin
	g.bombs = g.rewards.Start
	g.bombing = false
	//nolint:errcheck // The origin always exists
	g.grid.Occupy(g.pos)
	g.expand()
	g.markSaved()
}

// expand recomputes the reachable set around the player.
func (g *Game) expand() {
	tiles := g.grid.ExpandReachable(g.pos, g.genRange)
	g.reachable = mapset.New[world.Coord]()
	g.reachableOrder = make([]world.Coord, 0, len(tiles))
	for _, t := range tiles {
		g.reachable.Put(t.Pos())
		g.reachableOrder = append(g.reachableOrder, t.Pos())
	}
}

func (g *Game) markSaved() {
	g.savedRevision = g.grid.Revision()
}

// Move steps the player one tile in dir. A move fails with *IllegalMoveError
// when the destination is outside the reachable set, or collides while the
// player is not armed. An armed move onto a colliding tile spends a bomb and
// breaks the wall for good. Every attempt disarms the player.
func (g *Game) Move(dir Direction) error {
	defer func() { g.bombing = false }()

	dx, dy, ok := dir.Offset()
	if !ok {
		return &IllegalMoveError{Dir: dir, Reason: ReasonDirection}
	}
	dest := g.pos.Add(dx, dy)

	tile, exists := g.grid.Tile(dest)
	if !exists || !g.reachable.Has(dest) {
		return &IllegalMoveError{Dir: dir, Reason: ReasonOutOfRange}
	}

	if tile.HasCollision {
		if !g.bombing {
			return &IllegalMoveError{Dir: dir, Reason: ReasonBlocked}
		}
		if g.bombs <= 0 {
			return &IllegalMoveError{Dir: dir, Reason: ReasonNoBombs}
		}
		if err := g.grid.BreakWall(dest); err != nil {
			return fmt.Errorf("game: break wall at %s: %w", dest, err)
		}
		g.bombs--
		g.logger.Debug("wall bombed", "pos", dest, "bombs", g.bombs)
	}

	// Occupancy moves before the reachable set is recomputed.
	if err := g.grid.Occupy(dest); err != nil {
		return fmt.Errorf("game: occupy %s: %w", dest, err)
	}
	g.pos = dest
	g.expand()

	g.logger.Debug("moved", "dir", dir, "pos", dest, "tiles", g.grid.Len())
	return nil
}

// ToggleBombing arms or disarms the next move. Arming needs at least one
// bomb; disarming is always allowed. No bomb is spent here.
func (g *Game) ToggleBombing() (bool, error) {
	if !g.bombing && g.bombs <= 0 {
		return false, ErrNoBombs
	}
	g.bombing = !g.bombing
	return g.bombing, nil
}

// Interact uses the current tile. It reports false, changing nothing, when the
// tile has nothing to offer. A shrine grants bombs according to the reward policy.
func (g *Game) Interact() (Reward, bool) {
	tile := g.CurrentTile()
	if !tile.CanInteract {
		return Reward{}, false
	}

	msg, err := g.grid.Interact(g.pos, g.rng)
	if err != nil {
		g.logger.Debug("interaction ignored", "pos", g.pos, "err", err)
		return Reward{}, false
	}

	reward := Reward{Message: msg}
	if tile.Type == world.TileShrine {
		before := g.bombs
		g.bombs = g.rewards.grant(g.bombs, g.rewards.draw(g.rng))
		reward.Bombs = g.bombs - before
	}
	g.logger.Info("shrine used", "pos", g.pos, "bombs", g.bombs)
	return reward, true
}

// Reset starts over in a brand-new world for seed. Generation range and
// viewport carry over.
func (g *Game) Reset(seed string) error {
	if err := world.ValidateSeed(seed); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.start(seed)
	g.logger.Info("world reset", "seed", seed)
	return nil
}

// AdjustGenerationRange changes the generation range by delta, never going
// below 1, and recomputes the reachable set right away.
func (g *Game) AdjustGenerationRange(delta int) int {
	g.genRange = max(1, g.genRange+delta)
	g.expand()
	return g.genRange
}

// SetViewport changes the render radius. It has no effect on the world.
func (g *Game) SetViewport(radius int) {
	g.viewport = max(1, radius)
}

// Record returns the save record of the current world.
func (g *Game) Record() (string, error) {
	return world.Encode(g.grid)
}

// Save writes the world to the slot name.
func (g *Game) Save(slots Slots, name string) error {
	record, err := g.Record()
	if err != nil {
		return fmt.Errorf("game: encode: %w", err)
	}
	if err := slots.Put(name, record); err != nil {
		return err
	}
	g.markSaved()
	g.logger.Info("game saved", "name", name, "tiles", g.grid.Len())
	return nil
}

// Load replaces the world with the one stored in slot name. On any error the
// current game is left untouched. Bombs are not part of a save and carry over.
func (g *Game) Load(slots Slots, name string) error {
	record, err := slots.Get(name)
	if err != nil {
		return err
	}
	if err := g.LoadRecord(record); err != nil {
		return err
	}
	g.logger.Info("game loaded", "name", name, "seed", g.grid.Seed(), "tiles", g.grid.Len())
	return nil
}

// LoadRecord replaces the world with a decoded save record. The game counts
// as saved only until expansion adds tiles the record lacks.
func (g *Game) LoadRecord(record string) error {
	grid, err := world.Decode(record, world.WithOracle(g.oracle))
	if err != nil {
		return fmt.Errorf("game: load: %w", err)
	}
	occupant, _ := grid.Occupant()

	g.grid = grid
	g.pos = occupant.Pos()
	g.bombing = false
	g.markSaved()
	g.expand()
	return nil
}

// Position returns the player's coordinate.
func (g *Game) Position() world.Coord {
	return g.pos
}

// CurrentTile returns a copy of the tile the player stands on.
func (g *Game) CurrentTile() world.Tile {
	t, _ := g.grid.Tile(g.pos)
	return t
}

// Tile returns a copy of a discovered tile.
func (g *Game) Tile(c world.Coord) (world.Tile, bool) {
	return g.grid.Tile(c)
}

// Window returns the tiles around the player within the viewport radius.
func (g *Game) Window() [][]*world.Tile {
	return g.grid.Window(g.pos, g.viewport)
}

// Reachable returns the current reachable set in expansion order.
func (g *Game) Reachable() []world.Coord {
	out := make([]world.Coord, len(g.reachableOrder))
	copy(out, g.reachableOrder)
	return out
}

// InReach reports whether c is in the current reachable set.
func (g *Game) InReach(c world.Coord) bool {
	return g.reachable.Has(c)
}

// Seed returns the world seed.
func (g *Game) Seed() string { return g.grid.Seed() }

// TileCount returns the number of discovered tiles.
func (g *Game) TileCount() int { return g.grid.Len() }

// Bombs returns the number of bombs left.
func (g *Game) Bombs() int { return g.bombs }

// BombCap returns the bomb cap, 0 when uncapped.
func (g *Game) BombCap() int { return g.rewards.Cap }

// Bombing reports whether the next move is armed.
func (g *Game) Bombing() bool { return g.bombing }

// GenerationRange returns the current generation range.
func (g *Game) GenerationRange() int { return g.genRange }

// Viewport returns the render radius.
func (g *Game) Viewport() int { return g.viewport }

// Saved reports whether the world matches what was last saved or loaded.
func (g *Game) Saved() bool {
	return g.grid.Revision() == g.savedRevision
}
