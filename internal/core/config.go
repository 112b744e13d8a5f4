package core

// RuntimeConfig contains the session parameters chosen at startup.
type RuntimeConfig struct {
	ScreenW         int    // Screen width in characters
	ScreenH         int    // Screen height in characters
	Seed            string // World seed, empty means random
	GenerationRange int    // Hops around the player that are generated
	Viewport        int    // Render radius in tiles
}

// Defaults used when nothing else is configured.
const (
	DefaultGenerationRange = 1
	DefaultViewport        = 10
	SeedLength             = 8
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		GenerationRange: DefaultGenerationRange,
		Viewport:        DefaultViewport,
	}
}
