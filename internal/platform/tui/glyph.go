package tui

import (
	"github.com/vovakirdan/tui-explorer/internal/core"
	"github.com/vovakirdan/tui-explorer/internal/world"
)

// Tile glyphs.
const (
	glyphEmpty        = '🞑'
	glyphWall         = '◼'
	glyphShrine       = '🞖'
	glyphShrineUsed   = '🞔'
	glyphPlayer       = '🞚'
	glyphPlayerShrine = '🞛'
	glyphPlayerUsed   = '🞜'
	glyphUndiscovered = '▨'
)

// Glyph returns the rune and color of a window cell. A nil tile is
// undiscovered.
func Glyph(t *world.Tile) (rune, core.Color) {
	if t == nil {
		return glyphUndiscovered, core.ColorDarkGray
	}

	if t.Occupied {
		if t.Type == world.TileShrine {
			if t.CanInteract {
				return glyphPlayerShrine, core.ColorCyan
			}
			return glyphPlayerUsed, core.ColorCyan
		}
		return glyphPlayer, core.ColorCyan
	}

	switch t.Type {
	case world.TileWall:
		if t.Broken {
			return glyphEmpty, core.ColorBrightGreen
		}
		return glyphWall, core.ColorRed
	case world.TileShrine:
		if t.CanInteract {
			return glyphShrine, core.ColorYellow
		}
		return glyphShrineUsed, core.ColorGray
	default:
		return glyphEmpty, core.ColorGreen
	}
}

// WindowSize returns the screen size needed to draw a window of radius r.
// Columns are spaced by one cell.
func WindowSize(r int) (w, h int) {
	side := 2*r + 1
	return 2*side - 1, side
}

// DrawWindow draws a tile window with its top-left corner at (x0, y0).
// Window rows run along X, columns along Y.
func DrawWindow(s *core.Screen, window [][]*world.Tile, x0, y0 int) {
	for i, row := range window {
		for j, t := range row {
			r, c := Glyph(t)
			s.Set(x0+2*j, y0+i, r, c)
		}
	}
}
