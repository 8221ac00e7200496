package game

import "github.com/beka-birhanu/vinom-walker/level"

// Viewport is a window of the level that follows the player.
type Viewport struct {
	Origin   level.Point    `json:"origin"`   // Grid coordinate of the bottom-left cell.
	Width    int            `json:"width"`    // Columns in the window.
	Height   int            `json:"height"`   // Rows in the window.
	Tiles    [][]level.Tile `json:"tiles"`    // Indexed [y][x] relative to Origin.
	Variants [][]int        `json:"variants"` // Cosmetic variant per tile.
	Player   level.Point    `json:"player"`   // Player position relative to Origin.
	Exit     *level.Point   `json:"exit"`     // Exit relative to Origin, nil when off screen.
}

// View returns a width x height window centered on the player. The window
// is shrunk to the grid when larger and slid to stay inside it.
func (r *Run) View(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, ErrInvalidViewport
	}

	r.RLock()
	defer r.RUnlock()

	g := r.current.Grid
	width = min(width, g.Width())
	height = min(height, g.Height())

	origin := level.Point{
		X: max(0, min(r.player.X-width/2, g.Width()-width)),
		Y: max(0, min(r.player.Y-height/2, g.Height()-height)),
	}

	tiles := make([][]level.Tile, height)
	variants := make([][]int, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]level.Tile, width)
		variants[y] = make([]int, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = g.At(origin.X+x, origin.Y+y)
			variants[y][x] = int(r.variants[origin.Y+y][origin.X+x])
		}
	}

	vp := Viewport{
		Origin:   origin,
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		Variants: variants,
		Player:   level.Point{X: r.player.X - origin.X, Y: r.player.Y - origin.Y},
	}

	exit := level.Point{X: r.current.Exit.X - origin.X, Y: r.current.Exit.Y - origin.Y}
	if exit.X >= 0 && exit.X < width && exit.Y >= 0 && exit.Y < height {
		vp.Exit = &exit
	}
	return vp, nil
}
