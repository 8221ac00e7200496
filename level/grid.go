package level

import (
	"math"
	"strings"
)

// Point is an integer grid coordinate. Y grows upward, so "below" is Y-1.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Grid is a fixed-size tile map. Cells are stored as rows ([y][x]) but every
// accessor takes (x, y).
type Grid struct {
	width  int
	height int
	cells  [][]Tile
}

// newGrid allocates a width x height grid filled with Empty.
func newGrid(width, height int) *Grid {
	cells := make([][]Tile, height)
	for y := range cells {
		cells[y] = make([]Tile, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y). Out of bounds reads return Empty.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y][x]
}

// AtPoint is At for a Point.
func (g *Grid) AtPoint(p Point) Tile {
	return g.At(p.X, p.Y)
}

func (g *Grid) set(x, y int, t Tile) {
	g.cells[y][x] = t
}

// Count returns the number of cells holding t.
func (g *Grid) Count(t Tile) int {
	count := 0
	for _, row := range g.cells {
		for _, tile := range row {
			if tile == t {
				count++
			}
		}
	}
	return count
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return g.width * g.height
}

// Rows returns a copy of the tiles indexed [y][x], y = 0 first.
func (g *Grid) Rows() [][]Tile {
	rows := make([][]Tile, g.height)
	for y := range g.cells {
		rows[y] = append([]Tile(nil), g.cells[y]...)
	}
	return rows
}

// String renders the grid as text with the highest row first, so the
// output reads the same way the level is displayed.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cells[y][x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// center returns the cell at (round(width/2), round(height/2)) using
// round-half-to-even.
func center(width, height int) Point {
	return Point{
		X: int(math.RoundToEven(float64(width) / 2)),
		Y: int(math.RoundToEven(float64(height) / 2)),
	}
}
