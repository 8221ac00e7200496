package game

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-walker/level"
)

// Skins maps a tile kind to how many visual variants it has. Kinds with no
// entry, or a count below 2, always use variant 0.
type Skins map[level.Tile]int

// DefaultSkins returns the stock variant counts.
func DefaultSkins() Skins {
	return Skins{
		level.Floor:      4,
		level.Wall:       3,
		level.BottomWall: 2,
	}
}

// dress picks a variant for every non-empty cell of g.
func (s Skins) dress(g *level.Grid, rng *rand.Rand) [][]uint8 {
	variants := make([][]uint8, g.Height())
	for y := range variants {
		variants[y] = make([]uint8, g.Width())
		for x := range variants[y] {
			t := g.At(x, y)
			if t == level.Empty {
				continue
			}
			if n := s[t]; n > 1 {
				variants[y][x] = uint8(rng.Intn(min(n, 256)))
			}
		}
	}
	return variants
}
