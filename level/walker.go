package level

import (
	"fmt"
	"strings"
)

// Direction is a cardinal step direction.
type Direction uint8

// Cardinal directions, in the order RandomDirection draws them.
const (
	Down Direction = iota
	Left
	Up
	Right
)

var directionDeltas = [...]Point{
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: 1},
	Right: {X: 1, Y: 0},
}

var directionNames = [...]string{
	Down:  "down",
	Left:  "left",
	Up:    "up",
	Right: "right",
}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	return directionDeltas[d]
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "undefined"
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// RandomDirection draws one of the four cardinal directions uniformly.
func RandomDirection(rng Random) Direction {
	return Direction(rng.Intn(len(directionDeltas)))
}

// walker is a carving agent. It is a value type: updates replace the whole
// walker so a spawned copy never shares state with its source.
type walker struct {
	pos Point
	dir Direction
}

func (w walker) step() walker {
	return walker{pos: w.pos.Add(w.dir.Delta()), dir: w.dir}
}

func (w walker) clamp(width, height int) walker {
	return walker{
		pos: Point{
			X: clamp(w.pos.X, 1, width-2),
			Y: clamp(w.pos.Y, 1, height-2),
		},
		dir: w.dir,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
