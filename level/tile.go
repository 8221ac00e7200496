package level

import (
	"encoding/json"
	"fmt"
)

// Tile is the classification of a single grid cell.
type Tile uint8

// Tile kinds. Empty is the zero value so a fresh grid is all Empty.
const (
	Empty Tile = iota
	Floor
	Wall
	BottomWall
)

var tileNames = map[Tile]string{
	Empty:      "empty",
	Floor:      "floor",
	Wall:       "wall",
	BottomWall: "bottomWall",
}

// Name returns the tile's identifier as used on the wire.
func (t Tile) Name() string {
	if name, ok := tileNames[t]; ok {
		return name
	}
	return "undefined"
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case Empty:
		return ' '
	case Floor:
		return '.'
	case Wall:
		return '#'
	case BottomWall:
		return '='
	}
	return '?'
}

func (t Tile) String() string {
	return t.Name()
}

// MarshalJSON encodes the tile by name.
func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name())
}

// UnmarshalJSON decodes a tile from its name.
func (t *Tile) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for tile, n := range tileNames {
		if n == name {
			*t = tile
			return nil
		}
	}
	return fmt.Errorf("unknown tile %q", name)
}
