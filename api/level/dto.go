// Package levelapi exposes one-off level generation over HTTP.
package levelapi

import "github.com/beka-birhanu/vinom-walker/level"

// GenerateRequest asks for a level. Omitted fields use the server defaults.
type GenerateRequest struct {
	Config *level.Config `json:"config"`
	Seed   *int64        `json:"seed"`
}

// LevelResponse is a generated level. Tiles are indexed [y][x], y = 0 first.
type LevelResponse struct {
	Seed   int64          `json:"seed"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Tiles  [][]level.Tile `json:"tiles"`
	Spawn  level.Point    `json:"spawn"`
	Exit   level.Point    `json:"exit"`
	Stats  level.Stats    `json:"stats"`
}
