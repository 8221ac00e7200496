// Package runapi exposes playable runs and the depth leaderboard over HTTP.
package runapi

import (
	"github.com/beka-birhanu/vinom-walker/game"
	"github.com/beka-birhanu/vinom-walker/level"
)

// StartRequest starts a run. Omitted fields use the server defaults.
type StartRequest struct {
	Config *level.Config `json:"config"`
	Seed   *int64        `json:"seed"`
}

// MoveRequest steps the player one tile.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// RunResponse describes a run and the camera window around the player.
type RunResponse struct {
	State    game.State    `json:"state"`
	Viewport game.Viewport `json:"viewport"`
}

// MoveResponse is a RunResponse with the outcome of the step.
type MoveResponse struct {
	Outcome string `json:"outcome"`
	RunResponse
}
