package runapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-walker/api/identity"
	levelapi "github.com/beka-birhanu/vinom-walker/api/level"
	"github.com/beka-birhanu/vinom-walker/game"
	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultViewWidth  = 21
	defaultViewHeight = 15
	maxViewSide       = 101

	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// RunController serves the player's active run.
type RunController struct {
	runs        i.RunManager
	leaderboard i.Leaderboard
}

// NewRunController creates a RunController. The leaderboard is optional;
// without it the leaderboard route is not registered.
func NewRunController(runs i.RunManager, leaderboard i.Leaderboard) (*RunController, error) {
	if runs == nil {
		return nil, errors.New("run controller requires a run manager")
	}
	return &RunController{
		runs:        runs,
		leaderboard: leaderboard,
	}, nil
}

// RegisterPublic registers public routes.
func (rc *RunController) RegisterPublic(route *gin.RouterGroup) {
	if rc.leaderboard != nil {
		route.GET("/leaderboard", rc.top)
	}
}

// RegisterProtected registers protected routes.
func (rc *RunController) RegisterProtected(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("", rc.start)
		runs.GET("/current", rc.current)
		runs.POST("/current/move", rc.move)
		runs.POST("/current/reload", rc.reload)
		runs.DELETE("/current", rc.end)
	}
}

// start begins a new run, replacing any run in progress.
func (rc *RunController) start(ctx *gin.Context) {
	playerID, err := identity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	width, height, ok := viewSize(ctx)
	if !ok {
		return
	}

	defaults := rc.runs.Defaults()
	request := StartRequest{Config: &defaults}
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Config != nil {
		if err := levelapi.CheckLimits(*request.Config); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	run, err := rc.runs.Start(ctx, playerID, request.Config, request.Seed)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rc.respond(ctx, http.StatusCreated, run, width, height)
}

// current returns the run state and the viewport sized by viewW/viewH.
func (rc *RunController) current(ctx *gin.Context) {
	width, height, ok := viewSize(ctx)
	if !ok {
		return
	}
	run, ok := rc.lookup(ctx)
	if !ok {
		return
	}
	rc.respond(ctx, http.StatusOK, run, width, height)
}

// move steps the player. A blocked step answers 409 with the unchanged state.
func (rc *RunController) move(ctx *gin.Context) {
	width, height, ok := viewSize(ctx)
	if !ok {
		return
	}
	run, ok := rc.lookup(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := level.ParseDirection(request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	// The returned run may differ from the one looked up above.
	run, outcome, err := rc.runs.Move(ctx, run.PlayerID(), dir)
	switch {
	case errors.Is(err, game.ErrBlocked):
		status = http.StatusConflict
	case errors.Is(err, service.ErrRunNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	vp, err := run.View(width, height)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(status, &MoveResponse{
		Outcome:     outcome.String(),
		RunResponse: RunResponse{State: run.State(), Viewport: vp},
	})
}

// reload regenerates the current level.
func (rc *RunController) reload(ctx *gin.Context) {
	width, height, ok := viewSize(ctx)
	if !ok {
		return
	}
	run, ok := rc.lookup(ctx)
	if !ok {
		return
	}
	if err := rc.runs.Reload(run.PlayerID()); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rc.respond(ctx, http.StatusOK, run, width, height)
}

// end discards the run.
func (rc *RunController) end(ctx *gin.Context) {
	run, ok := rc.lookup(ctx)
	if !ok {
		return
	}
	if err := rc.runs.End(run.PlayerID()); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// top lists the deepest players.
func (rc *RunController) top(ctx *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxLeaderboardLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and " + strconv.Itoa(maxLeaderboardLimit)})
			return
		}
		limit = n
	}

	entries, err := rc.leaderboard.Top(ctx, int64(limit))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}

// lookup resolves the caller's run, writing the error response when it fails.
func (rc *RunController) lookup(ctx *gin.Context) (*game.Run, bool) {
	playerID, err := identity.PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return nil, false
	}

	run, err := rc.runs.Get(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return run, true
}

func (rc *RunController) respond(ctx *gin.Context, status int, run *game.Run, width, height int) {
	vp, err := run.View(width, height)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(status, &RunResponse{State: run.State(), Viewport: vp})
}

// viewSize reads the viewW and viewH query parameters, writing a 400 when
// either is out of range.
func viewSize(ctx *gin.Context) (int, int, bool) {
	width, errW := queryInt(ctx, "viewW", defaultViewWidth)
	height, errH := queryInt(ctx, "viewH", defaultViewHeight)
	if errW != nil || errH != nil || width < 1 || height < 1 || width > maxViewSide || height > maxViewSide {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "viewW and viewH must be integers between 1 and " + strconv.Itoa(maxViewSide)})
		return 0, 0, false
	}
	return width, height, true
}

func queryInt(ctx *gin.Context, key string, def int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
