package levelapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/gin-gonic/gin"
)

const (
	maxPublicDimension      = 256
	maxPublicIterationSteps = 1_000_000
	maxPublicWalkers        = 64
)

var ErrLevelTooLarge = errors.New("requested level exceeds public limits")

// LevelController serves generated levels to anonymous clients.
type LevelController struct {
	defaults level.Config
	newSeed  func() int64
	logger   i.Logger
}

// NewLevelController creates a LevelController. A nil seedFunc uses the clock.
func NewLevelController(defaults level.Config, seedFunc func() int64, logger i.Logger) (*LevelController, error) {
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errors.New("level controller requires a logger")
	}
	if seedFunc == nil {
		seedFunc = func() int64 { return time.Now().UnixNano() }
	}
	return &LevelController{
		defaults: defaults,
		newSeed:  seedFunc,
		logger:   logger,
	}, nil
}

// RegisterPublic registers public routes.
func (lc *LevelController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/levels", lc.generate)
}

// RegisterProtected registers protected routes.
func (lc *LevelController) RegisterProtected(route *gin.RouterGroup) {}

// generate builds a level. With ?format=ascii the grid is returned as text.
func (lc *LevelController) generate(ctx *gin.Context) {
	// Fields missing from a partial config keep their default values.
	defaults := lc.defaults
	request := GenerateRequest{Config: &defaults}
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := lc.defaults
	if request.Config != nil {
		cfg = *request.Config
	}
	if err := CheckLimits(cfg); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := lc.newSeed()
	if request.Seed != nil {
		seed = *request.Seed
	}

	res, err := level.Generate(cfg, level.NewSource(seed))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lc.logger.Info(fmt.Sprintf("generated %dx%d level: seed=%d floors=%d iterations=%d",
		cfg.Width, cfg.Height, seed, res.Stats.FloorCount, res.Stats.Iterations))

	if ctx.Query("format") == "ascii" {
		ctx.String(http.StatusOK, res.Grid.String())
		return
	}

	ctx.JSON(http.StatusOK, &LevelResponse{
		Seed:   seed,
		Width:  res.Grid.Width(),
		Height: res.Grid.Height(),
		Tiles:  res.Grid.Rows(),
		Spawn:  res.Spawn,
		Exit:   res.Exit,
		Stats:  res.Stats,
	})
}

// CheckLimits rejects levels too large to generate for unauthenticated or
// per-request callers.
func CheckLimits(cfg level.Config) error {
	if cfg.Width > maxPublicDimension || cfg.Height > maxPublicDimension {
		return fmt.Errorf("%w: sides are capped at %d", ErrLevelTooLarge, maxPublicDimension)
	}
	if cfg.IterationSteps > maxPublicIterationSteps {
		return fmt.Errorf("%w: iteration steps are capped at %d", ErrLevelTooLarge, maxPublicIterationSteps)
	}
	if cfg.MaxWalkers > maxPublicWalkers {
		return fmt.Errorf("%w: walkers are capped at %d", ErrLevelTooLarge, maxPublicWalkers)
	}
	return nil
}
