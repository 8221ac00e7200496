package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-walker/api"
	api_i "github.com/beka-birhanu/vinom-walker/api/i"
	"github.com/beka-birhanu/vinom-walker/api/identity"
	levelapi "github.com/beka-birhanu/vinom-walker/api/level"
	runapi "github.com/beka-birhanu/vinom-walker/api/run"
	"github.com/beka-birhanu/vinom-walker/config"
	"github.com/beka-birhanu/vinom-walker/infrastruture/leaderboard"
	logger "github.com/beka-birhanu/vinom-walker/infrastruture/log"
	"github.com/beka-birhanu/vinom-walker/infrastruture/repo"
	"github.com/beka-birhanu/vinom-walker/infrastruture/token"
	"github.com/beka-birhanu/vinom-walker/service"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leaderboardKey = "vinom-walker:leaderboard:depth"

// Global variables for dependencies
var (
	envs             config.Config
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         *repo.UserRepo
	depthLeaderboard i.Leaderboard
	runManager       i.RunManager
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	authController   api_i.Controller
	levelController  api_i.Controller
	runController    api_i.Controller
	router           *api.Router
	appLogger        i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", envs.DBUser, envs.DBPassword, envs.DBHost, envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initUserRepo(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, envs.DBName, "users")
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("User repository initialized")
}

func initLeaderboard() {
	var err error
	depthLeaderboard, err = leaderboard.NewRedisLeaderboard(redisClient, leaderboardKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initRunManager() {
	runLogger, err := logger.New("RUN-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run manager logger: %v", err))
		os.Exit(1)
	}

	runManager, err = service.NewRunManager(&service.RunManagerConfig{
		Defaults:    envs.Level,
		Leaderboard: depthLeaderboard,
		UserRepo:    userRepo,
		Logger:      runLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	levelLogger, err := logger.New("LEVELS", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level logger: %v", err))
		os.Exit(1)
	}
	levelController, err = levelapi.NewLevelController(envs.Level, nil, levelLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level controller: %v", err))
		os.Exit(1)
	}

	runController, err = runapi.NewRunController(runManager, depthLeaderboard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, levelController, runController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	envs = config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initUserRepo(ctx, mongoClient)
	initLeaderboard()
	initRunManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
