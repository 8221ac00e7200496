package config

import (
	"log"
	"os"
	"strconv"

	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string       // Host IP for the server
	RESTPort      int          // Port for the REST API
	DBHost        string       // Hostname or IP address for the database
	DBPort        int          // Port number for the database
	DBUser        string       // Username for the database
	DBPassword    string       // Password for the database
	DBName        string       // Name of the database
	RedisAddr     string       // host:port of the Redis server backing the leaderboard
	RedisPassword string       // Password for Redis, empty when none
	GinMode       string       // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string       // Secret key for JWT signing
	JWTIssuer     string       // Issuer claim for JWTs
	Level         level.Config // Generator settings used when a request does not send its own
}

// Load initializes and returns the application configuration.
// It loads environment variables from a .env file and exits the process when
// a required variable is missing or malformed.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		RedisAddr:     mustGetEnv("REDIS_ADDR"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
		HostIP:        mustGetEnv("HOST_IP"),
		RESTPort:      mustGetEnvAsInt("REST_PORT"),
		Level:         mustLevelConfig(os.LookupEnv),
	}
}

// mustLevelConfig builds the default generator settings from LEVEL_* variables,
// falling back to level.DefaultConfig for any that are unset.
func mustLevelConfig(lookup func(string) (string, bool)) level.Config {
	cfg, err := levelConfig(lookup)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Invalid level configuration: %v", err)
	}
	return cfg
}

func levelConfig(lookup func(string) (string, bool)) (level.Config, error) {
	cfg := level.DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"LEVEL_WIDTH", &cfg.Width},
		{"LEVEL_HEIGHT", &cfg.Height},
		{"LEVEL_MAX_WALKERS", &cfg.MaxWalkers},
		{"LEVEL_ITERATION_STEPS", &cfg.IterationSteps},
	}
	for _, v := range ints {
		if raw, ok := lookup(v.key); ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return level.Config{}, &envError{key: v.key, err: err}
			}
			*v.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"LEVEL_PERCENT_TO_FILL", &cfg.PercentToFill},
		{"LEVEL_CHANCE_CHANGE_DIR", &cfg.ChanceWalkerChangeDir},
		{"LEVEL_CHANCE_SPAWN", &cfg.ChanceWalkerSpawn},
		{"LEVEL_CHANCE_DESTROY", &cfg.ChanceWalkerDestroy},
	}
	for _, v := range floats {
		if raw, ok := lookup(v.key); ok {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return level.Config{}, &envError{key: v.key, err: err}
			}
			*v.dst = f
		}
	}

	return cfg, cfg.Validate()
}

type envError struct {
	key string
	err error
}

func (e *envError) Error() string {
	return "environment variable " + e.key + ": " + e.err.Error()
}

func (e *envError) Unwrap() error {
	return e.err
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
