package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-level configuration, read once at startup.
type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Gemini GeminiConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shopping_assistant"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type GeminiConfig struct {
	APIKey  string `env:"GEMINI_API_KEY"`
	BaseURL string `env:"GEMINI_BASE_URL"`
	// Models is the fallback chain, most-preferred first.
	Models []string `env:"GEMINI_MODELS, default=gemini-1.5-flash,gemini-1.5-pro,gemini-pro-vision"`
}

// IsDevelopment reports whether the process runs in development mode, which
// unlocks verbose error payloads and pretty logs.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
