package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=5000"`
	// Env is read from ENV, falling back to NODE_ENV.
	Env       string        `env:"ENV"`
	NodeEnv   string        `env:"NODE_ENV,   default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, required"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=720h"`

	CORSOrigins  []string `env:"CORS_ORIGINS,  default=*"`
	EventWorkers int      `env:"EVENT_WORKERS, default=4"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI         string `env:"MONGODB_URI,      default=mongodb://localhost:27017/saricare"`
	Database    string `env:"MONGODB_DB,       default=saricare"`
	MaxPoolSize uint64 `env:"MONGODB_MAX_POOL, default=10"`
}

// RedisConfig backs the rate limiter. An empty address disables it.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@saricare.com"`
	Password string `env:"ADMIN_PASSWORD, required"`
}

type RateLimitConfig struct {
	Max    int64         `env:"RATE_LIMIT_MAX,    default=200"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads an optional .env file and then the process environment using
// go-envconfig. Variables already set in the environment win over .env.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if cfg.Env == "" {
		cfg.Env = cfg.NodeEnv
	}
	return &cfg, nil
}
