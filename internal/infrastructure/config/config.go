package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Hash  HashConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig holds the process-wide token settings. The secret is loaded once
// at startup; rotating it requires a restart and invalidates every
// outstanding token.
type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET, required"`
	Issuer   string        `env:"JWT_ISSUER, default=innerview"`
	TokenTTL time.Duration `env:"JWT_TTL,    default=24h"`
}

type HashConfig struct {
	BcryptCost int `env:"BCRYPT_COST, default=10"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=innerview"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,         default=localhost:6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,           default=0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
