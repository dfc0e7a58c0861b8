package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	JWTSecret    string `env:"JWT_SECRET"`
	JWTIssuer    string `env:"JWT_ISSUER"`
}

// ParseFlags builds the config from CLI flags, the environment and an optional .env file.
// Flags win over the environment, which wins over the .env file.
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var envFile string

	fs := flag.NewFlagSet("quickly-poll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Identity provider (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flags.JWTSecret, "jwt-secret", "", "Identity token secret (prefer env)")
	fs.StringVar(&flags.JWTIssuer, "jwt-issuer", "", "Expected identity token issuer")

	fs.StringVar(&envFile, "env-file", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}
	if flags.DatabaseType != "" {
		cfg.DatabaseType = flags.DatabaseType
	}
	if flags.JWTSecret != "" {
		cfg.JWTSecret = flags.JWTSecret
	}
	if flags.JWTIssuer != "" {
		cfg.JWTIssuer = flags.JWTIssuer
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	return cfg, nil
}
