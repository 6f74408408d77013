package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server reads from the environment. Database
// settings are resolved separately in db.go because they support both URL
// and discrete-variable forms.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	UploadDir   string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envSeparator:","`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg, nil
}
