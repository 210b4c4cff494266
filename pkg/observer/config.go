package observer

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls observer behavior from the environment, letting deployments
// tune automatic validation without code changes.
type Config struct {
	// Enabled gates the whole automatic-validation path for observers built
	// from this config. The process-wide switches in the root package still
	// apply on top.
	Enabled bool `env:"RECORDVAL_AUTO_VALIDATE" envDefault:"true"`

	// LogFailures controls whether failed validations are logged.
	LogFailures bool `env:"RECORDVAL_LOG_FAILURES" envDefault:"true"`
}

var defaultEnvLoaded sync.Once

// LoadConfig parses observer configuration from the environment, loading the
// default .env file first when present.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
