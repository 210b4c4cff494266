package pgstore

import "time"

// Config drives Connect from the environment. Pool sizing defaults suit a
// small service; deployments tune them per instance.
type Config struct {
	ConnectionString  string        `env:"RECORDVAL_PG_CONN_URL,required"`
	MaxOpenConns      int32         `env:"RECORDVAL_PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"RECORDVAL_PG_MAX_IDLE_CONNS" envDefault:"5"`
	HealthCheckPeriod time.Duration `env:"RECORDVAL_PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"RECORDVAL_PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"RECORDVAL_PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Connection retries, spaced RetryInterval, 2x, 3x... apart.
	RetryAttempts int           `env:"RECORDVAL_PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"RECORDVAL_PG_RETRY_INTERVAL" envDefault:"5s"`
}
