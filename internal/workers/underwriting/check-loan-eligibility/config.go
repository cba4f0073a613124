// internal/workers/underwriting/check-loan-eligibility/config.go
package checkloaneligibility

import (
	"time"

	"loan-eligibility-workers/internal/common/config"
)

type Config struct {
	Timeout    time.Duration
	MaxRetries int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    10 * time.Second,
		MaxRetries: 3,
	}
}

// NewConfig derives the handler settings from the worker's configuration
// entry, keeping the defaults for unset values.
func NewConfig(wcfg config.WorkerConfig) *Config {
	cfg := LoadConfig()
	if wcfg.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wcfg.Timeout)
	}
	if wcfg.MaxRetries > 0 {
		cfg.MaxRetries = wcfg.MaxRetries
	}
	return cfg
}
