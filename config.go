package dtformat

import (
	"errors"
	"log/slog"
	"strings"
)

// Config captures formatter construction settings
type Config struct {
	System        System
	Logger        *slog.Logger
	DataDirectory string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.System == nil {
		cfg.System = EnvSystem{}
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return cfg, nil
}

// WithSystem replaces the device settings source
func WithSystem(system System) Option {
	return func(c *Config) error {
		if system == nil {
			return errors.New("dtformat: system must not be nil")
		}
		c.System = system
		return nil
	}
}

// WithLogger sets the logger used for fallback and degradation events
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithDataDirectory registers a directory of locale data overlays.
// It only takes effect when the process-wide locale data has not been initialised yet.
func WithDataDirectory(dir string) Option {
	return func(c *Config) error {
		c.DataDirectory = strings.TrimSpace(dir)
		return nil
	}
}
