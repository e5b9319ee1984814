package memo

import "go.uber.org/zap"

// Config holds the settings of a Memoizer.
type Config struct {
	Name   string      // default: "memo"
	Logger *zap.Logger // default: no-op
	Shared bool        // default: false (single goroutine)
}

// Option customizes a Config.
type Option func(*Config)

// WithName sets the name attached to the memoizer's log lines.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSharedAccess makes the memoizer safe for concurrent use.
// Concurrent calls with the same missing key share one computation.
func WithSharedAccess() Option {
	return func(c *Config) {
		c.Shared = true
	}
}

// NewConfig applies opts and fills in defaults for unset fields.
func NewConfig(opts ...Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Name == "" {
		cfg.Name = "memo"
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
