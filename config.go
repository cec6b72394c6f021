package depot

import (
	"io"
	"log/slog"
)

// Config holds the settings a World is built with. The zero value is usable;
// NewConfig returns the defaults.
type Config struct {
	logger            *slog.Logger
	entityCapacity    int
	componentCapacity int
}

func NewConfig() Config {
	return Config{
		entityCapacity:    128,
		componentCapacity: 128,
	}
}

// WithLogger routes the world's diagnostics to logger.
func (c Config) WithLogger(logger *slog.Logger) Config {
	c.logger = logger
	return c
}

// WithEntityCapacity preallocates room for n entity records.
func (c Config) WithEntityCapacity(n int) Config {
	c.entityCapacity = max(n, 0)
	return c
}

// WithComponentCapacity preallocates room for n components in each store.
func (c Config) WithComponentCapacity(n int) Config {
	c.componentCapacity = max(n, 0)
	return c
}

func (c Config) loggerOrDiscard() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
