package buffer

import (
	"github.com/cwbudde/algo-container/container/alloc"
	"github.com/cwbudde/algo-container/container/core"
)

// Config defines how a Buffer acquires and grows its storage.
type Config struct {
	Allocator   alloc.Allocator
	MinCapacity int
	Label       string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Allocator:   alloc.Default,
		MinCapacity: core.DefaultMinCapacity,
		Label:       "buffer",
	}
}

// WithAllocator routes storage requests through a.
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *Config) {
		if a != nil {
			cfg.Allocator = a
		}
	}
}

// WithMinCapacity sets the smallest capacity a growth step produces.
// The default of 1 grows an empty buffer to 1, then 2, 4, 8...
func WithMinCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinCapacity = n
		}
	}
}

// WithLabel names the buffer's blocks in allocator events.
func WithLabel(label string) Option {
	return func(cfg *Config) {
		if label != "" {
			cfg.Label = label
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
