package batch

import (
	"log/slog"

	"github.com/katalvlaran/anyangle/lazytheta"
)

// Config configures a batch run.
//
// Backend  – execution strategy (default Sequential{}).
// Search   – options forwarded to every lazytheta.Searcher.
// Prelabel – compute grid component labels once per run and share them, so
//
//	pairs in different components are answered without search.
//
// Lock     – host execution lock released around parallel sections.
// Logger   – structured logger for run summaries and per-search debug lines.
type Config struct {
	Backend  Backend
	Search   []lazytheta.Option
	Prelabel bool
	Lock     HostLock
	Logger   *slog.Logger
}

// ConfigOption is a functional option for Run and RunTasks.
type ConfigOption func(*Config)

// DefaultConfig returns a sequential, unlabelled configuration with the
// default search options, a NopLock and slog.Default().
func DefaultConfig() Config {
	return Config{
		Backend: Sequential{},
		Lock:    NopLock{},
		Logger:  slog.Default(),
	}
}

// WithBackend selects the execution strategy. A nil backend is ignored.
func WithBackend(b Backend) ConfigOption {
	return func(c *Config) {
		if b != nil {
			c.Backend = b
		}
	}
}

// WithSearchOptions appends options for every Searcher of the run.
func WithSearchOptions(opts ...lazytheta.Option) ConfigOption {
	return func(c *Config) { c.Search = append(c.Search, opts...) }
}

// WithPrelabel enables the shared component pre-check.
func WithPrelabel() ConfigOption {
	return func(c *Config) { c.Prelabel = true }
}

// WithHostLock sets the host execution lock. A nil lock is ignored.
func WithHostLock(l HostLock) ConfigOption {
	return func(c *Config) {
		if l != nil {
			c.Lock = l
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) ConfigOption {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
