package probehash

import (
	"log/slog"
)

// DefaultLoadFactor is the ratio of used slots to capacity at which a table grows
const DefaultLoadFactor = 0.4

// Config holds the settings of a Table. Start from DefaultConfig.
type Config struct {
	// LoadFactor is the growth threshold α. Before a new key is placed, the table grows if
	// (live entries + tombstones) / capacity has reached it. Values of 1 and above are legal,
	// but let the table fill up completely, after which Insert fails with ErrCapacityExhausted.
	LoadFactor float64
	// InitialCapacity must be an entry of Capacities. Zero means Capacities.First().
	InitialCapacity uint64
	// Capacities is the growth sequence.
	Capacities *CapacityTable
	// Logger receives growth events at debug level and insertion failures at error level.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration New starts from
func DefaultConfig() Config {
	return Config{
		LoadFactor: DefaultLoadFactor,
		Capacities: DefaultCapacities,
		Logger:     slog.New(discardHandler{}),
	}
}

// Option modifies the Config a table is created with
type Option func(*Config)

// WithLoadFactor sets the growth threshold
func WithLoadFactor(alpha float64) Option {
	return func(cfg *Config) {
		cfg.LoadFactor = alpha
	}
}

// WithInitialCapacity sets the starting number of slots
func WithInitialCapacity(capacity uint64) Option {
	return func(cfg *Config) {
		cfg.InitialCapacity = capacity
	}
}

// WithCapacities sets the growth sequence. A DoubleHashProber without its own moduli
// takes its companion primes from this table too.
func WithCapacities(capacities *CapacityTable) Option {
	return func(cfg *Config) {
		cfg.Capacities = capacities
	}
}

// WithLogger sets the logger receiving growth and failure events
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}
