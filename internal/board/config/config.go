// Package config centralizes the board's tuning parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/asteroid-board/internal/asset"
)

// Timing (milliseconds)
const (
	AsteroidGenerateRate = 1000 // Interval between asteroid spawns
	UpdateRate           = 200  // Interval between board state refreshes
	CheckKeysInterval    = 50   // Input polling interval
	KeyInactivityTimeout = 3000 // Idle time before input is considered inactive
)

// Movement (pixels)
const (
	StartPoint           = 150 // Initial placement offset
	PlayerMovementAmount = 15  // Step per movement command
)

var (
	ErrNoAsteroidAssets = errors.New("no asteroid assets registered")
	ErrNonPositive      = errors.New("tuning value must be positive")
)

// Config is the read-only configuration surface. Build one at startup with New
// and pass it to every board component; accessors return copies and nothing
// mutates a Config after New returns.
type Config struct {
	tuning    map[Name]int
	asteroids []asset.Reference
}

// New builds a Config from the tuning constants and the asteroid variants of
// reg, in asset.AsteroidVariants order. Every variant must be registered.
func New(reg *asset.Registry) (*Config, error) {
	return build(defaultTuning(), reg)
}

func defaultTuning() map[Name]int {
	return map[Name]int{
		NameAsteroidGenerateRate: AsteroidGenerateRate,
		NameUpdateRate:           UpdateRate,
		NameStartPoint:           StartPoint,
		NamePlayerMovementAmount: PlayerMovementAmount,
		NameCheckKeysInterval:    CheckKeysInterval,
		NameKeyInactivityTimeout: KeyInactivityTimeout,
	}
}

func build(tuning map[Name]int, reg *asset.Registry) (*Config, error) {
	for _, name := range Names() {
		if tuning[name] <= 0 {
			return nil, fmt.Errorf("%s=%d: %w", name, tuning[name], ErrNonPositive)
		}
	}

	if reg == nil {
		return nil, ErrNoAsteroidAssets
	}
	asteroids, err := reg.Select(asset.AsteroidVariants()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAsteroidAssets, err)
	}

	return &Config{
		tuning:    tuning,
		asteroids: asteroids,
	}, nil
}

// Tuning returns every tuning constant keyed by name. The map is a fresh copy.
func (c *Config) Tuning() map[Name]int {
	out := make(map[Name]int, len(c.tuning))
	for k, v := range c.tuning {
		out[k] = v
	}
	return out
}

// Value returns a single tuning constant.
func (c *Config) Value(name Name) (int, bool) {
	v, ok := c.tuning[name]
	return v, ok
}

// AsteroidImages returns the asteroid sprite variants in order.
// The slice is a fresh copy.
func (c *Config) AsteroidImages() []asset.Reference {
	out := make([]asset.Reference, len(c.asteroids))
	copy(out, c.asteroids)
	return out
}

// AsteroidGenerateInterval is the spawn cadence.
func (c *Config) AsteroidGenerateInterval() time.Duration {
	return c.millis(NameAsteroidGenerateRate)
}

// UpdateInterval is the board refresh cadence.
func (c *Config) UpdateInterval() time.Duration {
	return c.millis(NameUpdateRate)
}

// CheckKeysEvery is the input polling cadence.
func (c *Config) CheckKeysEvery() time.Duration {
	return c.millis(NameCheckKeysInterval)
}

// KeyInactivity is the idle threshold for input.
func (c *Config) KeyInactivity() time.Duration {
	return c.millis(NameKeyInactivityTimeout)
}

// StartOffset is the initial placement offset in pixels.
func (c *Config) StartOffset() int {
	return c.tuning[NameStartPoint]
}

// MovementStep is the per-command player step in pixels.
func (c *Config) MovementStep() int {
	return c.tuning[NamePlayerMovementAmount]
}

func (c *Config) millis(name Name) time.Duration {
	return time.Duration(c.tuning[name]) * time.Millisecond
}
