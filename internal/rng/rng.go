package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/hustlebot/hustle/internal/rng Source

// Source is the random primitive every roll in the system draws from.
// Keeping it behind an interface lets services script exact draws in tests.
type Source interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64

	// Intn returns a value in [0, n)
	Intn(n int) int

	// Uniform returns a value in [min, max)
	Uniform(min, max float64) float64
}

// Config for the roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Roller implements Source on top of math/rand
type Roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new roller, seeded from the wall clock unless a seed is given
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a value in [0.0, 1.0)
func (r *Roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn returns a value in [0, n)
func (r *Roller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Uniform returns a value in [min, max)
func (r *Roller) Uniform(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.random.Float64()*(max-min)
}
