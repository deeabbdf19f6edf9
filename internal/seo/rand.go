package seo

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the randomness source injected into the generators. A fixed seed
// makes generation reproducible in tests.
type Rand interface {
	// IntN returns a uniform random int in [0, n).
	IntN(n int) int
	// Float64 returns a uniform random float64 in [0.0, 1.0).
	Float64() float64
}

// lockedRand guards a PCG source so one shared instance can serve concurrent
// requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand creates a seedable Rand. A zero seed uses the current time.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
