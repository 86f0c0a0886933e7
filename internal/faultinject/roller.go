package faultinject

import (
	"math/rand"
	"sync"
)

// rollSpace is the size of the uniform selection space: one fair
// 2-bit draw per decision.
const rollSpace = 4

// Roller draws the uniform 4-way selection behind the probability
// policy. Injectable so policy tests can run against a seeded or
// fixed source.
type Roller interface {
	// Roll returns a value in [0, 4).
	Roll() int
}

// lockedRoller wraps a *rand.Rand behind a mutex; *rand.Rand itself is
// not safe for concurrent use.
type lockedRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller returns a Roller backed by a rand.Rand with the
// given seed. Safe for concurrent use.
func NewSeededRoller(seed int64) Roller {
	return &lockedRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *lockedRoller) Roll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(rollSpace)
}
