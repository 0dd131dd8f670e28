// Package random provides the seedable random source used for jitter,
// shuffles and the face-scan stand-in.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the subset of *rand.Rand the service relies on.
type Source interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Locked serialises access to a *rand.Rand so one source can be shared by
// concurrent requests.
type Locked struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Locked source seeded with seed.
func New(seed uint64) *Locked {
	return &Locked{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFromTime seeds a Locked source from the wall clock.
func NewFromTime() *Locked {
	return New(uint64(time.Now().UnixNano()))
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rnd.Shuffle(n, swap)
}
