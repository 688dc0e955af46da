package utils

import (
	"math/rand"
	"time"
)

// Rand is the single source of randomness used for drone selection,
// damage sampling and template selection. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source; a zero seed picks a time based one
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
