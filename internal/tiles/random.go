package tiles

import (
	"math/rand/v2"
	"time"
)

// seedMix decorrelates the two PCG words derived from one seed.
const seedMix = 0x9e3779b97f4a7c15

// NewRand returns a PCG source derived from seed. A zero seed picks one
// from the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^seedMix))
}
