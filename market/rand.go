package market

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Rand is the randomness the price model draws from. *rand.Rand satisfies
// it; tests substitute a scripted sequence.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded generator. A zero seed is replaced by one read
// from crypto/rand so production runs differ from each other.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
