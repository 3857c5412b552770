package randpick

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
)

// Source is the entropy provider consumed by a Picker. Intn must return a
// uniformly distributed integer in [0, n) for n > 0. Implementations must be
// safe for concurrent use by multiple goroutines.
type Source interface {
	Intn(n int) int
}

// MathSource is a seeded pseudo-random Source. Two MathSources created with
// the same seed produce the same sequence of values, which makes draws taken
// through them replayable. The zero value is not usable; create one with
// NewMathSource.
type MathSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMathSource creates a MathSource seeded with seed.
func NewMathSource(seed int64) *MathSource {
	return &MathSource{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform pseudo-random integer in [0, n). It panics if n <= 0.
func (s *MathSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// CryptoSource draws from crypto/rand. It holds no state and is safe for
// concurrent use without locking.
type CryptoSource struct{}

// NewCryptoSource creates a CryptoSource.
func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

// Intn returns a uniform random integer in [0, n). It panics if n <= 0 or if
// the system entropy pool cannot be read.
func (CryptoSource) Intn(n int) int {
	v, err := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("randpick: entropy read failed: %v", err))
	}
	return int(v.Int64())
}

// CryptoSeed returns an int64 seed read from the system entropy pool, for
// callers that want an unpredictable but replayable MathSource.
func CryptoSeed() (int64, error) {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read entropy for seed: %w", err)
	}
	return int64(binary.BigEndian.Uint64(b[:]) &^ (1 << 63)), nil
}
