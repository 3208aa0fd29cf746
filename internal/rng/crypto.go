package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is the Generator used for live games. It reads from crypto/rand
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("rng: n must be > 0")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
