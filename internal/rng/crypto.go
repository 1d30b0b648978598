package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// RandomSeed returns a non-negative seed suitable for NewSeeded.
// Used when a simulation doesn't specify a base seed.
func RandomSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}

	seed := int64(binary.BigEndian.Uint64(buf[:]))
	if seed < 0 {
		seed = -seed
	}

	return seed
}
