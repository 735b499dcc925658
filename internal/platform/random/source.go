package random

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
)

// Source yields uniform integers in [0, n). Implementations need not be safe
// for concurrent use unless stated.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from the operating system CSPRNG and is safe for
// concurrent use.
type CryptoSource struct{}

func NewCrypto() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is unusable.
		panic(err)
	}
	return int(v.Int64())
}

// NewSeeded returns a deterministic source, used by tests and replays.
func NewSeeded(seed uint64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return mrand.New(mrand.NewChaCha8(key))
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
