package sample

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/math/prime"
	"github.com/pkg/errors"
)

// Prime samples a uniformly random odd integer of exactly bits bits (top bit
// set) from rand and resamples until the primality test accepts it. The loop
// is unbounded: prime density makes termination overwhelmingly likely, and a
// candidate count would only convert a pathological random source into a
// different failure mode. A nil rand falls back to crypto/rand.
//
// bits must be at least 2.
func Prime(rand io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("sample: prime bit length must be at least 2")
	}
	if rand == nil {
		rand = cryptorand.Reader
	}

	buf := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, errors.WithMessage(err, "sample: failed to read random candidate")
		}

		// Clear the excess high bits, then pin the top bit so the candidate
		// has exactly the requested length, and the low bit so it is odd.
		excess := 8*len(buf) - bits
		buf[0] &= 0xFF >> excess
		buf[0] |= 1 << (7 - excess)
		buf[len(buf)-1] |= 1

		candidate := new(big.Int).SetBytes(buf)
		if prime.IsPrime(candidate) {
			return candidate, nil
		}
	}
}
