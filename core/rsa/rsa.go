// Package rsa implements textbook RSA over two sampled primes: modular
// key-pair generation and single-block modular-exponentiation encryption.
// There is no padding, blinding or ciphertext authentication; the package is
// a pedagogical core, not a drop-in for crypto/rsa.
package rsa

import (
	"errors"
	"io"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/math/arith"
	"github.com/mr-shifu/rsa-lib/core/math/euclid"
	"github.com/mr-shifu/rsa-lib/core/math/prime"
	"github.com/mr-shifu/rsa-lib/core/math/sample"
	"github.com/mr-shifu/rsa-lib/core/pool"
)

// DefaultExponent is the public exponent tried first during key generation.
const DefaultExponent = 65537

// maxExponentScan caps the fallback scan over odd exponent candidates. The
// scan is dead code for realistic moduli, 65537 is coprime with virtually
// every random φ, and the cap keeps an adversarial φ from looping forever.
const maxExponentScan = 1 << 20

var (
	ErrPrimesEqual = errors.New("rsa: primes must be distinct")
	ErrNotPrime    = errors.New("rsa: factor failed the primality test")
	ErrNoExponent  = errors.New("rsa: no usable public exponent found")
)

var one = big.NewInt(1)

// PublicKey is the pair (e, n). Immutable once created.
type PublicKey struct {
	e, n *big.Int
	mod  *arith.Modulus
}

// SecretKey is the pair (d, n). Keys produced by GenerateKeys or FromPrimes
// carry the factorization of n internally to speed up decryption; it is
// never exposed. Immutable once created.
type SecretKey struct {
	d, n *big.Int
	mod  *arith.Modulus
}

// NewPublicKey builds a public key from an exponent and modulus, both copied.
func NewPublicKey(e, n *big.Int) *PublicKey {
	nc := new(big.Int).Set(n)
	return &PublicKey{
		e:   new(big.Int).Set(e),
		n:   nc,
		mod: arith.ModulusFromBig(nc),
	}
}

// NewSecretKey builds a secret key from an exponent and modulus, both copied.
// A key imported this way has no factorization hint and decrypts with a
// single full-width exponentiation.
func NewSecretKey(d, n *big.Int) *SecretKey {
	nc := new(big.Int).Set(n)
	return &SecretKey{
		d:   new(big.Int).Set(d),
		n:   nc,
		mod: arith.ModulusFromBig(nc),
	}
}

// E returns a copy of the public exponent.
func (pk *PublicKey) E() *big.Int { return new(big.Int).Set(pk.e) }

// N returns a copy of the modulus.
func (pk *PublicKey) N() *big.Int { return new(big.Int).Set(pk.n) }

// D returns a copy of the secret exponent.
func (sk *SecretKey) D() *big.Int { return new(big.Int).Set(sk.d) }

// N returns a copy of the modulus.
func (sk *SecretKey) N() *big.Int { return new(big.Int).Set(sk.n) }

// GenerateKeys produces a key pair whose modulus is the product of two
// distinct random primes of exactly bits bits each. rand may be nil to use
// crypto/rand. pl may be nil to search for the two primes sequentially; with
// a pool the two searches run concurrently, which requires rand to be safe
// for concurrent use (crypto/rand is).
//
// The public exponent is DefaultExponent when coprime with φ(n), otherwise
// the smallest coprime odd candidate from 3 up; ErrNoExponent is returned if
// the capped scan finds none.
func GenerateKeys(rand io.Reader, bits int, pl *pool.Pool) (*PublicKey, *SecretKey, error) {
	if bits < 4 {
		return nil, nil, errors.New("rsa: prime bit length must be at least 4")
	}

	results := pl.Search(2, func() interface{} {
		p, err := sample.Prime(rand, bits)
		if err != nil {
			return err
		}
		return p
	})

	var p, q *big.Int
	for _, r := range results {
		switch v := r.(type) {
		case error:
			return nil, nil, v
		case *big.Int:
			if p == nil {
				p = v
			} else {
				q = v
			}
		}
	}

	// the two half-width primes must differ, else n is a square
	for q.Cmp(p) == 0 {
		var err error
		if q, err = sample.Prime(rand, bits); err != nil {
			return nil, nil, err
		}
	}

	return FromPrimes(p, q, nil)
}

// FromPrimes derives a key pair from two given primes. A nil e selects the
// public exponent automatically; a caller-provided e must be coprime with
// φ(n) or the derivation fails with euclid.ErrNoInverse. Both primes are
// re-checked against the primality test.
func FromPrimes(p, q, e *big.Int) (*PublicKey, *SecretKey, error) {
	if p.Cmp(q) == 0 {
		return nil, nil, ErrPrimesEqual
	}
	if !prime.IsPrime(p) || !prime.IsPrime(q) {
		return nil, nil, ErrNotPrime
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, one),
		new(big.Int).Sub(q, one),
	)

	if e == nil {
		var err error
		if e, err = selectExponent(phi); err != nil {
			return nil, nil, err
		}
	} else {
		e = new(big.Int).Set(e)
	}

	d, err := euclid.ModInverse(e, phi)
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{
		e:   e,
		n:   n,
		mod: arith.ModulusFromBig(n),
	}
	sec := &SecretKey{
		d:   d,
		n:   n,
		mod: arith.ModulusFromFactorsBig(p, q),
	}
	return pub, sec, nil
}

// selectExponent returns DefaultExponent when gcd(e, φ) = 1 and otherwise
// scans odd candidates from 3 upward. The scan is bounded by maxExponentScan.
func selectExponent(phi *big.Int) (*big.Int, error) {
	e := big.NewInt(DefaultExponent)
	if g, _, _ := euclid.GCD(e, phi); g.Cmp(one) == 0 {
		return e, nil
	}

	candidate := big.NewInt(3)
	step := big.NewInt(2)
	for i := 0; i < maxExponentScan; i++ {
		if candidate.Cmp(phi) >= 0 {
			break
		}
		if g, _, _ := euclid.GCD(candidate, phi); g.Cmp(one) == 0 {
			return candidate, nil
		}
		candidate = new(big.Int).Add(candidate, step)
	}
	return nil, ErrNoExponent
}
