package euclid

import (
	"errors"
	"math/big"
)

var (
	// ErrNoInverse is returned by ModInverse when gcd(a, m) != 1, in which
	// case no multiplicative inverse of a modulo m exists.
	ErrNoInverse = errors.New("euclid: no modular inverse exists")
)

// GCD runs the extended Euclidean algorithm on a and b.
// It returns g = gcd(a, b) together with the Bézout coefficients x, y
// satisfying a·x + b·y = g. The inputs are not modified.
func GCD(a, b *big.Int) (g, x, y *big.Int) {
	// (oldR, r) walk the remainder sequence; (oldX, x) and (oldY, y)
	// carry the Bézout coefficients alongside it. The base case
	// (b = 0) yields (a, 1, 0).
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, curX := big.NewInt(1), big.NewInt(0)
	oldY, curY := big.NewInt(0), big.NewInt(1)

	quo := new(big.Int)
	for r.Sign() != 0 {
		rem := new(big.Int)
		quo.QuoRem(oldR, r, rem)
		oldR, r = r, rem

		nextX := new(big.Int).Sub(oldX, new(big.Int).Mul(quo, curX))
		oldX, curX = curX, nextX

		nextY := new(big.Int).Sub(oldY, new(big.Int).Mul(quo, curY))
		oldY, curY = curY, nextY
	}

	return oldR, oldX, oldY
}

// ModInverse returns x in [0, m) such that (a·x) mod m = 1.
// It fails with ErrNoInverse when gcd(a, m) != 1; the caller must treat
// that as a precondition violation, not a retryable condition.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := GCD(a, m)
	if g.CmpAbs(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}
	// Bézout coefficients may be negative; normalize into [0, m).
	x.Mod(x, m)
	return x, nil
}
