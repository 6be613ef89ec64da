package prime

import (
	"crypto/rand"
	"math/big"
)

// MillerRabinRounds is the number of random bases tested by IsPrime.
// A composite survives a single round with probability at most 1/4, so the
// oracle accepts a composite with probability at most 4⁻⁴⁰ < 2⁻⁸⁰.
const MillerRabinRounds = 40

// smallPrimes is used for cheap trial division before the probabilistic test.
var smallPrimes = []int64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsPrime reports whether n is prime. The verdict is exact for n up to the
// largest small prime and probabilistic beyond that, with false-positive
// probability bounded by MillerRabinRounds. Non-positive n is never prime.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.Cmp(one) == 0 {
		return false
	}

	rem := new(big.Int)
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true
		}
		if rem.Mod(n, p).Sign() == 0 {
			return false
		}
	}

	return millerRabin(n, MillerRabinRounds)
}

// millerRabin runs the Miller–Rabin test on odd n > 53 with the given number
// of uniformly random bases drawn from [2, n-2].
func millerRabin(n *big.Int, rounds int) bool {
	// n-1 = d·2^s with d odd
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	nMinusThree := new(big.Int).Sub(n, big.NewInt(3))
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(rand.Reader, nMinusThree)
		if err != nil {
			// The platform random source failing is not a verdict on n.
			return false
		}
		a.Add(a, two) // a in [2, n-2]

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		witness := true
		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}

	return true
}
