package euclid

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, g int64
	}{
		{240, 46, 2},
		{46, 240, 2},
		{17, 3480, 1},
		{65537, 3480, 1},
		{12, 0, 12},
		{0, 12, 12},
		{1, 1, 1},
		{100, 75, 25},
	}

	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		g, x, y := GCD(a, b)
		assert.Equal(t, tt.g, g.Int64(), "gcd(%d, %d)", tt.a, tt.b)

		// a·x + b·y = g
		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Zero(t, lhs.Cmp(g), "Bezout identity for (%d, %d)", tt.a, tt.b)
	}
}

func TestGCDBezoutRandom(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 256)
	for i := 0; i < 32; i++ {
		a, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)
		b, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)

		g, x, y := GCD(a, b)

		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Zero(t, lhs.Cmp(g))
		assert.Zero(t, g.Cmp(new(big.Int).GCD(nil, nil, a, b)))
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m, want int64
	}{
		{17, 3480, 1433},
		{3, 11, 4},
		{7, 120, 103},
		{65537, 3480, 2513},
	}

	for _, tt := range tests {
		inv, err := ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
		require.NoError(t, err)
		assert.Equal(t, tt.want, inv.Int64(), "inverse of %d mod %d", tt.a, tt.m)

		// (a·x) mod m = 1
		prod := new(big.Int).Mul(big.NewInt(tt.a), inv)
		prod.Mod(prod, big.NewInt(tt.m))
		assert.Equal(t, int64(1), prod.Int64())
	}
}

func TestModInverseNoInverse(t *testing.T) {
	tests := []struct {
		a, m int64
	}{
		{4, 8},
		{6, 9},
		{10, 15},
		{0, 7},
	}

	for _, tt := range tests {
		_, err := ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
		assert.ErrorIs(t, err, ErrNoInverse, "gcd(%d, %d) != 1", tt.a, tt.m)
	}
}

func TestModInverseRandom(t *testing.T) {
	m, err := rand.Prime(rand.Reader, 128)
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		a, err := rand.Int(rand.Reader, m)
		require.NoError(t, err)
		if a.Sign() == 0 {
			continue
		}

		inv, err := ModInverse(a, m)
		require.NoError(t, err)
		assert.Negative(t, inv.Cmp(m))
		assert.False(t, inv.Sign() < 0)

		prod := new(big.Int).Mul(a, inv)
		prod.Mod(prod, m)
		assert.Equal(t, int64(1), prod.Int64())
	}
}
