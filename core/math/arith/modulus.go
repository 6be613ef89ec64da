package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus and enables faster modular exponentiation
// when the factorization is known.
// When n = p⋅q, xᵉ (mod n) can be computed with only two exponentiations
// with p and q respectively.
type Modulus struct {
	// represents modulus n
	*saferith.Modulus
	// n = p⋅q
	p, q *saferith.Modulus
	// pInv = p⁻¹ (mod q)
	pNat, pInv *saferith.Nat
}

// ModulusFromN creates a simple wrapper around a given modulus n.
// The modulus is not copied.
func ModulusFromN(n *saferith.Modulus) *Modulus {
	return &Modulus{
		Modulus: n,
	}
}

// ModulusFromBig wraps a math/big modulus without factorization hints.
func ModulusFromBig(n *big.Int) *Modulus {
	nNat := new(saferith.Nat).SetBig(n, n.BitLen())
	return ModulusFromN(saferith.ModulusFromNat(nNat))
}

// ModulusFromFactors creates the necessary cached values to accelerate
// exponentiation mod n = p⋅q.
func ModulusFromFactors(p, q *saferith.Nat) *Modulus {
	nNat := new(saferith.Nat).Mul(p, q, -1)
	nMod := saferith.ModulusFromNat(nNat)
	pMod := saferith.ModulusFromNat(p)
	qMod := saferith.ModulusFromNat(q)
	pInvQ := new(saferith.Nat).ModInverse(p, qMod)
	pNat := new(saferith.Nat).SetNat(p)
	return &Modulus{
		Modulus: nMod,
		p:       pMod,
		q:       qMod,
		pNat:    pNat,
		pInv:    pInvQ,
	}
}

// ModulusFromFactorsBig is ModulusFromFactors for math/big primes.
func ModulusFromFactorsBig(p, q *big.Int) *Modulus {
	pNat := new(saferith.Nat).SetBig(p, p.BitLen())
	qNat := new(saferith.Nat).SetBig(q, q.BitLen())
	return ModulusFromFactors(pNat, qNat)
}

// Exp is equivalent to (saferith.Nat).Exp(x, e, n.Modulus).
// It returns xᵉ (mod n).
func (n *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	if n.hasFactorization() {
		var xp, xq saferith.Nat
		xp.Exp(x, e, n.p) // x₁ = xᵉ (mod p₁)
		xq.Exp(x, e, n.q) // x₂ = xᵉ (mod p₂)
		// r = x₁ + p₁ ⋅ [p₁⁻¹ (mod p₂)] ⋅ [x₂ - x₁] (mod n)
		r := xq.ModSub(&xq, &xp, n.Modulus)
		r.ModMul(r, n.pInv, n.Modulus)
		r.ModMul(r, n.pNat, n.Modulus)
		r.ModAdd(r, &xp, n.Modulus)
		return r
	}
	return new(saferith.Nat).Exp(x, e, n.Modulus)
}

// ExpBig computes xᵉ (mod n) over math/big operands, using the cached
// factorization when present. x must be in [0, n).
func (n *Modulus) ExpBig(x, e *big.Int) *big.Int {
	xNat := new(saferith.Nat).SetBig(x, x.BitLen())
	eNat := new(saferith.Nat).SetBig(e, e.BitLen())
	return n.Exp(xNat, eNat).Big()
}

// Big returns the modulus value as a math/big integer.
func (n *Modulus) Big() *big.Int {
	return n.Nat().Big()
}

func (n Modulus) hasFactorization() bool {
	return n.p != nil && n.q != nil && n.pNat != nil && n.pInv != nil
}
