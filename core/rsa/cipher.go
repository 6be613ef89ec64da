package rsa

import (
	"errors"
	"math/big"
	"unicode/utf8"
)

var (
	// ErrMessageTooLarge is returned when the message integer is not below
	// the modulus. There is no blocking or padding; the caller must pick a
	// shorter message or a larger key.
	ErrMessageTooLarge = errors.New("rsa: message does not fit below the modulus")

	// ErrCiphertextOutOfRange is returned for ciphertexts outside [0, n).
	ErrCiphertextOutOfRange = errors.New("rsa: ciphertext out of range")

	// ErrInvalidEncoding is returned when a decrypted block is not valid
	// UTF-8, typically after decrypting with the wrong key or a corrupted
	// ciphertext.
	ErrInvalidEncoding = errors.New("rsa: decrypted message is not valid UTF-8")
)

// Encrypt interprets msg as a big-endian unsigned integer M and returns
// C = Mᵉ (mod n). Fails with ErrMessageTooLarge when M ≥ n. Encryption is
// deterministic: the same message and key always give the same ciphertext.
func (pk *PublicKey) Encrypt(msg []byte) (*big.Int, error) {
	m := new(big.Int).SetBytes(msg)
	if m.Cmp(pk.n) >= 0 {
		return nil, ErrMessageTooLarge
	}
	return pk.mod.ExpBig(m, pk.e), nil
}

// Decrypt computes M = Cᵈ (mod n) and returns M as its minimal big-endian
// byte sequence. A corrupted or foreign ciphertext still decrypts to some
// value; nothing here authenticates the result.
func (sk *SecretKey) Decrypt(ct *big.Int) ([]byte, error) {
	if ct.Sign() < 0 || ct.Cmp(sk.n) >= 0 {
		return nil, ErrCiphertextOutOfRange
	}
	m := sk.mod.ExpBig(ct, sk.d)
	return m.Bytes(), nil
}

// DecryptText decrypts ct and additionally requires the plaintext to be
// valid UTF-8, failing with ErrInvalidEncoding otherwise.
func (sk *SecretKey) DecryptText(ct *big.Int) (string, error) {
	b, err := sk.Decrypt(ct)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}
