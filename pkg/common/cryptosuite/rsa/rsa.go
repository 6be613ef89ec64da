package rsa

import (
	"math/big"

	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

type RSAKey interface {
	// Bytes returns the binary encoding of the key.
	Bytes() ([]byte, error)

	// SKI returns the serialized key identifier, derived from the modulus.
	SKI() []byte

	// Private returns true if the key contains the secret exponent.
	Private() bool

	// PublicKey returns the public part of the key.
	PublicKey() RSAKey

	// Exponent returns the public exponent e.
	Exponent() *big.Int

	// Modulus returns the modulus n.
	Modulus() *big.Int

	// Encrypt encrypts a single message block under the public part.
	Encrypt(msg []byte) (*big.Int, error)

	// Decrypt decrypts a ciphertext with the secret exponent. Fails on a
	// public-only key.
	Decrypt(ct *big.Int) ([]byte, error)

	// DecryptText decrypts a ciphertext and requires UTF-8 plaintext.
	DecryptText(ct *big.Int) (string, error)
}

type RSAKeyManager interface {
	// GenerateKey generates a new RSA key pair and stores it under the key
	// ID carried by opts.
	GenerateKey(opts keyopts.Options) (RSAKey, error)

	// ImportKey imports a key from its binary encoding or from an RSAKey.
	ImportKey(raw interface{}, opts keyopts.Options) (RSAKey, error)

	// GetKey returns the key stored under the key ID carried by opts.
	GetKey(opts keyopts.Options) (RSAKey, error)

	// Encrypt encrypts message with the stored key's public part and
	// returns the integer ciphertext.
	Encrypt(message string, opts keyopts.Options) (*big.Int, error)

	// Decrypt decrypts a ciphertext with the stored key and returns the
	// plaintext as text.
	Decrypt(ct *big.Int, opts keyopts.Options) (string, error)
}
