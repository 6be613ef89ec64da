package rsa

import (
	"errors"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	comm_rsa "github.com/mr-shifu/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/zeebo/blake3"
)

var (
	ErrInvalidKey  = errors.New("rsa: invalid key")
	ErrNoSecretKey = errors.New("rsa: key has no private part")
)

type RSAKey struct {
	// Secret key, nil for public-only keys
	sk *core_rsa.SecretKey

	// Public key
	pk *core_rsa.PublicKey
}

type rawRSAKey struct {
	N []byte
	E []byte
	D []byte
}

var _ comm_rsa.RSAKey = RSAKey{}

func NewRSAKey(sk *core_rsa.SecretKey, pk *core_rsa.PublicKey) RSAKey {
	return RSAKey{
		sk: sk,
		pk: pk,
	}
}

// Bytes returns the CBOR encoding of (N, E) and, for private keys, D.
// The prime factors are never serialized; a reimported private key decrypts
// without the CRT shortcut but with identical results.
func (key RSAKey) Bytes() ([]byte, error) {
	if key.pk == nil {
		return nil, ErrInvalidKey
	}

	raw := &rawRSAKey{
		N: key.pk.N().Bytes(),
		E: key.pk.E().Bytes(),
	}
	if key.sk != nil {
		raw.D = key.sk.D().Bytes()
	}
	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier, a BLAKE3 digest of the modulus.
func (key RSAKey) SKI() []byte {
	if key.pk == nil {
		return nil
	}
	sum := blake3.Sum256(key.pk.N().Bytes())
	return sum[:]
}

// Private returns true if the key contains the secret exponent.
func (key RSAKey) Private() bool {
	return key.sk != nil
}

// PublicKey returns the public part of the key.
func (key RSAKey) PublicKey() comm_rsa.RSAKey {
	return NewRSAKey(nil, key.pk)
}

// Exponent returns the public exponent e.
func (key RSAKey) Exponent() *big.Int {
	return key.pk.E()
}

// Modulus returns the modulus n.
func (key RSAKey) Modulus() *big.Int {
	return key.pk.N()
}

// Encrypt encrypts a single message block under the public part.
func (key RSAKey) Encrypt(msg []byte) (*big.Int, error) {
	return key.pk.Encrypt(msg)
}

// Decrypt decrypts a ciphertext with the secret exponent.
func (key RSAKey) Decrypt(ct *big.Int) ([]byte, error) {
	if key.sk == nil {
		return nil, ErrNoSecretKey
	}
	return key.sk.Decrypt(ct)
}

// DecryptText decrypts a ciphertext and requires UTF-8 plaintext.
func (key RSAKey) DecryptText(ct *big.Int) (string, error) {
	if key.sk == nil {
		return "", ErrNoSecretKey
	}
	return key.sk.DecryptText(ct)
}

// fromBytes returns an RSA key from its binary encoding.
func fromBytes(data []byte) (RSAKey, error) {
	raw := &rawRSAKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return RSAKey{}, err
	}
	if len(raw.N) == 0 || len(raw.E) == 0 {
		return RSAKey{}, ErrInvalidKey
	}

	n := new(big.Int).SetBytes(raw.N)
	e := new(big.Int).SetBytes(raw.E)
	pk := core_rsa.NewPublicKey(e, n)

	if len(raw.D) == 0 {
		return RSAKey{pk: pk}, nil
	}

	d := new(big.Int).SetBytes(raw.D)
	return RSAKey{
		sk: core_rsa.NewSecretKey(d, n),
		pk: pk,
	}, nil
}
