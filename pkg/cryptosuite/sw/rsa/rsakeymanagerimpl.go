package rsa

import (
	"encoding/hex"
	"math/big"

	"github.com/mr-shifu/rsa-lib/core/pool"
	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	comm_rsa "github.com/mr-shifu/rsa-lib/pkg/common/cryptosuite/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
	"github.com/mr-shifu/rsa-lib/pkg/common/keystore"
	"github.com/pkg/errors"
)

// DefaultBitLen is the per-prime bit length used when the config does not
// set one; the resulting modulus is twice as long.
const DefaultBitLen = 1024

type Config struct {
	// BitLen is the bit length of each of the two primes.
	BitLen int
}

type RSAKeyManagerImpl struct {
	keystore keystore.Keystore
	pl       *pool.Pool
	cfg      *Config
}

var _ comm_rsa.RSAKeyManager = (*RSAKeyManagerImpl)(nil)

func NewRSAKeyManager(store keystore.Keystore, pl *pool.Pool, cfg *Config) *RSAKeyManagerImpl {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.BitLen == 0 {
		cfg.BitLen = DefaultBitLen
	}
	return &RSAKeyManagerImpl{
		keystore: store,
		pl:       pl,
		cfg:      cfg,
	}
}

func (mgr *RSAKeyManagerImpl) GenerateKey(opts keyopts.Options) (comm_rsa.RSAKey, error) {
	pub, sec, err := core_rsa.GenerateKeys(nil, mgr.cfg.BitLen, mgr.pl)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to generate key pair")
	}
	key := NewRSAKey(sec, pub)

	decoded, err := key.Bytes()
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to encode key")
	}

	// get key SKI and encode it to hex string as keyID
	keyID := hex.EncodeToString(key.SKI())

	// import the encoded key to the keystore with keyID
	if err := mgr.keystore.Import(keyID, decoded, opts); err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to import key to keystore")
	}

	return key, nil
}

func (mgr *RSAKeyManagerImpl) ImportKey(raw interface{}, opts keyopts.Options) (comm_rsa.RSAKey, error) {
	var key RSAKey
	var err error

	switch raw := raw.(type) {
	case []byte:
		key, err = fromBytes(raw)
		if err != nil {
			return nil, errors.WithMessage(err, "rsa: failed to decode key")
		}
	case RSAKey:
		key = raw
	default:
		return nil, ErrInvalidKey
	}

	decoded, err := key.Bytes()
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to encode key")
	}

	keyID := hex.EncodeToString(key.SKI())
	if err := mgr.keystore.Import(keyID, decoded, opts); err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to import key to keystore")
	}

	return key, nil
}

func (mgr *RSAKeyManagerImpl) GetKey(opts keyopts.Options) (comm_rsa.RSAKey, error) {
	decoded, err := mgr.keystore.Get(opts)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to get key from keystore")
	}

	key, err := fromBytes(decoded)
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to decode key")
	}
	return key, nil
}

func (mgr *RSAKeyManagerImpl) Encrypt(message string, opts keyopts.Options) (*big.Int, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return nil, err
	}

	ct, err := key.Encrypt([]byte(message))
	if err != nil {
		return nil, errors.WithMessage(err, "rsa: failed to encrypt message")
	}
	return ct, nil
}

func (mgr *RSAKeyManagerImpl) Decrypt(ct *big.Int, opts keyopts.Options) (string, error) {
	key, err := mgr.GetKey(opts)
	if err != nil {
		return "", err
	}

	text, err := key.DecryptText(ct)
	if err != nil {
		return "", errors.WithMessage(err, "rsa: failed to decrypt ciphertext")
	}
	return text, nil
}
