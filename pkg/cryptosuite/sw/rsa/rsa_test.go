package rsa

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mr-shifu/rsa-lib/core/pool"
	core_rsa "github.com/mr-shifu/rsa-lib/core/rsa"
	"github.com/mr-shifu/rsa-lib/pkg/keyopts"
	"github.com/mr-shifu/rsa-lib/pkg/keystore"
	"github.com/mr-shifu/rsa-lib/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, pl *pool.Pool) *RSAKeyManagerImpl {
	t.Helper()
	ks_vault := vault.NewInMemoryVault()
	ks_kr := keyopts.NewInMemoryKeyOpts()
	ks := keystore.NewInMemoryKeystore(ks_vault, ks_kr)
	return NewRSAKeyManager(ks, pl, &Config{BitLen: 128})
}

func newTestOpts(t *testing.T) keyopts.Options {
	t.Helper()
	opts := keyopts.NewOptions()
	err := opts.Set("id", uuid.NewString())
	require.NoError(t, err)
	return opts
}

func TestRSAKeyManager(t *testing.T) {
	pl := pool.NewPool(0)
	defer pl.TearDown()

	mgr := newTestManager(t, pl)
	opts := newTestOpts(t)

	// generate a new RSA key pair
	key, err := mgr.GenerateKey(opts)
	require.NoError(t, err)
	assert.True(t, key.Private())

	// retrieve the key from the keystore
	newKey, err := mgr.GetKey(opts)
	require.NoError(t, err)
	assert.Equal(t, key.SKI(), newKey.SKI())
	assert.True(t, newKey.Private())

	// encrypt with the manager, decrypt with the retrieved key
	ct, err := mgr.Encrypt("hello rsa", opts)
	require.NoError(t, err)

	text, err := mgr.Decrypt(ct, opts)
	require.NoError(t, err)
	assert.Equal(t, "hello rsa", text)
}

func TestRSAKeyManagerGetMissingKey(t *testing.T) {
	mgr := newTestManager(t, nil)

	_, err := mgr.GetKey(newTestOpts(t))
	assert.Error(t, err)
}

func TestRSAKeyBytesRoundTrip(t *testing.T) {
	pub, sec, err := core_rsa.GenerateKeys(nil, 64, nil)
	require.NoError(t, err)
	key := NewRSAKey(sec, pub)

	data, err := key.Bytes()
	require.NoError(t, err)

	restored, err := fromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, key.SKI(), restored.SKI())
	assert.True(t, restored.Private())
	assert.Zero(t, key.Modulus().Cmp(restored.Modulus()))
	assert.Zero(t, key.Exponent().Cmp(restored.Exponent()))

	// a restored key decrypts what the original encrypted
	ct, err := key.Encrypt([]byte("abc"))
	require.NoError(t, err)
	pt, err := restored.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), pt)
}

func TestRSAPublicOnlyKey(t *testing.T) {
	pub, sec, err := core_rsa.GenerateKeys(nil, 64, nil)
	require.NoError(t, err)
	key := NewRSAKey(sec, pub)

	pubOnly := key.PublicKey()
	assert.False(t, pubOnly.Private())
	assert.Equal(t, key.SKI(), pubOnly.SKI())

	// the public part still encrypts
	ct, err := pubOnly.Encrypt([]byte("x"))
	require.NoError(t, err)

	// but cannot decrypt
	_, err = pubOnly.Decrypt(ct)
	assert.ErrorIs(t, err, ErrNoSecretKey)
	_, err = pubOnly.DecryptText(ct)
	assert.ErrorIs(t, err, ErrNoSecretKey)

	// serialization of the public part drops the secret exponent
	data, err := pubOnly.Bytes()
	require.NoError(t, err)
	restored, err := fromBytes(data)
	require.NoError(t, err)
	assert.False(t, restored.Private())
}

func TestRSAKeyManagerImportPublicKey(t *testing.T) {
	mgr := newTestManager(t, nil)

	pub, sec, err := core_rsa.GenerateKeys(nil, 64, nil)
	require.NoError(t, err)
	key := NewRSAKey(sec, pub)

	pubBytes, err := key.PublicKey().Bytes()
	require.NoError(t, err)

	opts := newTestOpts(t)
	imported, err := mgr.ImportKey(pubBytes, opts)
	require.NoError(t, err)
	assert.False(t, imported.Private())

	// the stored public key encrypts through the manager
	ct, err := mgr.Encrypt("for your eyes", opts)
	require.NoError(t, err)

	// decryption needs the private part, which the manager does not hold
	_, err = mgr.Decrypt(ct, opts)
	require.Error(t, err)

	text, err := key.DecryptText(ct)
	require.NoError(t, err)
	assert.Equal(t, "for your eyes", text)
}

func TestRSAKeyManagerImportInvalid(t *testing.T) {
	mgr := newTestManager(t, nil)

	_, err := mgr.ImportKey(42, newTestOpts(t))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = mgr.ImportKey([]byte{0x01, 0x02}, newTestOpts(t))
	assert.Error(t, err)
}

func TestRSAKeyManagerDecryptInvalidEncoding(t *testing.T) {
	mgr := newTestManager(t, nil)
	opts := newTestOpts(t)

	key, err := mgr.GenerateKey(opts)
	require.NoError(t, err)

	// a raw non-UTF-8 block decrypts but fails the text surface
	ct, err := key.Encrypt([]byte{0xC8})
	require.NoError(t, err)

	_, err = mgr.Decrypt(ct, opts)
	assert.ErrorIs(t, err, core_rsa.ErrInvalidEncoding)
}
