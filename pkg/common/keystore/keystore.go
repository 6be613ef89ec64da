package keystore

import "github.com/mr-shifu/rsa-lib/pkg/common/keyopts"

// Keystore persists opaque key material addressed both by SKI and by the
// logical key ID carried in Options.
type Keystore interface {
	// Import stores key material under ski and records the ID-to-SKI
	// binding from opts.
	Import(ski string, key []byte, opts keyopts.Options) error

	// Get returns the key material bound to the ID carried by opts.
	Get(opts keyopts.Options) ([]byte, error)

	// Delete removes the key material and the ID binding.
	Delete(opts keyopts.Options) error
}
