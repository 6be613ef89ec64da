package keyopts

// KeyData is the metadata stored for a key under its logical ID.
type KeyData struct {
	SKI string
}

type Options interface {
	Set(kVs ...interface{}) error
	Get(key string) (interface{}, bool)
}

// KeyOpts maps logical key IDs, carried in Options, to key metadata such as
// the SKI under which the key material lives in a vault.
type KeyOpts interface {
	// Import records the SKI of a key under the ID carried by opts.
	Import(ski string, opts Options) error

	// Get returns the metadata recorded under the ID carried by opts.
	Get(opts Options) (*KeyData, error)

	// Delete removes the metadata recorded under the ID carried by opts.
	Delete(opts Options) error
}
