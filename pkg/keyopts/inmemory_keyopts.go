package keyopts

import (
	"errors"
	"sync"

	com_keyopts "github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

var (
	ErrKeyNotFound = errors.New("keyopts: key not found")
)

type InMemoryKeyOpts struct {
	lock sync.RWMutex
	keys map[string]*com_keyopts.KeyData
}

var _ com_keyopts.KeyOpts = (*InMemoryKeyOpts)(nil)

func NewInMemoryKeyOpts() *InMemoryKeyOpts {
	return &InMemoryKeyOpts{
		keys: make(map[string]*com_keyopts.KeyData),
	}
}

func (kr *InMemoryKeyOpts) Import(ski string, opts com_keyopts.Options) error {
	id, err := optionsID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	kr.keys[id] = &com_keyopts.KeyData{SKI: ski}
	return nil
}

func (kr *InMemoryKeyOpts) Get(opts com_keyopts.Options) (*com_keyopts.KeyData, error) {
	id, err := optionsID(opts)
	if err != nil {
		return nil, err
	}

	kr.lock.RLock()
	defer kr.lock.RUnlock()

	kd, ok := kr.keys[id]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return kd, nil
}

func (kr *InMemoryKeyOpts) Delete(opts com_keyopts.Options) error {
	id, err := optionsID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	delete(kr.keys, id)
	return nil
}

func optionsID(opts com_keyopts.Options) (string, error) {
	if o, ok := opts.(Options); ok {
		return o.id()
	}
	v, ok := opts.Get("id")
	if !ok {
		return "", errors.New("keyopts: options carry no key ID")
	}
	id, ok := v.(string)
	if !ok {
		return "", errors.New("keyopts: key ID must be a string")
	}
	return id, nil
}
