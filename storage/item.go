package storage

import (
	"fmt"

	"github.com/confio/mask/codec"
	"github.com/confio/mask/errors"
)

// Item binds a single record of type T to a fixed storage key. It is the
// state model plumbing for singleton records: every operation decodes a
// fresh transient view and discards it when the operation completes;
// nothing is cached across calls.
type Item[T any] struct {
	key   []byte
	codec codec.Codec
}

// NewItem creates an Item for the given key using the JSON codec
func NewItem[T any](key string) Item[T] {
	return NewItemWithCodec[T](key, codec.JSON{})
}

// NewItemWithCodec creates an Item for the given key and codec
func NewItemWithCodec[T any](key string, c codec.Codec) Item[T] {
	return Item[T]{key: []byte(key), codec: c}
}

// Key returns the storage key the item is bound to
func (i Item[T]) Key() []byte {
	return i.key
}

// Load reads and decodes the current record. It fails with not_found when
// the key is absent and deserialize when the stored bytes do not parse.
func (i Item[T]) Load(store Storage) (T, error) {
	var record T

	data, err := store.Get(i.key)
	if err != nil {
		return record, err
	}

	if err := i.codec.Unmarshal(data, &record); err != nil {
		return record, errors.New(errors.PhaseStorage, errors.KindDeserialize).
			Type(fmt.Sprintf("%T", record)).
			Key(string(i.key)).
			Cause(err).
			Build()
	}
	return record, nil
}

// Save encodes and writes the record. It fails with serialize on encoding
// failure and io on a backend write fault.
func (i Item[T]) Save(store Storage, record T) error {
	data, err := i.codec.Marshal(record)
	if err != nil {
		return errors.New(errors.PhaseStorage, errors.KindSerialize).
			Type(fmt.Sprintf("%T", record)).
			Key(string(i.key)).
			Cause(err).
			Build()
	}
	return store.Set(i.key, data)
}

// Update loads the current record, applies fn, and saves the result only
// if fn succeeds. A failing fn vetoes the write: the store is untouched
// and the fn error propagates unchanged. Guard checks that must see the
// current record at the moment of the write belong inside fn.
func (i Item[T]) Update(store Storage, fn func(T) (T, error)) (T, error) {
	record, err := i.Load(store)
	if err != nil {
		return record, err
	}

	next, err := fn(record)
	if err != nil {
		return record, err
	}

	if err := i.Save(store, next); err != nil {
		return record, err
	}
	return next, nil
}
