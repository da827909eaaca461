package storage

// Storage is the persistent key-value collaborator backing contract state.
//
// Implementations must honor this contract:
//   - Get returns a not_found error (errors.KindNotFound) for absent keys.
//   - Set overwrites any existing value for the key.
//   - Remove of an absent key is a no-op, not an error.
//   - Backend faults surface as io errors (errors.KindIO).
//   - Values are opaque bytes; implementations never interpret them.
//
// The host invokes contract calls one at a time and hands the store to each
// call by exclusive reference, so implementations need no synchronization on
// the contract's behalf. General-purpose backends may still carry their own.
type Storage interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Remove(key []byte) error
}
