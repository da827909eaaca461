package types

import (
	"bytes"
	"encoding/hex"
)

// HumanAddr is an account identity in its human-readable form, the
// representation requests and responses carry.
type HumanAddr string

// String implements fmt.Stringer
func (a HumanAddr) String() string {
	return string(a)
}

// CanonicalAddr is an account identity in its host-internal binary form,
// the representation persisted state carries. Conversion between the two
// forms is a host capability and may fail.
type CanonicalAddr []byte

// String renders the canonical bytes as lowercase hex
func (a CanonicalAddr) String() string {
	return hex.EncodeToString(a)
}

// Equal reports whether two canonical addresses are the same identity
func (a CanonicalAddr) Equal(other CanonicalAddr) bool {
	return bytes.Equal(a, other)
}
