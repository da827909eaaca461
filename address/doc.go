// Package address implements the canonicalization capability: the fallible,
// bidirectional mapping between human-readable and canonical account
// addresses, and derivation of canonical addresses from public keys.
//
// The human form is a bech-style string: a fixed prefix followed by the
// base58 encoding of the canonical bytes plus a 4-byte double-SHA256
// checksum. The canonical form is a fixed-length byte string.
//
// The contract core never imports this package; it sees only the host's
// Api capability. This is the production implementation hosts plug in.
package address
