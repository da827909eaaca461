// Package storage defines the persistent key-value store boundary and the
// typed singleton record built on top of it.
//
// Storage is the opaque byte store the host supplies. Item binds one record
// type to one fixed key and provides the load/save/update cycle the contract
// state model needs. Update applies a fallible transform to the freshly
// loaded record and writes only if the transform succeeds, so a vetoing
// transform leaves the store untouched.
//
// Backends live in subpackages: memstore (map-backed) and sqlstore (SQLite).
package storage
