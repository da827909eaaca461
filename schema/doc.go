// Package schema generates JSON Schema (draft-07 style) documents for the
// contract's message types by reflection, so hosts and clients can validate
// payloads without importing the Go types.
//
// Pointer fields model optional union variants and are left out of the
// required list. Types with custom JSON marshaling (opaque payloads) map to
// the empty schema, which accepts any JSON value.
package schema
