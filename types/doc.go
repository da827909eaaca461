// Package types defines the wire-level data model shared by the contract,
// the runtime boundary, and hosts: account addresses in both representations,
// the per-call environment and message info, the opaque outgoing message
// payload, and the mutation response shape.
//
// All types serialize as JSON. Byte slices encode as base64 per encoding/json.
package types
