// Package contract implements the mask contract core: the owner state model
// and the dispatch & authorization engine behind the three entry points
// (Instantiate, Execute, Query).
//
// Instantiate records the signer as owner. Execute gates every mutation on
// signer == current owner: Forward echoes one opaque message back to the
// host for dispatch, TransferOwnership replaces the owner inside a single
// load-transform-save cycle. Query returns the owner in human-readable form.
//
// Every call is a complete, independent transition. The package keeps no
// session state, spawns nothing, and never logs; all failures return as
// typed errors.
package contract
