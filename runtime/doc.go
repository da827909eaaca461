// Package runtime is the host-facing boundary of the mask contract: three
// entry points over raw encoded payloads (Instantiate, Execute, Query) that
// decode the tagged request, dispatch into the contract core, and return
// the typed result.
//
// The host guarantees single-threaded, non-reentrant invocation; each call
// runs to completion before the next is dispatched, and ordering across
// calls is entirely the host's concern.
//
// Calls are logged with a per-call correlation id through a package logger
// that defaults to a no-op; the contract core below this boundary stays
// silent.
package runtime
