// Package hosttest provides a mock host context for exercising the contract
// without a real host: an in-memory store, a deterministic address codec,
// and helpers for building the per-call environment and message info.
//
// The mock canonical form is the human string zero-padded to a fixed width,
// which keeps addresses readable in failure output and preserves ordering.
package hosttest
