// Package mask implements a minimal access-controlled message-forwarding
// contract: one persisted owner record, two authenticated mutations
// (forward a message, transfer ownership), and one read-only query.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mask/                Root package with the module overview
//	├── contract/        Contract core: state model, dispatch, authorization
//	├── runtime/         Host-facing entry points over raw encoded payloads
//	├── types/           Wire data model: addresses, env, messages, response
//	├── errors/          Structured error types (phase and kind taxonomy)
//	├── codec/           Serialization boundary (Codec interface, JSON impl)
//	├── storage/         KV store boundary and the typed singleton record
//	│   ├── memstore/    In-memory backend
//	│   └── sqlstore/    SQLite backend
//	├── address/         Canonical/human address codec and key derivation
//	├── schema/          JSON Schema generation for the contract messages
//	├── hosttest/        Mock host context for tests and examples
//	└── cmd/mask/        Development CLI and interactive shell
//
// # Quick Start
//
// Wire the runtime to a store and an address capability, then drive the
// three entry points:
//
//	rt := runtime.New(memstore.New(), hosttest.Api{})
//
//	res, err := rt.Instantiate(env, info, []byte(`{}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err = rt.Execute(env, info, []byte(`{"forward":{"msg":{"custom":{}}}}`))
//	owner, err := rt.Query(env, []byte(`{"owner":{}}`))
//
// # Host Contract
//
// The host supplies, per call: the persistent store, the address
// capability, and the already-authenticated signer. Calls are
// single-threaded and non-reentrant; each runs to completion before the
// next is dispatched. Every failure returns as a typed error from the
// errors package; no partial state write survives a failed mutation.
package mask
