package contract

import (
	"github.com/confio/mask/codec"
	"github.com/confio/mask/errors"
	"github.com/confio/mask/storage"
	"github.com/confio/mask/types"
)

// Api is the host's address-canonicalization capability. Both directions
// are fallible; failures surface as address_conversion errors.
type Api interface {
	CanonicalAddress(human types.HumanAddr) (types.CanonicalAddr, error)
	HumanAddress(canonical types.CanonicalAddr) (types.HumanAddr, error)
}

// Deps is the per-call host context: the persistent store, the address
// capability, and the response codec. It is valid only for the duration of
// one call and must never be retained.
type Deps struct {
	Storage storage.Storage
	Api     Api
	Codec   codec.Codec
}

// Instantiate creates the owner record, setting the authenticated signer
// as owner. It is invoked exactly once per contract instance, before any
// Execute or Query call. It fails only on a store or codec fault.
func Instantiate(deps Deps, env types.Env, info types.MessageInfo, msg InitMsg) (*types.Response, error) {
	state := State{Owner: info.Signer}

	if err := config(deps.Codec).Save(deps.Storage, state); err != nil {
		return nil, err
	}
	return &types.Response{}, nil
}

// Execute dispatches a mutation request. Exactly one variant of msg must
// be set; an empty or over-full union fails with deserialize and touches
// nothing.
func Execute(deps Deps, env types.Env, info types.MessageInfo, msg ExecuteMsg) (*types.Response, error) {
	switch {
	case msg.Forward != nil && msg.TransferOwnership == nil:
		return executeForward(deps, info, *msg.Forward)
	case msg.TransferOwnership != nil && msg.Forward == nil:
		return executeTransfer(deps, info, *msg.TransferOwnership)
	default:
		return nil, errors.New(errors.PhaseExecute, errors.KindDeserialize).
			Type("ExecuteMsg").
			Detail("exactly one variant must be set").
			Build()
	}
}

// executeForward re-emits the request's message unchanged. It is a pure
// authorization gate: no state mutation, no log entries, no data.
func executeForward(deps Deps, info types.MessageInfo, msg ForwardMsg) (*types.Response, error) {
	state, err := config(deps.Codec).Load(deps.Storage)
	if err != nil {
		return nil, err
	}
	if !info.Signer.Equal(state.Owner) {
		return nil, errors.Unauthorized(errors.PhaseExecute)
	}

	return &types.Response{
		Messages: []types.CosmosMsg{msg.Msg},
	}, nil
}

// executeTransfer replaces the owner. The authorization check runs inside
// the same load-transform-save cycle as the write, against the record as
// loaded for this call; any failure vetoes the write entirely.
func executeTransfer(deps Deps, info types.MessageInfo, msg TransferMsg) (*types.Response, error) {
	_, err := config(deps.Codec).Update(deps.Storage, func(state State) (State, error) {
		if !info.Signer.Equal(state.Owner) {
			return state, errors.Unauthorized(errors.PhaseExecute)
		}
		canonical, err := deps.Api.CanonicalAddress(msg.Owner)
		if err != nil {
			return state, err
		}
		state.Owner = canonical
		return state, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.Response{}, nil
}

// Query dispatches a read-only request and returns the serialized result
func Query(deps Deps, env types.Env, msg QueryMsg) ([]byte, error) {
	switch {
	case msg.Owner != nil:
		return queryOwner(deps)
	default:
		return nil, errors.New(errors.PhaseQuery, errors.KindDeserialize).
			Type("QueryMsg").
			Detail("exactly one variant must be set").
			Build()
	}
}

func queryOwner(deps Deps) ([]byte, error) {
	state, err := config(deps.Codec).Load(deps.Storage)
	if err != nil {
		return nil, err
	}

	human, err := deps.Api.HumanAddress(state.Owner)
	if err != nil {
		return nil, err
	}

	data, err := deps.Codec.Marshal(OwnerResponse{Owner: human})
	if err != nil {
		return nil, errors.SerializeFailed(errors.PhaseQuery, "OwnerResponse", err)
	}
	return data, nil
}
