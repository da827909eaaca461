package contract

import "github.com/confio/mask/types"

// InitMsg initializes the contract. It carries no fields; the owner is
// taken from the authenticated signer.
type InitMsg struct{}

// ExecuteMsg is the tagged union of mutation requests. Exactly one variant
// must be set; dispatch rejects anything else as a malformed request.
type ExecuteMsg struct {
	Forward           *ForwardMsg  `json:"forward,omitempty"`
	TransferOwnership *TransferMsg `json:"transfer_ownership,omitempty"`
}

// ForwardMsg asks the contract to re-emit one opaque message as its own
type ForwardMsg struct {
	Msg types.CosmosMsg `json:"msg"`
}

// TransferMsg replaces the owner with a new identity
type TransferMsg struct {
	Owner types.HumanAddr `json:"owner"`
}

// QueryMsg is the tagged union of read-only requests
type QueryMsg struct {
	Owner *OwnerQuery `json:"owner,omitempty"`
}

// OwnerQuery asks for the current owner
type OwnerQuery struct{}

// OwnerResponse is the payload a successful owner query serializes
type OwnerResponse struct {
	Owner types.HumanAddr `json:"owner"`
}
