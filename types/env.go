package types

// Coin is an amount of a single token denomination attached to a call.
// The contract carries funds through unchanged and never consumes them.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// BlockInfo describes the block the call executes in
type BlockInfo struct {
	Height  uint64 `json:"height"`
	Time    uint64 `json:"time"`
	ChainID string `json:"chain_id"`
}

// ContractInfo identifies the contract instance being called
type ContractInfo struct {
	Address CanonicalAddr `json:"address"`
}

// Env is the per-call environment supplied by the host. It is valid only
// for the duration of one call and is threaded explicitly through every
// entry point.
type Env struct {
	Block    BlockInfo    `json:"block"`
	Contract ContractInfo `json:"contract"`
}

// MessageInfo carries the authenticated signer of the current call and any
// funds sent with it. The host supplies Signer already cryptographically
// verified; the contract trusts it as-is.
type MessageInfo struct {
	Signer    CanonicalAddr `json:"signer"`
	SentFunds []Coin        `json:"sent_funds,omitempty"`
}
