package hosttest

import (
	"bytes"

	"github.com/confio/mask/codec"
	"github.com/confio/mask/contract"
	"github.com/confio/mask/errors"
	"github.com/confio/mask/storage/memstore"
	"github.com/confio/mask/types"
)

// CanonicalLength is the mock canonical address width
const CanonicalLength = 32

// Api is a deterministic mock of the host's address capability. The
// canonical form is the human string right-padded with zero bytes to
// CanonicalLength; humanizing trims the padding back off.
type Api struct {
	CanonicalLength int
}

func (a Api) length() int {
	if a.CanonicalLength > 0 {
		return a.CanonicalLength
	}
	return CanonicalLength
}

// CanonicalAddress implements contract.Api
func (a Api) CanonicalAddress(human types.HumanAddr) (types.CanonicalAddr, error) {
	if human == "" {
		return nil, errors.ConversionFailed("empty address", nil)
	}
	if len(human) > a.length() {
		return nil, errors.New(errors.PhaseAddress, errors.KindAddressConversion).
			Detail("address longer than %d bytes", a.length()).
			Build()
	}
	canonical := make(types.CanonicalAddr, a.length())
	copy(canonical, human)
	return canonical, nil
}

// HumanAddress implements contract.Api
func (a Api) HumanAddress(canonical types.CanonicalAddr) (types.HumanAddr, error) {
	if len(canonical) != a.length() {
		return "", errors.New(errors.PhaseAddress, errors.KindAddressConversion).
			Detail("canonical length %d, want %d", len(canonical), a.length()).
			Build()
	}
	trimmed := bytes.TrimRight(canonical, "\x00")
	if len(trimmed) == 0 {
		return "", errors.ConversionFailed("empty address", nil)
	}
	return types.HumanAddr(trimmed), nil
}

// NewDeps builds a fresh per-call context: empty in-memory store, mock
// api, JSON codec. Reuse the same Deps across calls in a test to keep the
// store's state.
func NewDeps() contract.Deps {
	return contract.Deps{
		Storage: memstore.New(),
		Api:     Api{},
		Codec:   codec.JSON{},
	}
}

// NewEnv builds a fixed test environment
func NewEnv() types.Env {
	return types.Env{
		Block: types.BlockInfo{
			Height:  12_345,
			Time:    1_571_797_419,
			ChainID: "mask-testing",
		},
		Contract: types.ContractInfo{
			Address: mustCanonical("contract"),
		},
	}
}

// NewInfo builds message info for the given signer, canonicalized through
// the mock api
func NewInfo(signer string, funds ...types.Coin) types.MessageInfo {
	return types.MessageInfo{
		Signer:    mustCanonical(signer),
		SentFunds: funds,
	}
}

func mustCanonical(human string) types.CanonicalAddr {
	canonical, err := Api{}.CanonicalAddress(types.HumanAddr(human))
	if err != nil {
		panic(err)
	}
	return canonical
}
