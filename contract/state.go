package contract

import (
	"github.com/confio/mask/codec"
	"github.com/confio/mask/storage"
	"github.com/confio/mask/types"
)

// StateKey is the fixed storage key the owner record lives under
const StateKey = "config"

// State is the sole persisted record: the current owner in canonical form.
// It is created exactly once by Instantiate, replaced atomically by an
// ownership transfer, and never deleted.
type State struct {
	Owner types.CanonicalAddr `json:"owner"`
}

// config binds the state singleton to the call's codec. Decoded views are
// transient per call; nothing is cached across calls.
func config(c codec.Codec) storage.Item[State] {
	return storage.NewItemWithCodec[State](StateKey, c)
}
