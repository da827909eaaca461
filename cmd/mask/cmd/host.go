package cmd

import (
	"fmt"
	"time"

	"github.com/confio/mask/address"
	"github.com/confio/mask/runtime"
	"github.com/confio/mask/storage"
	"github.com/confio/mask/storage/memstore"
	"github.com/confio/mask/storage/sqlstore"
	"github.com/confio/mask/types"
)

// addressCodec is the address capability every command shares
var addressCodec = address.Codec{
	Prefix:          "mask1",
	CanonicalLength: address.DeriveLength,
}

// openRuntime builds the contract runtime over the configured store.
// The returned close func is a no-op for the in-memory store.
func openRuntime() (*runtime.Runtime, func() error, error) {
	var (
		store   storage.Storage
		closeFn = func() error { return nil }
	)

	if storePath == "mem" {
		store = memstore.New()
	} else {
		s, err := sqlstore.Open(storePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store %s: %w", storePath, err)
		}
		store = s
		closeFn = s.Close
	}

	return runtime.New(store, addressCodec), closeFn, nil
}

// callEnv stamps the configured chain id into a fresh call environment
func callEnv() types.Env {
	return types.Env{
		Block: types.BlockInfo{
			Height:  0,
			Time:    uint64(time.Now().Unix()),
			ChainID: chainID,
		},
		Contract: types.ContractInfo{
			Address: make(types.CanonicalAddr, address.DeriveLength),
		},
	}
}

// signerInfo resolves a key name to authenticated message info
func signerInfo(keyName string) (types.MessageInfo, error) {
	key, err := loadKey(keyName)
	if err != nil {
		return types.MessageInfo{}, err
	}
	return types.MessageInfo{Signer: key.Address}, nil
}
