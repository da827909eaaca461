package address

import (
	"crypto/ed25519"

	"github.com/multiformats/go-multihash"
)

// DeriveLength is the canonical length of addresses derived from keys
const DeriveLength = 20

// Derive computes the canonical address for an ed25519 public key: the
// SHA2-256 multihash of the key, truncated to DeriveLength bytes.
func Derive(pub ed25519.PublicKey) ([]byte, error) {
	mh, err := multihash.Sum(pub, multihash.SHA2_256, DeriveLength)
	if err != nil {
		return nil, err
	}
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return nil, err
	}
	return decoded.Digest, nil
}
