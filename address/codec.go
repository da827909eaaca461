package address

import (
	"crypto/sha256"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/confio/mask/errors"
	"github.com/confio/mask/types"
)

const checksumLen = 4

// Codec converts between the two address representations. Both directions
// are fallible; every failure is an address_conversion error.
type Codec struct {
	// Prefix is the human-readable part every address starts with
	Prefix string

	// CanonicalLength is the exact byte length of a canonical address
	CanonicalLength int
}

// CanonicalAddress converts a human-readable address to canonical form.
// It strips the prefix, base58-decodes the remainder, and verifies the
// trailing checksum and the canonical length.
func (c Codec) CanonicalAddress(human types.HumanAddr) (types.CanonicalAddr, error) {
	s := string(human)
	if s == "" {
		return nil, errors.ConversionFailed("empty address", nil)
	}
	if !strings.HasPrefix(s, c.Prefix) {
		return nil, errors.ConversionFailed("missing prefix "+c.Prefix, nil)
	}

	decoded, err := base58.Decode(s[len(c.Prefix):])
	if err != nil {
		return nil, errors.ConversionFailed("invalid base58", err)
	}
	if len(decoded) < checksumLen {
		return nil, errors.ConversionFailed("address too short", nil)
	}

	payload := decoded[:len(decoded)-checksumLen]
	sum := decoded[len(decoded)-checksumLen:]
	if !checksumMatches(c.Prefix, payload, sum) {
		return nil, errors.ConversionFailed("checksum mismatch", nil)
	}
	if len(payload) != c.CanonicalLength {
		return nil, errors.New(errors.PhaseAddress, errors.KindAddressConversion).
			Detail("canonical length %d, want %d", len(payload), c.CanonicalLength).
			Build()
	}

	return types.CanonicalAddr(payload), nil
}

// HumanAddress converts a canonical address to human-readable form
func (c Codec) HumanAddress(canonical types.CanonicalAddr) (types.HumanAddr, error) {
	if len(canonical) != c.CanonicalLength {
		return "", errors.New(errors.PhaseAddress, errors.KindAddressConversion).
			Detail("canonical length %d, want %d", len(canonical), c.CanonicalLength).
			Build()
	}

	body := make([]byte, 0, len(canonical)+checksumLen)
	body = append(body, canonical...)
	body = append(body, checksum(c.Prefix, canonical)...)
	return types.HumanAddr(c.Prefix + base58.Encode(body)), nil
}

// checksum is the first 4 bytes of a double SHA-256 over prefix and payload.
// Including the prefix binds an address to its network.
func checksum(prefix string, payload []byte) []byte {
	first := sha256.Sum256(append([]byte(prefix), payload...))
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}

func checksumMatches(prefix string, payload, sum []byte) bool {
	want := checksum(prefix, payload)
	if len(sum) != len(want) {
		return false
	}
	for i := range want {
		if sum[i] != want[i] {
			return false
		}
	}
	return true
}
