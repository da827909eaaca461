package codec

import (
	"encoding/json"
	"fmt"

	"github.com/confio/mask/errors"
)

// Codec encodes and decodes payloads at the contract boundary.
// Both directions are fallible.
type Codec interface {
	// Marshal encodes v. Failures are serialize errors.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v. Failures are deserialize errors.
	Unmarshal(data []byte, v any) error
}

// JSON is the default Codec, wrapping encoding/json
type JSON struct{}

// Marshal implements Codec
func (JSON) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.SerializeFailed(errors.PhaseCodec, typeName(v), err)
	}
	return data, nil
}

// Unmarshal implements Codec
func (JSON) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.DeserializeFailed(errors.PhaseCodec, typeName(v), err)
	}
	return nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
