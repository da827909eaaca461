package types

import "encoding/json"

// CosmosMsg is an opaque outgoing message payload. The contract never
// interprets it; the raw JSON passes through byte-for-byte.
type CosmosMsg struct {
	raw json.RawMessage
}

// NewCosmosMsg wraps raw JSON as an outgoing message payload
func NewCosmosMsg(raw []byte) CosmosMsg {
	return CosmosMsg{raw: json.RawMessage(raw)}
}

// Raw returns the underlying JSON bytes
func (m CosmosMsg) Raw() []byte {
	return []byte(m.raw)
}

// IsEmpty reports whether the payload carries no bytes
func (m CosmosMsg) IsEmpty() bool {
	return len(m.raw) == 0
}

// MarshalJSON implements json.Marshaler, preserving the payload unchanged
func (m CosmosMsg) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving the payload unchanged
func (m *CosmosMsg) UnmarshalJSON(data []byte) error {
	m.raw = append(m.raw[:0], data...)
	return nil
}

// LogAttribute is a key/value pair attached to a mutation response
type LogAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the result of a successful mutation. Messages are dispatched
// by the host after the call completes, in order. A default Response emits
// nothing.
type Response struct {
	Messages []CosmosMsg    `json:"messages,omitempty"`
	Log      []LogAttribute `json:"log,omitempty"`
	Data     []byte         `json:"data,omitempty"`
}
