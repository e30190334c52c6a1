package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. Events published in-process
// carry T or *T; events replayed from the dead-letter file carry decoded JSON
// maps, which are re-marshalled into T.
func DecodePayload[T any](payload interface{}) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("decode %T payload: nil pointer", out)
		}
		return *v, nil
	case json.RawMessage:
		return out, decodeJSON(v, &out)
	case nil:
		return out, fmt.Errorf("decode %T payload: missing", out)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, decodeJSON(raw, &out)
}

func decodeJSON[T any](raw []byte, out *T) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %T payload: %w", *out, err)
	}
	return nil
}
