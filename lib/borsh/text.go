package borsh

import (
	"bytes"
	"encoding/json"
)

// --------------------------------------------------------------------------
// Text form helpers
// --------------------------------------------------------------------------

// EncodeJSON marshals v to compact JSON without HTML escaping and without the
// trailing newline json.Encoder appends. All MarshalJSON methods of this
// package go through it so that strings are rendered identically everywhere.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// TaggedJSON renders v as an externally tagged enum variant: {"<tag>": v}
func TaggedJSON(tag string, v any) ([]byte, error) {
	return EncodeJSON(map[string]any{tag: v})
}

// TaggedYAML is the YAML counterpart of TaggedJSON
func TaggedYAML(tag string, v any) (any, error) {
	return map[string]any{tag: v}, nil
}
