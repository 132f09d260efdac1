package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Its output is wire-compatible with JSON, so either codec can read the other's
// uncompressed snapshots. Field names and string values in result snapshots
// are user data, so GoJSON leaves HTML characters unescaped.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (c GoJSON) Marshal(v any) ([]byte, error) { return c.Append(nil, v) }

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.UnmarshalNoEscape(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes the value to JSON and appends it to dst, reusing dst's spare
// capacity.
func (GoJSON) Append(dst []byte, v any) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	enc := gojson.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates each value with a newline.
	out := buf.Bytes()
	return out[:len(out)-1], nil
}
