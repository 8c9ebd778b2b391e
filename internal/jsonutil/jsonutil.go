// Package jsonutil wraps the JSON engine shared across the client. It backs
// GeoJSON payload validation and the debug rendering of container values.
package jsonutil

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal renders v as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return json.Valid(data)
}

// Render returns the JSON rendering of v, falling back to plain formatting
// for values the engine cannot marshal.
func Render(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
