// Package tessera defines the value model for TesseraDB bins: a closed set
// of storable types that the encoding layer serializes recursively. Lists
// and maps nest to arbitrary depth; map values keep their pair order, which
// the server may depend on.
package tessera

import (
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/tesseradb/tessera-client-go/internal/jsonutil"
)

// Value is one storable bin value. The set of implementations is closed;
// the encoder type-switches over it exhaustively.
type Value interface {
	// ParticleType reports the wire type tag for the value.
	ParticleType() ParticleType
	// Native returns the value as plain Go data. Containers unwrap
	// recursively; map pairs come back as an ordered [][2]any.
	Native() any
	// String returns a human-readable rendering for logs and errors.
	String() string

	isValue()
}

// NullValue is the nil bin value.
type NullValue struct{}

func (NullValue) ParticleType() ParticleType { return ParticleTypeNull }
func (NullValue) Native() any                { return nil }
func (NullValue) String() string             { return "" }
func (NullValue) isValue()                   {}

// BoolValue holds a boolean.
type BoolValue bool

func (BoolValue) ParticleType() ParticleType { return ParticleTypeBool }
func (v BoolValue) Native() any              { return bool(v) }
func (v BoolValue) String() string           { return strconv.FormatBool(bool(v)) }
func (BoolValue) isValue()                   {}

// IntegerValue holds a signed 64-bit integer.
type IntegerValue int64

func (IntegerValue) ParticleType() ParticleType { return ParticleTypeInteger }
func (v IntegerValue) Native() any              { return int64(v) }
func (v IntegerValue) String() string           { return strconv.FormatInt(int64(v), 10) }
func (IntegerValue) isValue()                   {}

// FloatValue holds a 64-bit float.
type FloatValue float64

func (FloatValue) ParticleType() ParticleType { return ParticleTypeFloat }
func (v FloatValue) Native() any              { return float64(v) }
func (v FloatValue) String() string           { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (FloatValue) isValue()                   {}

// StringValue holds UTF-8 text.
type StringValue string

func (StringValue) ParticleType() ParticleType { return ParticleTypeString }
func (v StringValue) Native() any              { return string(v) }
func (v StringValue) String() string           { return string(v) }
func (StringValue) isValue()                   {}

// BlobValue holds raw bytes.
type BlobValue []byte

func (BlobValue) ParticleType() ParticleType { return ParticleTypeBlob }
func (v BlobValue) Native() any              { return []byte(v) }
func (v BlobValue) String() string           { return hex.EncodeToString(v) }
func (BlobValue) isValue()                   {}

// GeoJSONValue holds a GeoJSON document as raw JSON text. The encoder never
// inspects the payload; Valid is a convenience for callers building one.
type GeoJSONValue string

func (GeoJSONValue) ParticleType() ParticleType { return ParticleTypeGeoJSON }
func (v GeoJSONValue) Native() any              { return string(v) }
func (v GeoJSONValue) String() string           { return string(v) }
func (GeoJSONValue) isValue()                   {}

// Valid reports whether the payload is syntactically valid JSON.
func (v GeoJSONValue) Valid() bool { return jsonutil.Valid([]byte(v)) }

// ListValue holds an ordered sequence of values.
type ListValue []Value

func (ListValue) ParticleType() ParticleType { return ParticleTypeList }

// Native returns the elements as a []any, unwrapping nested values.
func (v ListValue) Native() any {
	out := make([]any, len(v))
	for i, e := range v {
		out[i] = e.Native()
	}
	return out
}

func (v ListValue) String() string { return jsonutil.Render(v.Native()) }
func (ListValue) isValue()         {}

// MapPair is one key/value entry of a MapValue.
type MapPair struct {
	Key   Value
	Value Value
}

// MapValue holds key/value pairs in insertion order. It is deliberately not
// a Go map: the encoder reproduces the pair order verbatim and never
// deduplicates keys.
type MapValue []MapPair

func (MapValue) ParticleType() ParticleType { return ParticleTypeMap }

// Native returns the pairs as an ordered [][2]any, one [key, value] per
// pair, unwrapping nested values.
func (v MapValue) Native() any {
	out := make([][2]any, len(v))
	for i, p := range v {
		out[i] = [2]any{p.Key.Native(), p.Value.Native()}
	}
	return out
}

func (v MapValue) String() string { return jsonutil.Render(v.Native()) }
func (MapValue) isValue()         {}

// NewValue converts plain Go data into a Value. Values pass through
// unchanged, signed and unsigned integers become IntegerValue, and
// map[string]any converts with sorted keys so the result is deterministic.
// NewValue panics on types the value model cannot hold.
func NewValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return NullValue{}
	case Value:
		return v
	case bool:
		return BoolValue(v)
	case int:
		return IntegerValue(v)
	case int8:
		return IntegerValue(v)
	case int16:
		return IntegerValue(v)
	case int32:
		return IntegerValue(v)
	case int64:
		return IntegerValue(v)
	case uint:
		if uint64(v) > math.MaxInt64 {
			panic(fmt.Sprintf("tessera: uint value %d overflows the integer range", v))
		}
		return IntegerValue(v)
	case uint8:
		return IntegerValue(v)
	case uint16:
		return IntegerValue(v)
	case uint32:
		return IntegerValue(v)
	case uint64:
		if v > math.MaxInt64 {
			panic(fmt.Sprintf("tessera: uint64 value %d overflows the integer range", v))
		}
		return IntegerValue(v)
	case float32:
		return FloatValue(v)
	case float64:
		return FloatValue(v)
	case string:
		return StringValue(v)
	case []byte:
		return BlobValue(v)
	case []Value:
		return ListValue(v)
	case []any:
		list := make(ListValue, len(v))
		for i, e := range v {
			list[i] = NewValue(e)
		}
		return list
	case []MapPair:
		return MapValue(v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make(MapValue, 0, len(v))
		for _, k := range keys {
			pairs = append(pairs, MapPair{Key: StringValue(k), Value: NewValue(v[k])})
		}
		return pairs
	}
	panic(fmt.Sprintf("tessera: unsupported value type %T", v))
}
