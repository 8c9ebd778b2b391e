package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/internal/msgpack"
	"github.com/tesseradb/tessera-client-go/wire"
)

// Argument is one operand of an Operation. The set of implementations is
// closed and mirrors the shapes the protocol distinguishes. Arguments that
// wrap values, lists, or maps borrow the caller's data; they are built
// immediately before encoding and must not outlive it.
type Argument interface {
	pack(s wire.Sink) (int, error)
}

// ByteArg is a small unsigned operand, typically a flag or policy byte.
type ByteArg uint8

func (a ByteArg) pack(s wire.Sink) (int, error) { return msgpack.PackUint64(s, uint64(a)) }

// IntArg is a signed integer operand such as an index, rank, or count.
type IntArg int64

func (a IntArg) pack(s wire.Sink) (int, error) { return msgpack.PackInteger(s, int64(a)) }

// BoolArg is a boolean operand.
type BoolArg bool

func (a BoolArg) pack(s wire.Sink) (int, error) { return msgpack.PackBool(s, bool(a)) }

// ValueArg wraps a single bin value.
type ValueArg struct {
	Value tessera.Value
}

func (a ValueArg) pack(s wire.Sink) (int, error) { return msgpack.PackValue(s, a.Value) }

// ListArg wraps a sequence of values, encoded count-prefixed in order.
type ListArg []tessera.Value

func (a ListArg) pack(s wire.Sink) (int, error) {
	return msgpack.PackList(s, tessera.ListValue(a))
}

// MapArg wraps key/value pairs, encoded count-prefixed in pair order.
type MapArg []tessera.MapPair

func (a MapArg) pack(s wire.Sink) (int, error) {
	return msgpack.PackMap(s, tessera.MapValue(a))
}
