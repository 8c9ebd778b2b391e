package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/internal/msgpack"
	"github.com/tesseradb/tessera-client-go/wire"
)

// headerForm selects how an operation introduces its opcode on the wire.
type headerForm uint8

const (
	// rawHeader is the list/map form: with an empty path the opcode goes
	// out as a bare big-endian u16 before the argument array.
	rawHeader headerForm = iota
	// arrayHeader is the bit-operation form: opcode and arguments always
	// share one array, path or not.
	arrayHeader
)

// contextMarker introduces an encoded context path.
const contextMarker = 0xff

// Operation is one opcode-tagged unit of work on a bin. Code is an opaque
// server contract; Args are encoded in order, never validated against the
// opcode. Operations are transient: build, encode, discard.
type Operation struct {
	Code byte
	Args []Argument

	form headerForm
}

// ParticleType reports the wire type tag the outer command frame must carry
// for an encoded operation. The payload is always an opaque blob to that
// layer, whatever the opcode.
func (op *Operation) ParticleType() tessera.ParticleType { return tessera.ParticleTypeBlob }

// EstimateSize returns the exact number of bytes Pack will produce for the
// same operation and path. It runs the identical traversal against a
// measuring sink, so the two cannot drift.
func (op *Operation) EstimateSize(path []Context) (int, error) {
	return op.Pack(wire.Sizer{}, path)
}

// Pack encodes the operation onto s, addressed through path. A nil or empty
// path targets the bin's top-level value. Errors come only from the sink
// and propagate unchanged; the sink holds a partial write afterwards.
func (op *Operation) Pack(s wire.Sink, path []Context) (int, error) {
	if op.form == arrayHeader {
		return op.packArrayForm(s, path)
	}
	return op.packRawForm(s, path)
}

func (op *Operation) packRawForm(s wire.Sink, path []Context) (int, error) {
	if len(path) == 0 {
		total, err := s.WriteU16(uint16(op.Code))
		if err != nil {
			return total, err
		}
		if len(op.Args) == 0 {
			return total, nil
		}
		n, err := msgpack.PackArrayBegin(s, len(op.Args))
		total += n
		if err != nil {
			return total, err
		}
		n, err = op.packArgs(s)
		return total + n, err
	}

	total, err := packPath(s, path)
	if err != nil {
		return total, err
	}
	n, err := msgpack.PackArrayBegin(s, len(op.Args)+1)
	total += n
	if err != nil {
		return total, err
	}
	n, err = msgpack.PackUint64(s, uint64(op.Code))
	total += n
	if err != nil {
		return total, err
	}
	n, err = op.packArgs(s)
	return total + n, err
}

func (op *Operation) packArrayForm(s wire.Sink, path []Context) (int, error) {
	var total int
	if len(path) > 0 {
		n, err := packPath(s, path)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := msgpack.PackArrayBegin(s, len(op.Args)+1)
	total += n
	if err != nil {
		return total, err
	}
	n, err = msgpack.PackUint64(s, uint64(op.Code))
	total += n
	if err != nil {
		return total, err
	}
	n, err = op.packArgs(s)
	return total + n, err
}

func (op *Operation) packArgs(s wire.Sink) (int, error) {
	var total int
	for _, a := range op.Args {
		n, err := a.pack(s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// packPath writes the context extension: a three-element array holding the
// marker, the flattened descriptor pairs, and (written by the caller) the
// opcode/argument array that follows.
func packPath(s wire.Sink, path []Context) (int, error) {
	total, err := msgpack.PackArrayBegin(s, 3)
	if err != nil {
		return total, err
	}
	n, err := msgpack.PackUint64(s, contextMarker)
	total += n
	if err != nil {
		return total, err
	}
	n, err = msgpack.PackArrayBegin(s, len(path)*2)
	total += n
	if err != nil {
		return total, err
	}
	for _, c := range path {
		n, err = msgpack.PackUint64(s, uint64(c.id))
		total += n
		if err != nil {
			return total, err
		}
		n, err = msgpack.PackValue(s, c.value)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
