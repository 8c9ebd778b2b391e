// Package query builds predicate filter expressions for scans and queries.
// A filter is a postfix sequence of PredExp nodes: value and bin nodes push
// operands, comparison nodes consume them, and And/Or/Not fold the results.
// The server evaluates the sequence per record; this package only encodes
// it, one tag/length/payload frame per node.
package query

import (
	"fmt"
	"strconv"

	"github.com/tesseradb/tessera-client-go/wire"
)

// PredExp is one node of a predicate filter expression.
type PredExp interface {
	// String returns a readable rendering of the node.
	String() string
	// MarshaledSize returns the exact number of bytes Write produces.
	MarshaledSize() int
	// Write encodes the node onto s. Errors come only from the sink and
	// propagate unchanged.
	Write(s wire.Sink) (int, error)
}

// Node tags.
const (
	predTagAnd              uint16 = 1
	predTagOr               uint16 = 2
	predTagNot              uint16 = 3
	predTagIntegerValue     uint16 = 10
	predTagStringValue      uint16 = 11
	predTagGeoJSONValue     uint16 = 12
	predTagIntegerBin       uint16 = 100
	predTagStringBin        uint16 = 101
	predTagGeoJSONBin       uint16 = 102
	predTagRecDeviceSize    uint16 = 150
	predTagRecLastUpdate    uint16 = 151
	predTagRecVoidTime      uint16 = 152
	predTagIntegerEqual     uint16 = 200
	predTagIntegerUnequal   uint16 = 201
	predTagIntegerGreater   uint16 = 202
	predTagIntegerGreaterEq uint16 = 203
	predTagIntegerLess      uint16 = 204
	predTagIntegerLessEq    uint16 = 205
	predTagStringEqual      uint16 = 210
	predTagStringUnequal    uint16 = 211
	predTagStringRegex      uint16 = 212
	predTagGeoJSONWithin    uint16 = 220
	predTagGeoJSONContains  uint16 = 221
)

// Regex compilation flags for NewPredExpStringRegex.
const (
	RegexFlagNone     uint32 = 0
	RegexFlagExtended uint32 = 1
	RegexFlagICase    uint32 = 2
	RegexFlagNewline  uint32 = 4
	RegexFlagNoSub    uint32 = 8
)

func writeHeader(s wire.Sink, tag uint16, payload uint32) (int, error) {
	total, err := s.WriteU16(tag)
	if err != nil {
		return total, err
	}
	n, err := s.WriteU32(payload)
	return total + n, err
}

func sizeOf(p PredExp) int {
	n, _ := p.Write(wire.Sizer{})
	return n
}

// predExpCompound folds the results of the preceding nexpr expressions.
type predExpCompound struct {
	tag   uint16
	nexpr uint16
	repr  string
}

func (p *predExpCompound) String() string     { return fmt.Sprintf("%s(%d)", p.repr, p.nexpr) }
func (p *predExpCompound) MarshaledSize() int { return sizeOf(p) }

func (p *predExpCompound) Write(s wire.Sink) (int, error) {
	total, err := writeHeader(s, p.tag, 2)
	if err != nil {
		return total, err
	}
	n, err := s.WriteU16(p.nexpr)
	return total + n, err
}

// NewPredExpAnd returns a node that is true when all of the preceding nexpr
// expressions are true.
func NewPredExpAnd(nexpr uint16) PredExp {
	return &predExpCompound{tag: predTagAnd, nexpr: nexpr, repr: "AND"}
}

// NewPredExpOr returns a node that is true when any of the preceding nexpr
// expressions is true.
func NewPredExpOr(nexpr uint16) PredExp {
	return &predExpCompound{tag: predTagOr, nexpr: nexpr, repr: "OR"}
}

// predExpMarker is a payload-free node: NOT, the comparisons, and the
// record metadata accessors.
type predExpMarker struct {
	tag  uint16
	repr string
}

func (p *predExpMarker) String() string     { return p.repr }
func (p *predExpMarker) MarshaledSize() int { return sizeOf(p) }

func (p *predExpMarker) Write(s wire.Sink) (int, error) {
	return writeHeader(s, p.tag, 0)
}

// NewPredExpNot returns a node that negates the preceding expression.
func NewPredExpNot() PredExp {
	return &predExpMarker{tag: predTagNot, repr: "NOT"}
}

// NewPredExpRecDeviceSize pushes the record's storage size in bytes.
func NewPredExpRecDeviceSize() PredExp {
	return &predExpMarker{tag: predTagRecDeviceSize, repr: "rec.device_size"}
}

// NewPredExpRecLastUpdate pushes the record's last-update time in
// nanoseconds since the epoch.
func NewPredExpRecLastUpdate() PredExp {
	return &predExpMarker{tag: predTagRecLastUpdate, repr: "rec.last_update"}
}

// NewPredExpRecVoidTime pushes the record's expiration time in nanoseconds
// since the epoch.
func NewPredExpRecVoidTime() PredExp {
	return &predExpMarker{tag: predTagRecVoidTime, repr: "rec.void_time"}
}

// NewPredExpIntegerEqual compares the two preceding integer operands.
func NewPredExpIntegerEqual() PredExp {
	return &predExpMarker{tag: predTagIntegerEqual, repr: "="}
}

// NewPredExpIntegerUnequal compares the two preceding integer operands.
func NewPredExpIntegerUnequal() PredExp {
	return &predExpMarker{tag: predTagIntegerUnequal, repr: "!="}
}

// NewPredExpIntegerGreater compares the two preceding integer operands.
func NewPredExpIntegerGreater() PredExp {
	return &predExpMarker{tag: predTagIntegerGreater, repr: ">"}
}

// NewPredExpIntegerGreaterEq compares the two preceding integer operands.
func NewPredExpIntegerGreaterEq() PredExp {
	return &predExpMarker{tag: predTagIntegerGreaterEq, repr: ">="}
}

// NewPredExpIntegerLess compares the two preceding integer operands.
func NewPredExpIntegerLess() PredExp {
	return &predExpMarker{tag: predTagIntegerLess, repr: "<"}
}

// NewPredExpIntegerLessEq compares the two preceding integer operands.
func NewPredExpIntegerLessEq() PredExp {
	return &predExpMarker{tag: predTagIntegerLessEq, repr: "<="}
}

// NewPredExpStringEqual compares the two preceding string operands.
func NewPredExpStringEqual() PredExp {
	return &predExpMarker{tag: predTagStringEqual, repr: "str ="}
}

// NewPredExpStringUnequal compares the two preceding string operands.
func NewPredExpStringUnequal() PredExp {
	return &predExpMarker{tag: predTagStringUnequal, repr: "str !="}
}

// NewPredExpGeoJSONWithin is true when the preceding bin region lies within
// the preceding value region.
func NewPredExpGeoJSONWithin() PredExp {
	return &predExpMarker{tag: predTagGeoJSONWithin, repr: "geo within"}
}

// NewPredExpGeoJSONContains is true when the preceding bin region contains
// the preceding value point.
func NewPredExpGeoJSONContains() PredExp {
	return &predExpMarker{tag: predTagGeoJSONContains, repr: "geo contains"}
}

type predExpIntegerValue struct {
	val int64
}

func (p *predExpIntegerValue) String() string     { return strconv.FormatInt(p.val, 10) }
func (p *predExpIntegerValue) MarshaledSize() int { return sizeOf(p) }

func (p *predExpIntegerValue) Write(s wire.Sink) (int, error) {
	total, err := writeHeader(s, predTagIntegerValue, 8)
	if err != nil {
		return total, err
	}
	n, err := s.WriteU64(uint64(p.val))
	return total + n, err
}

// NewPredExpIntegerValue pushes a literal integer operand.
func NewPredExpIntegerValue(val int64) PredExp {
	return &predExpIntegerValue{val: val}
}

type predExpStringValue struct {
	val string
}

func (p *predExpStringValue) String() string     { return strconv.Quote(p.val) }
func (p *predExpStringValue) MarshaledSize() int { return sizeOf(p) }

func (p *predExpStringValue) Write(s wire.Sink) (int, error) {
	total, err := writeHeader(s, predTagStringValue, uint32(len(p.val)))
	if err != nil {
		return total, err
	}
	n, err := s.WriteString(p.val)
	return total + n, err
}

// NewPredExpStringValue pushes a literal string operand.
func NewPredExpStringValue(val string) PredExp {
	return &predExpStringValue{val: val}
}

type predExpGeoJSONValue struct {
	val string
}

func (p *predExpGeoJSONValue) String() string     { return p.val }
func (p *predExpGeoJSONValue) MarshaledSize() int { return sizeOf(p) }

func (p *predExpGeoJSONValue) Write(s wire.Sink) (int, error) {
	// payload: flags byte, cell count, then the raw document
	total, err := writeHeader(s, predTagGeoJSONValue, uint32(len(p.val))+3)
	if err != nil {
		return total, err
	}
	n, err := s.WriteU8(0)
	total += n
	if err != nil {
		return total, err
	}
	n, err = s.WriteU16(0)
	total += n
	if err != nil {
		return total, err
	}
	n, err = s.WriteString(p.val)
	return total + n, err
}

// NewPredExpGeoJSONValue pushes a literal GeoJSON region operand.
func NewPredExpGeoJSONValue(val string) PredExp {
	return &predExpGeoJSONValue{val: val}
}

type predExpBin struct {
	tag  uint16
	name string
	kind string
}

func (p *predExpBin) String() string     { return fmt.Sprintf("%s bin %q", p.kind, p.name) }
func (p *predExpBin) MarshaledSize() int { return sizeOf(p) }

func (p *predExpBin) Write(s wire.Sink) (int, error) {
	total, err := writeHeader(s, p.tag, uint32(len(p.name)))
	if err != nil {
		return total, err
	}
	n, err := s.WriteString(p.name)
	return total + n, err
}

// NewPredExpIntegerBin pushes the integer value of the named bin.
func NewPredExpIntegerBin(name string) PredExp {
	return &predExpBin{tag: predTagIntegerBin, name: name, kind: "integer"}
}

// NewPredExpStringBin pushes the string value of the named bin.
func NewPredExpStringBin(name string) PredExp {
	return &predExpBin{tag: predTagStringBin, name: name, kind: "string"}
}

// NewPredExpGeoJSONBin pushes the GeoJSON value of the named bin.
func NewPredExpGeoJSONBin(name string) PredExp {
	return &predExpBin{tag: predTagGeoJSONBin, name: name, kind: "geojson"}
}

type predExpRegex struct {
	flags uint32
}

func (p *predExpRegex) String() string     { return fmt.Sprintf("regex(flags=%d)", p.flags) }
func (p *predExpRegex) MarshaledSize() int { return sizeOf(p) }

func (p *predExpRegex) Write(s wire.Sink) (int, error) {
	total, err := writeHeader(s, predTagStringRegex, 4)
	if err != nil {
		return total, err
	}
	n, err := s.WriteU32(p.flags)
	return total + n, err
}

// NewPredExpStringRegex matches the preceding string operand against the
// pattern pushed before it, compiled with the given RegexFlag* flags.
func NewPredExpStringRegex(flags uint32) PredExp {
	return &predExpRegex{flags: flags}
}
