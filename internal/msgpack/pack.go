// Package msgpack implements the MessagePack subset the TesseraDB wire
// protocol uses for complex-data-type payloads. The protocol predates the
// format's str8/bin types, so strings, blobs, and GeoJSON documents all use
// the old raw family with a leading particle-type byte inside the payload.
//
// Every function runs one traversal over a wire.Sink and returns the byte
// count, so the measure pass (wire.Sizer) and the write pass (wire.Buffer)
// agree by construction.
package msgpack

import (
	"fmt"
	"math"

	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/wire"
)

// PackValue encodes any value of the closed union, recursing into lists and
// maps. A nil Value encodes as nil.
func PackValue(s wire.Sink, v tessera.Value) (int, error) {
	switch v := v.(type) {
	case nil, tessera.NullValue:
		return PackNil(s)
	case tessera.BoolValue:
		return PackBool(s, bool(v))
	case tessera.IntegerValue:
		return PackInteger(s, int64(v))
	case tessera.FloatValue:
		return PackFloat64(s, float64(v))
	case tessera.StringValue:
		return PackString(s, string(v))
	case tessera.BlobValue:
		return PackBlob(s, v)
	case tessera.GeoJSONValue:
		return PackGeoJSON(s, string(v))
	case tessera.ListValue:
		return PackList(s, v)
	case tessera.MapValue:
		return PackMap(s, v)
	default:
		// the Value set is sealed; only a new variant can reach this
		panic(fmt.Sprintf("msgpack: unhandled value type %T", v))
	}
}

// PackNil writes the nil tag.
func PackNil(s wire.Sink) (int, error) {
	return s.WriteU8(0xc0)
}

// PackBool writes the boolean tag for v.
func PackBool(s wire.Sink, v bool) (int, error) {
	if v {
		return s.WriteU8(0xc3)
	}
	return s.WriteU8(0xc2)
}

// PackInteger encodes v in the smallest form that round-trips it:
// fixint, then 8/16/32/64-bit widths.
func PackInteger(s wire.Sink, v int64) (int, error) {
	if v >= 0 {
		return PackUint64(s, uint64(v))
	}
	switch {
	case v >= -32:
		return s.WriteU8(0xe0 | uint8(v+32))
	case v >= math.MinInt8:
		return packTypeU8(s, 0xd0, uint8(v))
	case v >= math.MinInt16:
		return packTypeU16(s, 0xd1, uint16(v))
	case v >= math.MinInt32:
		return packTypeU32(s, 0xd2, uint32(v))
	default:
		return packTypeU64(s, 0xd3, uint64(v))
	}
}

// PackUint64 encodes v in the smallest unsigned form that round-trips it.
func PackUint64(s wire.Sink, v uint64) (int, error) {
	switch {
	case v < 1<<7:
		return s.WriteU8(uint8(v))
	case v < 1<<8:
		return packTypeU8(s, 0xcc, uint8(v))
	case v < 1<<16:
		return packTypeU16(s, 0xcd, uint16(v))
	case v < 1<<32:
		return packTypeU32(s, 0xce, uint32(v))
	default:
		return packTypeU64(s, 0xcf, v)
	}
}

// PackFloat64 writes the 64-bit float tag and payload.
func PackFloat64(s wire.Sink, v float64) (int, error) {
	size, err := s.WriteU8(0xcb)
	if err != nil {
		return size, err
	}
	n, err := s.WriteF64(v)
	return size + n, err
}

// PackString encodes v as a raw element tagged with the String particle.
func PackString(s wire.Sink, v string) (int, error) {
	size, err := packRawBegin(s, len(v)+1)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU8(uint8(tessera.ParticleTypeString))
	size += n
	if err != nil {
		return size, err
	}
	n, err = s.WriteString(v)
	return size + n, err
}

// PackBlob encodes v as a raw element tagged with the Blob particle.
func PackBlob(s wire.Sink, v []byte) (int, error) {
	size, err := packRawBegin(s, len(v)+1)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU8(uint8(tessera.ParticleTypeBlob))
	size += n
	if err != nil {
		return size, err
	}
	n, err = s.WriteBytes(v)
	return size + n, err
}

// PackGeoJSON encodes v as a raw element tagged with the GeoJSON particle.
func PackGeoJSON(s wire.Sink, v string) (int, error) {
	size, err := packRawBegin(s, len(v)+1)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU8(uint8(tessera.ParticleTypeGeoJSON))
	size += n
	if err != nil {
		return size, err
	}
	n, err = s.WriteString(v)
	return size + n, err
}

// PackList encodes the elements in order behind an array header.
func PackList(s wire.Sink, elems []tessera.Value) (int, error) {
	size, err := PackArrayBegin(s, len(elems))
	if err != nil {
		return size, err
	}
	for _, e := range elems {
		n, err := PackValue(s, e)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// PackMap encodes the pairs in insertion order behind a map header. Keys
// are neither sorted nor deduplicated; the server sees them exactly as
// given.
func PackMap(s wire.Sink, pairs []tessera.MapPair) (int, error) {
	size, err := PackMapBegin(s, len(pairs))
	if err != nil {
		return size, err
	}
	for _, p := range pairs {
		n, err := PackValue(s, p.Key)
		size += n
		if err != nil {
			return size, err
		}
		n, err = PackValue(s, p.Value)
		size += n
		if err != nil {
			return size, err
		}
	}
	return size, nil
}

// PackArrayBegin writes the array header for n elements.
func PackArrayBegin(s wire.Sink, n int) (int, error) {
	switch {
	case n < 16:
		return s.WriteU8(0x90 | uint8(n))
	case n <= math.MaxUint16:
		return packTypeU16(s, 0xdc, uint16(n))
	default:
		return packTypeU32(s, 0xdd, uint32(n))
	}
}

// PackMapBegin writes the map header for n pairs.
func PackMapBegin(s wire.Sink, n int) (int, error) {
	switch {
	case n < 16:
		return s.WriteU8(0x80 | uint8(n))
	case n <= math.MaxUint16:
		return packTypeU16(s, 0xde, uint16(n))
	default:
		return packTypeU32(s, 0xdf, uint32(n))
	}
}

// packRawBegin writes the raw header for an n-byte payload, particle byte
// included.
func packRawBegin(s wire.Sink, n int) (int, error) {
	switch {
	case n < 32:
		return s.WriteU8(0xa0 | uint8(n))
	case n <= math.MaxUint16:
		return packTypeU16(s, 0xda, uint16(n))
	default:
		return packTypeU32(s, 0xdb, uint32(n))
	}
}

func packTypeU8(s wire.Sink, tag, v uint8) (int, error) {
	size, err := s.WriteU8(tag)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU8(v)
	return size + n, err
}

func packTypeU16(s wire.Sink, tag uint8, v uint16) (int, error) {
	size, err := s.WriteU8(tag)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU16(v)
	return size + n, err
}

func packTypeU32(s wire.Sink, tag uint8, v uint32) (int, error) {
	size, err := s.WriteU8(tag)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU32(v)
	return size + n, err
}

func packTypeU64(s wire.Sink, tag uint8, v uint64) (int, error) {
	size, err := s.WriteU8(tag)
	if err != nil {
		return size, err
	}
	n, err := s.WriteU64(v)
	return size + n, err
}
