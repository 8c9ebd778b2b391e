// Package testutil provides the independent MessagePack reader tests use to
// verify encoder output without checking the encoder against itself.
package testutil

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	tessera "github.com/tesseradb/tessera-client-go"
)

// Reader decodes encoder output with a third-party MessagePack
// implementation. Every method fails the test on a decode error.
type Reader struct {
	tb  testing.TB
	dec *msgpack.Decoder
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(tb testing.TB, b []byte) *Reader {
	tb.Helper()
	return &Reader{tb: tb, dec: msgpack.NewDecoder(bytes.NewReader(b))}
}

// Int decodes one integer of any width.
func (r *Reader) Int() int64 {
	r.tb.Helper()
	v, err := r.dec.DecodeInt64()
	if err != nil {
		r.tb.Fatalf("decode int: %v", err)
	}
	return v
}

// Bool decodes one boolean.
func (r *Reader) Bool() bool {
	r.tb.Helper()
	v, err := r.dec.DecodeBool()
	if err != nil {
		r.tb.Fatalf("decode bool: %v", err)
	}
	return v
}

// Float decodes one 64-bit float.
func (r *Reader) Float() float64 {
	r.tb.Helper()
	v, err := r.dec.DecodeFloat64()
	if err != nil {
		r.tb.Fatalf("decode float: %v", err)
	}
	return v
}

// Nil consumes one nil element.
func (r *Reader) Nil() {
	r.tb.Helper()
	if err := r.dec.DecodeNil(); err != nil {
		r.tb.Fatalf("decode nil: %v", err)
	}
}

// ArrayLen decodes one array header and returns the element count.
func (r *Reader) ArrayLen() int {
	r.tb.Helper()
	n, err := r.dec.DecodeArrayLen()
	if err != nil {
		r.tb.Fatalf("decode array len: %v", err)
	}
	return n
}

// MapLen decodes one map header and returns the pair count.
func (r *Reader) MapLen() int {
	r.tb.Helper()
	n, err := r.dec.DecodeMapLen()
	if err != nil {
		r.tb.Fatalf("decode map len: %v", err)
	}
	return n
}

// Raw decodes one raw element and splits the leading particle-type byte
// from the payload.
func (r *Reader) Raw() (tessera.ParticleType, []byte) {
	r.tb.Helper()
	s, err := r.dec.DecodeString()
	if err != nil {
		r.tb.Fatalf("decode raw: %v", err)
	}
	if len(s) == 0 {
		r.tb.Fatal("raw element missing its particle-type byte")
	}
	return tessera.ParticleType(s[0]), []byte(s[1:])
}

// Str decodes one raw element, asserts the String particle tag, and returns
// the text.
func (r *Reader) Str() string {
	r.tb.Helper()
	pt, payload := r.Raw()
	if pt != tessera.ParticleTypeString {
		r.tb.Fatalf("particle type: got %d, want %d", pt, tessera.ParticleTypeString)
	}
	return string(payload)
}

// Blob decodes one raw element, asserts the Blob particle tag, and returns
// the bytes.
func (r *Reader) Blob() []byte {
	r.tb.Helper()
	pt, payload := r.Raw()
	if pt != tessera.ParticleTypeBlob {
		r.tb.Fatalf("particle type: got %d, want %d", pt, tessera.ParticleTypeBlob)
	}
	return payload
}
