package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrTooLarge is returned when a write would grow a Buffer past its
// configured limit. The Buffer refuses further writes until Reset.
var ErrTooLarge = errors.New("buffer too large")

type BufferOption func(*Buffer)

// WithLimit caps the Buffer at n bytes. Zero means unlimited.
func WithLimit(n int) BufferOption {
	return func(b *Buffer) { b.limit = n }
}

// Buffer is the growable in-memory Sink for the write pass. Writes append at
// the cursor; bytes already written are never modified. A Buffer must not be
// shared by encode calls running concurrently.
type Buffer struct {
	buf    []byte
	limit  int
	failed bool
}

// NewBuffer returns an empty Buffer with an initial capacity of size bytes.
func NewBuffer(size int, opts ...BufferOption) *Buffer {
	b := &Buffer{buf: make([]byte, 0, size)}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Bytes returns the written bytes. The slice is only valid until the next
// write or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// Reset discards all written bytes and clears an ErrTooLarge failure,
// keeping the allocated capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.failed = false
}

// ensure grows the buffer to fit n more bytes, doubling capacity up to the
// limit. Once a write has failed, every later write fails until Reset.
func (b *Buffer) ensure(n int) error {
	if b.failed {
		return ErrTooLarge
	}
	need := len(b.buf) + n
	if b.limit > 0 && need > b.limit {
		b.failed = true
		return ErrTooLarge
	}
	if need <= cap(b.buf) {
		return nil
	}
	newCap := max(2*cap(b.buf), need)
	if b.limit > 0 && newCap > b.limit {
		newCap = b.limit
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

// WriteU8 appends a single byte.
func (b *Buffer) WriteU8(v uint8) (int, error) {
	if err := b.ensure(1); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, v)
	return 1, nil
}

// WriteU16 appends v in big-endian byte order.
func (b *Buffer) WriteU16(v uint16) (int, error) {
	if err := b.ensure(2); err != nil {
		return 0, err
	}
	b.buf = binary.BigEndian.AppendUint16(b.buf, v)
	return 2, nil
}

// WriteU32 appends v in big-endian byte order.
func (b *Buffer) WriteU32(v uint32) (int, error) {
	if err := b.ensure(4); err != nil {
		return 0, err
	}
	b.buf = binary.BigEndian.AppendUint32(b.buf, v)
	return 4, nil
}

// WriteU64 appends v in big-endian byte order.
func (b *Buffer) WriteU64(v uint64) (int, error) {
	if err := b.ensure(8); err != nil {
		return 0, err
	}
	b.buf = binary.BigEndian.AppendUint64(b.buf, v)
	return 8, nil
}

// WriteF64 appends the IEEE 754 bit pattern of v in big-endian order.
func (b *Buffer) WriteF64(v float64) (int, error) {
	if err := b.ensure(8); err != nil {
		return 0, err
	}
	b.buf = binary.BigEndian.AppendUint64(b.buf, math.Float64bits(v))
	return 8, nil
}

// WriteBytes appends p verbatim.
func (b *Buffer) WriteBytes(p []byte) (int, error) {
	if err := b.ensure(len(p)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString appends the raw bytes of s.
func (b *Buffer) WriteString(s string) (int, error) {
	if err := b.ensure(len(s)); err != nil {
		return 0, err
	}
	b.buf = append(b.buf, s...)
	return len(s), nil
}
