// Package wire provides the byte sinks the encoding layer writes into: a
// growable Buffer for the write pass, a Sizer for the measure pass, and a
// WriterSink for streaming into an io.Writer.
package wire

// Sink accepts encoded bytes and reports how many were taken. The measure
// pass and the write pass of the encoder run one traversal over this single
// interface, so the byte counts they report are identical by construction.
type Sink interface {
	// WriteU8 appends a single byte.
	WriteU8(v uint8) (int, error)
	// WriteU16 appends v in big-endian byte order.
	WriteU16(v uint16) (int, error)
	// WriteU32 appends v in big-endian byte order.
	WriteU32(v uint32) (int, error)
	// WriteU64 appends v in big-endian byte order.
	WriteU64(v uint64) (int, error)
	// WriteF64 appends the IEEE 754 bit pattern of v in big-endian order.
	WriteF64(v float64) (int, error)
	// WriteBytes appends p verbatim.
	WriteBytes(p []byte) (int, error)
	// WriteString appends the raw bytes of s.
	WriteString(s string) (int, error)
}

var (
	_ Sink = Sizer{}
	_ Sink = (*Buffer)(nil)
	_ Sink = (*WriterSink)(nil)
)

// Sizer is the measure-mode Sink. It discards all bytes and reports the
// exact count a Buffer would have accepted, which is how callers size a
// Buffer before the write pass.
type Sizer struct{}

// WriteU8 reports the one byte it discarded.
func (Sizer) WriteU8(uint8) (int, error) { return 1, nil }

// WriteU16 reports the two bytes it discarded.
func (Sizer) WriteU16(uint16) (int, error) { return 2, nil }

// WriteU32 reports the four bytes it discarded.
func (Sizer) WriteU32(uint32) (int, error) { return 4, nil }

// WriteU64 reports the eight bytes it discarded.
func (Sizer) WriteU64(uint64) (int, error) { return 8, nil }

// WriteF64 reports the eight bytes it discarded.
func (Sizer) WriteF64(float64) (int, error) { return 8, nil }

// WriteBytes reports len(p).
func (Sizer) WriteBytes(p []byte) (int, error) { return len(p), nil }

// WriteString reports len(s).
func (Sizer) WriteString(s string) (int, error) { return len(s), nil }
