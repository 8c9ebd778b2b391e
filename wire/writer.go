package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// WriterSink adapts an io.Writer to the Sink interface for callers that
// stream an encoding instead of buffering it. Errors from the underlying
// writer propagate unchanged.
type WriterSink struct {
	w       io.Writer
	scratch [8]byte
}

// NewWriterSink returns a Sink that forwards every write to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteU8 writes a single byte to the underlying writer.
func (s *WriterSink) WriteU8(v uint8) (int, error) {
	s.scratch[0] = v
	return s.w.Write(s.scratch[:1])
}

// WriteU16 writes v in big-endian byte order.
func (s *WriterSink) WriteU16(v uint16) (int, error) {
	binary.BigEndian.PutUint16(s.scratch[:2], v)
	return s.w.Write(s.scratch[:2])
}

// WriteU32 writes v in big-endian byte order.
func (s *WriterSink) WriteU32(v uint32) (int, error) {
	binary.BigEndian.PutUint32(s.scratch[:4], v)
	return s.w.Write(s.scratch[:4])
}

// WriteU64 writes v in big-endian byte order.
func (s *WriterSink) WriteU64(v uint64) (int, error) {
	binary.BigEndian.PutUint64(s.scratch[:8], v)
	return s.w.Write(s.scratch[:8])
}

// WriteF64 writes the IEEE 754 bit pattern of v in big-endian order.
func (s *WriterSink) WriteF64(v float64) (int, error) {
	binary.BigEndian.PutUint64(s.scratch[:8], math.Float64bits(v))
	return s.w.Write(s.scratch[:8])
}

// WriteBytes writes p verbatim.
func (s *WriterSink) WriteBytes(p []byte) (int, error) {
	return s.w.Write(p)
}

// WriteString writes the raw bytes of str.
func (s *WriterSink) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}
