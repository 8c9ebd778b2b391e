package wire

import (
	"bytes"
	"errors"
	"testing"
)

// writeAll exercises every Sink method once and returns the total count.
func writeAll(t *testing.T, s Sink) int {
	t.Helper()
	total := 0
	writes := []func() (int, error){
		func() (int, error) { return s.WriteU8(0xab) },
		func() (int, error) { return s.WriteU16(0x0102) },
		func() (int, error) { return s.WriteU32(0x01020304) },
		func() (int, error) { return s.WriteU64(0x0102030405060708) },
		func() (int, error) { return s.WriteF64(3.25) },
		func() (int, error) { return s.WriteBytes([]byte{9, 8, 7}) },
		func() (int, error) { return s.WriteString("hello") },
	}
	for i, w := range writes {
		n, err := w()
		if err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
		total += n
	}
	return total
}

func TestSizer_MatchesBuffer(t *testing.T) {
	buf := NewBuffer(0)
	got := writeAll(t, buf)
	want := writeAll(t, Sizer{})

	if got != want {
		t.Errorf("buffer wrote %d bytes, sizer counted %d", got, want)
	}
	if buf.Len() != got {
		t.Errorf("buffer Len %d, want %d", buf.Len(), got)
	}
}

func TestBuffer_BigEndianLayout(t *testing.T) {
	buf := NewBuffer(16)
	if _, err := buf.WriteU16(0x0102); err != nil {
		t.Fatalf("write u16: %v", err)
	}
	if _, err := buf.WriteU32(0x0a0b0c0d); err != nil {
		t.Fatalf("write u32: %v", err)
	}
	if _, err := buf.WriteF64(1.0); err != nil {
		t.Fatalf("write f64: %v", err)
	}

	want := []byte{
		0x01, 0x02,
		0x0a, 0x0b, 0x0c, 0x0d,
		0x3f, 0xf0, 0, 0, 0, 0, 0, 0, // IEEE 754 for 1.0
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", buf.Bytes(), want)
	}
}

func TestBuffer_GrowsFromZero(t *testing.T) {
	buf := NewBuffer(0)
	payload := bytes.Repeat([]byte{0x5a}, 300)

	for i := range payload {
		if _, err := buf.WriteU8(payload[i]); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	if !bytes.Equal(buf.Bytes(), payload) {
		t.Error("grown buffer lost previously written bytes")
	}
}

func TestBuffer_LimitExceeded(t *testing.T) {
	buf := NewBuffer(4, WithLimit(8))

	if _, err := buf.WriteU64(1); err != nil {
		t.Fatalf("write within limit: %v", err)
	}
	if _, err := buf.WriteU8(1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v, want ErrTooLarge", err)
	}

	// failed buffer rejects every write, even ones that would fit
	buf2 := NewBuffer(0, WithLimit(4))
	if _, err := buf2.WriteU64(1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("got %v, want ErrTooLarge", err)
	}
	if _, err := buf2.WriteU8(1); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("write after failure: got %v, want ErrTooLarge", err)
	}

	buf2.Reset()
	if _, err := buf2.WriteU8(1); err != nil {
		t.Fatalf("write after reset: %v", err)
	}
}

func TestBuffer_Reset(t *testing.T) {
	buf := NewBuffer(8)
	if _, err := buf.WriteString("abc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	buf.Reset()

	if buf.Len() != 0 {
		t.Errorf("Len after reset: got %d, want 0", buf.Len())
	}
	if _, err := buf.WriteString("xy"); err != nil {
		t.Fatalf("write after reset: %v", err)
	}
	if string(buf.Bytes()) != "xy" {
		t.Errorf("got %q, want %q", buf.Bytes(), "xy")
	}
}

func BenchmarkBuffer_WriteU64(b *testing.B) {
	buf := NewBuffer(1 << 12)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		for j := 0; j < 512; j++ {
			_, _ = buf.WriteU64(0x0102030405060708)
		}
	}
}
