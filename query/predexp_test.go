package query

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tesseradb/tessera-client-go/wire"
)

// writeExp encodes one node, checking MarshaledSize and the reported write
// count against the buffer on the way.
func writeExp(t *testing.T, p PredExp) []byte {
	t.Helper()
	size := p.MarshaledSize()
	buf := wire.NewBuffer(size)
	n, err := p.Write(buf)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != size {
		t.Fatalf("MarshaledSize %d, wrote %d", size, n)
	}
	if buf.Len() != n {
		t.Fatalf("write reported %d bytes, buffer holds %d", n, buf.Len())
	}
	return buf.Bytes()
}

func TestPredExp_SizeMatchesWriteForEveryNode(t *testing.T) {
	tests := []struct {
		name string
		exp  PredExp
	}{
		{"and", NewPredExpAnd(3)},
		{"or", NewPredExpOr(2)},
		{"not", NewPredExpNot()},
		{"integer value", NewPredExpIntegerValue(-42)},
		{"string value", NewPredExpStringValue("needle")},
		{"geojson value", NewPredExpGeoJSONValue(`{"type":"Point","coordinates":[1,2]}`)},
		{"integer bin", NewPredExpIntegerBin("age")},
		{"string bin", NewPredExpStringBin("name")},
		{"geojson bin", NewPredExpGeoJSONBin("loc")},
		{"rec device size", NewPredExpRecDeviceSize()},
		{"rec last update", NewPredExpRecLastUpdate()},
		{"rec void time", NewPredExpRecVoidTime()},
		{"integer equal", NewPredExpIntegerEqual()},
		{"integer unequal", NewPredExpIntegerUnequal()},
		{"integer greater", NewPredExpIntegerGreater()},
		{"integer greater eq", NewPredExpIntegerGreaterEq()},
		{"integer less", NewPredExpIntegerLess()},
		{"integer less eq", NewPredExpIntegerLessEq()},
		{"string equal", NewPredExpStringEqual()},
		{"string unequal", NewPredExpStringUnequal()},
		{"string regex", NewPredExpStringRegex(RegexFlagICase)},
		{"geojson within", NewPredExpGeoJSONWithin()},
		{"geojson contains", NewPredExpGeoJSONContains()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := writeExp(t, tt.exp)
			if len(got) < 6 {
				t.Fatalf("frame shorter than its header: %x", got)
			}
			if tt.exp.String() == "" {
				t.Error("String() is empty")
			}
		})
	}
}

func TestPredExpAnd_ExactBytes(t *testing.T) {
	got := writeExp(t, NewPredExpAnd(3))
	want := []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExpNot_HeaderOnly(t *testing.T) {
	got := writeExp(t, NewPredExpNot())
	want := []byte{0x00, 0x03, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExpIntegerValue_BigEndianPayload(t *testing.T) {
	got := writeExp(t, NewPredExpIntegerValue(-1))
	want := []byte{
		0x00, 0x0a, // tag 10
		0x00, 0x00, 0x00, 0x08, // payload length
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // two's complement -1
	}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExpStringValue_RawPayload(t *testing.T) {
	got := writeExp(t, NewPredExpStringValue("abc"))
	want := []byte{0x00, 0x0b, 0x00, 0x00, 0x00, 0x03, 'a', 'b', 'c'}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExpStringBin_NamePayload(t *testing.T) {
	got := writeExp(t, NewPredExpStringBin("name"))
	want := []byte{0x00, 0x65, 0x00, 0x00, 0x00, 0x04, 'n', 'a', 'm', 'e'}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExpGeoJSONValue_FlagsAndCellCountLeadPayload(t *testing.T) {
	doc := `{"type":"Point"}`
	got := writeExp(t, NewPredExpGeoJSONValue(doc))

	wantLen := uint32(len(doc) + 3)
	if got[0] != 0x00 || got[1] != 0x0c {
		t.Errorf("tag: got %x, want 000c", got[:2])
	}
	gotLen := uint32(got[2])<<24 | uint32(got[3])<<16 | uint32(got[4])<<8 | uint32(got[5])
	if gotLen != wantLen {
		t.Errorf("payload length: got %d, want %d", gotLen, wantLen)
	}
	if got[6] != 0 {
		t.Errorf("flags byte: got %d, want 0", got[6])
	}
	if got[7] != 0 || got[8] != 0 {
		t.Errorf("cell count: got %x, want 0000", got[7:9])
	}
	if string(got[9:]) != doc {
		t.Errorf("document: got %q, want %q", got[9:], doc)
	}
}

func TestPredExpStringRegex_FlagsPayload(t *testing.T) {
	got := writeExp(t, NewPredExpStringRegex(RegexFlagICase|RegexFlagNewline))
	want := []byte{0x00, 0xd4, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x06}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes:\n got: %x\nwant: %x", got, want)
	}
}

func TestPredExp_FilterSequenceSizes(t *testing.T) {
	// age > 30 AND name matches "^a" — the usual postfix layout
	exps := []PredExp{
		NewPredExpIntegerBin("age"),
		NewPredExpIntegerValue(30),
		NewPredExpIntegerGreater(),
		NewPredExpStringBin("name"),
		NewPredExpStringValue("^a"),
		NewPredExpStringRegex(RegexFlagNone),
		NewPredExpAnd(2),
	}
	var total int
	for _, e := range exps {
		total += e.MarshaledSize()
	}
	buf := wire.NewBuffer(total)
	var written int
	for _, e := range exps {
		n, err := e.Write(buf)
		if err != nil {
			t.Fatalf("write %s: %v", e, err)
		}
		written += n
	}
	if written != total {
		t.Errorf("sizes summed to %d, writes to %d", total, written)
	}
}

type failWriter struct {
	err error
}

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPredExp_SinkErrorPropagatesUnchanged(t *testing.T) {
	sinkErr := errors.New("conn reset")
	s := wire.NewWriterSink(failWriter{err: sinkErr})
	_, err := NewPredExpStringValue("x").Write(s)
	if err != sinkErr {
		t.Fatalf("got %v, want the writer's own error", err)
	}
}
