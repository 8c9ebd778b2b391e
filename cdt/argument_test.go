package cdt

import (
	"testing"

	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/internal/testutil"
	"github.com/tesseradb/tessera-client-go/wire"
)

// packArg encodes one argument, checking the measured size against the
// written bytes on the way.
func packArg(t *testing.T, a Argument) []byte {
	t.Helper()
	size, err := a.pack(wire.Sizer{})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	buf := wire.NewBuffer(size)
	n, err := a.pack(buf)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if n != size {
		t.Fatalf("measured %d bytes, wrote %d", size, n)
	}
	return buf.Bytes()
}

func TestArgument_RoundTrips(t *testing.T) {
	t.Run("byte", func(t *testing.T) {
		r := testutil.NewReader(t, packArg(t, ByteArg(7)))
		if got := r.Int(); got != 7 {
			t.Errorf("got %d, want 7", got)
		}
	})

	t.Run("int", func(t *testing.T) {
		r := testutil.NewReader(t, packArg(t, IntArg(-12345)))
		if got := r.Int(); got != -12345 {
			t.Errorf("got %d, want -12345", got)
		}
	})

	t.Run("bool", func(t *testing.T) {
		r := testutil.NewReader(t, packArg(t, BoolArg(true)))
		if got := r.Bool(); got != true {
			t.Error("got false, want true")
		}
	})

	t.Run("value", func(t *testing.T) {
		r := testutil.NewReader(t, packArg(t, ValueArg{Value: tessera.StringValue("hello")}))
		if got := r.Str(); got != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("list", func(t *testing.T) {
		arg := ListArg{tessera.IntegerValue(1), tessera.IntegerValue(2), tessera.IntegerValue(3)}
		r := testutil.NewReader(t, packArg(t, arg))
		if n := r.ArrayLen(); n != 3 {
			t.Fatalf("len: got %d, want 3", n)
		}
		for i, want := range []int64{1, 2, 3} {
			if got := r.Int(); got != want {
				t.Errorf("element %d: got %d, want %d", i, got, want)
			}
		}
	})

	t.Run("map", func(t *testing.T) {
		arg := MapArg{{Key: tessera.StringValue("a"), Value: tessera.IntegerValue(1)}}
		r := testutil.NewReader(t, packArg(t, arg))
		if n := r.MapLen(); n != 1 {
			t.Fatalf("len: got %d, want 1", n)
		}
		if k := r.Str(); k != "a" {
			t.Errorf("key: got %q, want %q", k, "a")
		}
		if v := r.Int(); v != 1 {
			t.Errorf("value: got %d, want 1", v)
		}
	})
}

func TestArgument_ByteNeverSignExtends(t *testing.T) {
	r := testutil.NewReader(t, packArg(t, ByteArg(0xff)))
	if got := r.Int(); got != 255 {
		t.Errorf("got %d, want 255", got)
	}
}

func TestArgument_EmptyContainers(t *testing.T) {
	r := testutil.NewReader(t, packArg(t, ListArg{}))
	if n := r.ArrayLen(); n != 0 {
		t.Errorf("list len: got %d, want 0", n)
	}
	r = testutil.NewReader(t, packArg(t, MapArg{}))
	if n := r.MapLen(); n != 0 {
		t.Errorf("map len: got %d, want 0", n)
	}
}
