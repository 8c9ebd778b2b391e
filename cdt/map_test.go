package cdt

import (
	"testing"

	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/internal/testutil"
)

func TestMapPut_WriteModeSelectsOpcode(t *testing.T) {
	key := tessera.StringValue("k")
	val := tessera.IntegerValue(1)
	items := []tessera.MapPair{{Key: key, Value: val}}

	tests := []struct {
		name     string
		mode     MapWriteMode
		code     byte
		args     int
		multi    bool
		multiOp  byte
		multiLen int
	}{
		{"update", MapWriteUpdate, 67, 3, true, 68, 2},
		{"update only", MapWriteUpdateOnly, 69, 2, true, 70, 1},
		{"create only", MapWriteCreateOnly, 65, 3, true, 66, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := NewMapPolicy(MapUnordered, tt.mode)

			op := MapPut(policy, key, val)
			if op.Code != tt.code {
				t.Errorf("put opcode: got %d, want %d", op.Code, tt.code)
			}
			if len(op.Args) != tt.args {
				t.Errorf("put arg count: got %d, want %d", len(op.Args), tt.args)
			}
			encodeOp(t, op, nil)

			multi := MapPutItems(policy, items)
			if multi.Code != tt.multiOp {
				t.Errorf("put items opcode: got %d, want %d", multi.Code, tt.multiOp)
			}
			if len(multi.Args) != tt.multiLen {
				t.Errorf("put items arg count: got %d, want %d", len(multi.Args), tt.multiLen)
			}
			encodeOp(t, multi, nil)
		})
	}
}

func TestMapPut_OrderByteTrails(t *testing.T) {
	policy := NewMapPolicy(MapKeyValueOrdered, MapWriteUpdate)
	got := encodeOp(t, MapPut(policy, tessera.StringValue("k"), tessera.IntegerValue(1)), nil)

	r := testutil.NewReader(t, got[2:])
	if n := r.ArrayLen(); n != 3 {
		t.Fatalf("arg count: got %d, want 3", n)
	}
	if k := r.Str(); k != "k" {
		t.Errorf("key: got %q, want %q", k, "k")
	}
	if v := r.Int(); v != 1 {
		t.Errorf("value: got %d, want 1", v)
	}
	if order := r.Int(); order != int64(MapKeyValueOrdered) {
		t.Errorf("order byte: got %d, want %d", order, MapKeyValueOrdered)
	}
}

func TestMapPut_NilValueOmitted(t *testing.T) {
	policy := DefaultMapPolicy()
	tests := []struct {
		name string
		val  tessera.Value
	}{
		{"null value", tessera.NullValue{}},
		{"nil interface", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := MapPut(policy, tessera.StringValue("k"), tt.val)
			if len(op.Args) != 2 {
				t.Fatalf("arg count: got %d, want 2 (key and order only)", len(op.Args))
			}
			got := encodeOp(t, op, nil)
			r := testutil.NewReader(t, got[2:])
			if n := r.ArrayLen(); n != 2 {
				t.Fatalf("encoded arg count: got %d, want 2", n)
			}
			if k := r.Str(); k != "k" {
				t.Errorf("key: got %q, want %q", k, "k")
			}
			if order := r.Int(); order != int64(MapUnordered) {
				t.Errorf("order byte: got %d, want %d", order, MapUnordered)
			}
		})
	}
}

func TestMapIncrementDecrement_Layout(t *testing.T) {
	policy := NewMapPolicy(MapKeyOrdered, MapWriteUpdate)

	inc := MapIncrement(policy, tessera.StringValue("hits"), tessera.IntegerValue(5))
	if inc.Code != 73 {
		t.Errorf("increment opcode: got %d, want 73", inc.Code)
	}
	got := encodeOp(t, inc, nil)
	r := testutil.NewReader(t, got[2:])
	if n := r.ArrayLen(); n != 3 {
		t.Fatalf("arg count: got %d, want 3", n)
	}
	if k := r.Str(); k != "hits" {
		t.Errorf("key: got %q, want %q", k, "hits")
	}
	if d := r.Int(); d != 5 {
		t.Errorf("delta: got %d, want 5", d)
	}
	if order := r.Int(); order != int64(MapKeyOrdered) {
		t.Errorf("order byte: got %d, want %d", order, MapKeyOrdered)
	}

	dec := MapDecrement(policy, tessera.StringValue("hits"), nil)
	if dec.Code != 74 {
		t.Errorf("decrement opcode: got %d, want 74", dec.Code)
	}
	// nil delta drops out, leaving key and order
	if len(dec.Args) != 2 {
		t.Errorf("decrement arg count: got %d, want 2", len(dec.Args))
	}
}

func TestMapConstructors_OpcodesAndArgCounts(t *testing.T) {
	var (
		key  = tessera.StringValue("k")
		val  = tessera.IntegerValue(9)
		keys = []tessera.Value{tessera.StringValue("a"), tessera.StringValue("b")}
		vals = []tessera.Value{tessera.IntegerValue(1)}
	)
	tests := []struct {
		name string
		op   *Operation
		code byte
		args int
	}{
		{"set order", MapSetOrder(MapKeyOrdered), 64, 1},
		{"clear", MapClear(), 75, 0},
		{"size", MapSize(), 96, 0},
		{"get by key", MapGetByKey(key, ReturnValue), 97, 2},
		{"get by key list", MapGetByKeyList(keys, ReturnValue), 107, 2},
		{"get by key range", MapGetByKeyRange(key, tessera.NullValue{}, ReturnValue), 103, 3},
		{"get by key rel index range", MapGetByKeyRelativeIndexRange(key, 1, ReturnValue), 109, 3},
		{"get by key rel index range count", MapGetByKeyRelativeIndexRangeCount(key, 1, 2, ReturnValue), 109, 4},
		{"get by value", MapGetByValue(val, ReturnValue), 102, 2},
		{"get by value list", MapGetByValueList(vals, ReturnValue), 108, 2},
		{"get by value range", MapGetByValueRange(val, val, ReturnValue), 105, 3},
		{"get by value rel rank range", MapGetByValueRelativeRankRange(val, 1, ReturnValue), 110, 3},
		{"get by value rel rank range count", MapGetByValueRelativeRankRangeCount(val, 1, 2, ReturnValue), 110, 4},
		{"get by index", MapGetByIndex(1, ReturnValue), 98, 2},
		{"get by index range", MapGetByIndexRange(1, ReturnValue), 104, 2},
		{"get by index range count", MapGetByIndexRangeCount(1, 2, ReturnValue), 104, 3},
		{"get by rank", MapGetByRank(1, ReturnValue), 100, 2},
		{"get by rank range", MapGetByRankRange(1, ReturnValue), 106, 2},
		{"get by rank range count", MapGetByRankRangeCount(1, 2, ReturnValue), 106, 3},
		{"remove by key", MapRemoveByKey(key, ReturnValue), 76, 2},
		{"remove by key list", MapRemoveByKeyList(keys, ReturnValue), 81, 2},
		{"remove by key range", MapRemoveByKeyRange(key, tessera.NullValue{}, ReturnValue), 84, 3},
		{"remove by key rel index range", MapRemoveByKeyRelativeIndexRange(key, 1, ReturnValue), 88, 3},
		{"remove by key rel index range count", MapRemoveByKeyRelativeIndexRangeCount(key, 1, 2, ReturnValue), 88, 4},
		{"remove by value", MapRemoveByValue(val, ReturnValue), 82, 2},
		{"remove by value list", MapRemoveByValueList(vals, ReturnValue), 83, 2},
		{"remove by value range", MapRemoveByValueRange(val, val, ReturnValue), 86, 3},
		{"remove by value rel rank range", MapRemoveByValueRelativeRankRange(val, 1, ReturnValue), 89, 3},
		{"remove by value rel rank range count", MapRemoveByValueRelativeRankRangeCount(val, 1, 2, ReturnValue), 89, 4},
		{"remove by index", MapRemoveByIndex(1, ReturnValue), 77, 2},
		{"remove by index range", MapRemoveByIndexRange(1, ReturnValue), 85, 2},
		{"remove by index range count", MapRemoveByIndexRangeCount(1, 2, ReturnValue), 85, 3},
		{"remove by rank", MapRemoveByRank(1, ReturnValue), 79, 2},
		{"remove by rank range", MapRemoveByRankRange(1, ReturnValue), 87, 2},
		{"remove by rank range count", MapRemoveByRankRangeCount(1, 2, ReturnValue), 87, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.op.Code != tt.code {
				t.Errorf("opcode: got %d, want %d", tt.op.Code, tt.code)
			}
			if len(tt.op.Args) != tt.args {
				t.Errorf("arg count: got %d, want %d", len(tt.op.Args), tt.args)
			}
			got := encodeOp(t, tt.op, nil)
			if got[0] != 0x00 || got[1] != tt.code {
				t.Errorf("header: got % x, want 00 %02x", got[:2], tt.code)
			}
		})
	}
}

func TestMapGetByKey_KeyValueReturn(t *testing.T) {
	op := MapGetByKey(tessera.StringValue("user"), ReturnKeyValue)
	got := encodeOp(t, op, nil)

	r := testutil.NewReader(t, got[2:])
	if n := r.ArrayLen(); n != 2 {
		t.Fatalf("arg count: got %d, want 2", n)
	}
	if rt := r.Int(); rt != int64(ReturnKeyValue) {
		t.Errorf("return type: got %d, want %d", rt, ReturnKeyValue)
	}
	if k := r.Str(); k != "user" {
		t.Errorf("key: got %q, want %q", k, "user")
	}
}
