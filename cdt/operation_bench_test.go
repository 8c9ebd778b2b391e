package cdt

import (
	"testing"

	tessera "github.com/tesseradb/tessera-client-go"
	"github.com/tesseradb/tessera-client-go/wire"
)

func benchOperation() (*Operation, []Context) {
	op := MapPutItems(DefaultMapPolicy(), []tessera.MapPair{
		{Key: tessera.StringValue("name"), Value: tessera.StringValue("benchmark")},
		{Key: tessera.StringValue("count"), Value: tessera.IntegerValue(12345)},
		{Key: tessera.StringValue("tags"), Value: tessera.ListValue{
			tessera.StringValue("a"),
			tessera.StringValue("b"),
		}},
	})
	path := []Context{
		CtxMapKey(tessera.StringValue("profile")),
		CtxListIndex(3),
	}
	return op, path
}

func BenchmarkOperation_Pack(b *testing.B) {
	op, path := benchOperation()
	size, err := op.EstimateSize(path)
	if err != nil {
		b.Fatalf("estimate: %v", err)
	}
	buf := wire.NewBuffer(size)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if _, err := op.Pack(buf, path); err != nil {
			b.Fatalf("pack: %v", err)
		}
	}
}

func BenchmarkOperation_EstimateSize(b *testing.B) {
	op, path := benchOperation()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := op.EstimateSize(path); err != nil {
			b.Fatalf("estimate: %v", err)
		}
	}
}

func BenchmarkOperation_PackNoPath(b *testing.B) {
	op := ListAppend(DefaultListPolicy(), tessera.IntegerValue(42))
	buf := wire.NewBuffer(64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if _, err := op.Pack(buf, nil); err != nil {
			b.Fatalf("pack: %v", err)
		}
	}
}
