// Package cdt builds and encodes operations on TesseraDB's complex data
// types: lists, maps, and bit arrays stored inside a single bin. The
// list/map/bit constructor families return an Operation; Operation.Pack
// serializes it into a wire.Sink and EstimateSize runs the identical
// traversal against a measuring sink, so the two always agree byte for
// byte. A context path addresses elements nested arbitrarily deep inside
// the bin value, outermost descriptor first.
//
// Opcodes, selector ids, and argument layouts are opaque server contracts.
// This package reproduces them verbatim and never validates combinations;
// a semantically invalid operation is the server's to reject.
package cdt
