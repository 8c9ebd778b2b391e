package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
)

// Selector ids for context descriptors. Creation variants OR an order flag
// into the id.
const (
	ctxListIndex = 0x10
	ctxListRank  = 0x11
	ctxListValue = 0x13
	ctxMapIndex  = 0x20
	ctxMapRank   = 0x21
	ctxMapKey    = 0x22
	ctxMapValue  = 0x23
)

// Context is one step of a context path: a selector id and the value that
// locates the target inside its parent container. Paths are ordered slices,
// outermost descriptor first; an empty path targets the bin's top value.
type Context struct {
	id    uint8
	value tessera.Value
}

// CtxListIndex selects the list element at index. Negative indexes count
// from the end.
func CtxListIndex(index int) Context {
	return Context{id: ctxListIndex, value: tessera.IntegerValue(index)}
}

// CtxListIndexCreate selects the list element at index, creating a list
// with the given order if the element does not exist. pad requests nil
// padding up to the index on unordered lists.
func CtxListIndexCreate(index int, order ListOrderType, pad bool) Context {
	return Context{id: ctxListIndex | listOrderFlag(order, pad), value: tessera.IntegerValue(index)}
}

// CtxListRank selects the list element with the given rank.
func CtxListRank(rank int) Context {
	return Context{id: ctxListRank, value: tessera.IntegerValue(rank)}
}

// CtxListValue selects the first list element equal to value.
func CtxListValue(value tessera.Value) Context {
	return Context{id: ctxListValue, value: value}
}

// CtxMapIndex selects the map entry at index.
func CtxMapIndex(index int) Context {
	return Context{id: ctxMapIndex, value: tessera.IntegerValue(index)}
}

// CtxMapRank selects the map entry with the given value rank.
func CtxMapRank(rank int) Context {
	return Context{id: ctxMapRank, value: tessera.IntegerValue(rank)}
}

// CtxMapKey selects the map entry with the given key.
func CtxMapKey(key tessera.Value) Context {
	return Context{id: ctxMapKey, value: key}
}

// CtxMapKeyCreate selects the map entry with the given key, creating a map
// with the given order if the entry does not exist.
func CtxMapKeyCreate(key tessera.Value, order MapOrderType) Context {
	return Context{id: ctxMapKey | mapOrderFlag(order), value: key}
}

// CtxMapValue selects the first map entry holding the given value.
func CtxMapValue(value tessera.Value) Context {
	return Context{id: ctxMapValue, value: value}
}

func listOrderFlag(order ListOrderType, pad bool) uint8 {
	if order == ListOrdered {
		return 0xc0
	}
	if pad {
		return 0x80
	}
	return 0x40
}

func mapOrderFlag(order MapOrderType) uint8 {
	switch order {
	case MapKeyOrdered:
		return 0x80
	case MapKeyValueOrdered:
		return 0xc0
	}
	return 0x40
}
