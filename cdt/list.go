package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
)

// ListOrderType controls how the server stores a list.
type ListOrderType int

const (
	// ListUnordered keeps elements in insertion order.
	ListUnordered ListOrderType = 0
	// ListOrdered keeps elements sorted by value.
	ListOrdered ListOrderType = 1
)

// ListWriteFlags modify how list writes handle existing or missing
// elements. Values combine with OR.
type ListWriteFlags int

const (
	// ListWriteDefault allows duplicates and fails on out-of-bounds writes.
	ListWriteDefault ListWriteFlags = 0
	// ListWriteAddUnique rejects values that already exist in the list.
	ListWriteAddUnique ListWriteFlags = 1
	// ListWriteInsertBounded rejects inserts past the end of the list.
	ListWriteInsertBounded ListWriteFlags = 2
	// ListWriteNoFail turns policy violations into silent no-ops.
	ListWriteNoFail ListWriteFlags = 4
	// ListWritePartial applies the acceptable parts of a multi-element
	// write instead of failing it wholesale.
	ListWritePartial ListWriteFlags = 8
)

// ListSortFlags modify ListSort.
type ListSortFlags int

const (
	ListSortDefault        ListSortFlags = 0
	ListSortDescending     ListSortFlags = 1
	ListSortDropDuplicates ListSortFlags = 2
)

// ListPolicy carries the storage order and write flags list write
// operations encode alongside their payload.
type ListPolicy struct {
	Order ListOrderType
	Flags ListWriteFlags
}

// NewListPolicy returns a policy with the given order and write flags.
func NewListPolicy(order ListOrderType, flags ListWriteFlags) ListPolicy {
	return ListPolicy{Order: order, Flags: flags}
}

// DefaultListPolicy is an unordered list with default write semantics.
func DefaultListPolicy() ListPolicy { return ListPolicy{} }

// List operation codes.
const (
	listOpSetType                   byte = 0
	listOpAppend                    byte = 1
	listOpAppendItems               byte = 2
	listOpInsert                    byte = 3
	listOpInsertItems               byte = 4
	listOpPop                       byte = 5
	listOpPopRange                  byte = 6
	listOpRemove                    byte = 7
	listOpRemoveRange               byte = 8
	listOpSet                       byte = 9
	listOpTrim                      byte = 10
	listOpClear                     byte = 11
	listOpIncrement                 byte = 12
	listOpSort                      byte = 13
	listOpSize                      byte = 16
	listOpGet                       byte = 17
	listOpGetRange                  byte = 18
	listOpGetByIndex                byte = 19
	listOpGetByRank                 byte = 21
	listOpGetByValue                byte = 22
	listOpGetByValueList            byte = 23
	listOpGetByIndexRange           byte = 24
	listOpGetByValueInterval        byte = 25
	listOpGetByRankRange            byte = 26
	listOpGetByValueRelRankRange    byte = 27
	listOpRemoveByIndex             byte = 32
	listOpRemoveByRank              byte = 34
	listOpRemoveByValue             byte = 35
	listOpRemoveByValueList         byte = 36
	listOpRemoveByIndexRange        byte = 37
	listOpRemoveByValueInterval     byte = 38
	listOpRemoveByRankRange         byte = 39
	listOpRemoveByValueRelRankRange byte = 40
)

// ListSetOrder converts the list to the given storage order.
func ListSetOrder(order ListOrderType) *Operation {
	return &Operation{Code: listOpSetType, Args: []Argument{ByteArg(order)}}
}

// ListAppend appends value to the end of the list.
func ListAppend(policy ListPolicy, value tessera.Value) *Operation {
	return &Operation{
		Code: listOpAppend,
		Args: []Argument{ValueArg{Value: value}, ByteArg(policy.Order), ByteArg(policy.Flags)},
	}
}

// ListAppendItems appends every value in values to the end of the list.
func ListAppendItems(policy ListPolicy, values []tessera.Value) *Operation {
	return &Operation{
		Code: listOpAppendItems,
		Args: []Argument{ListArg(values), ByteArg(policy.Order), ByteArg(policy.Flags)},
	}
}

// ListInsert inserts value before the element at index.
func ListInsert(policy ListPolicy, index int, value tessera.Value) *Operation {
	return &Operation{
		Code: listOpInsert,
		Args: []Argument{IntArg(index), ValueArg{Value: value}, ByteArg(policy.Flags)},
	}
}

// ListInsertItems inserts values before the element at index.
func ListInsertItems(policy ListPolicy, index int, values []tessera.Value) *Operation {
	return &Operation{
		Code: listOpInsertItems,
		Args: []Argument{IntArg(index), ListArg(values), ByteArg(policy.Flags)},
	}
}

// ListPop removes the element at index and returns it.
func ListPop(index int) *Operation {
	return &Operation{Code: listOpPop, Args: []Argument{IntArg(index)}}
}

// ListPopRange removes count elements starting at index and returns them.
func ListPopRange(index, count int) *Operation {
	return &Operation{Code: listOpPopRange, Args: []Argument{IntArg(index), IntArg(count)}}
}

// ListPopRangeFrom removes every element from index to the end and returns
// them.
func ListPopRangeFrom(index int) *Operation {
	return &Operation{Code: listOpPopRange, Args: []Argument{IntArg(index)}}
}

// ListRemove removes the element at index.
func ListRemove(index int) *Operation {
	return &Operation{Code: listOpRemove, Args: []Argument{IntArg(index)}}
}

// ListRemoveRange removes count elements starting at index.
func ListRemoveRange(index, count int) *Operation {
	return &Operation{Code: listOpRemoveRange, Args: []Argument{IntArg(index), IntArg(count)}}
}

// ListRemoveRangeFrom removes every element from index to the end.
func ListRemoveRangeFrom(index int) *Operation {
	return &Operation{Code: listOpRemoveRange, Args: []Argument{IntArg(index)}}
}

// ListSet overwrites the element at index with value.
func ListSet(index int, value tessera.Value) *Operation {
	return &Operation{Code: listOpSet, Args: []Argument{IntArg(index), ValueArg{Value: value}}}
}

// ListTrim removes every element outside the count elements starting at
// index.
func ListTrim(index, count int) *Operation {
	return &Operation{Code: listOpTrim, Args: []Argument{IntArg(index), IntArg(count)}}
}

// ListClear removes all elements.
func ListClear() *Operation {
	return &Operation{Code: listOpClear}
}

// ListIncrement adds value to the element at index. The element and value
// must both be numeric.
func ListIncrement(policy ListPolicy, index int, value tessera.Value) *Operation {
	return &Operation{
		Code: listOpIncrement,
		Args: []Argument{IntArg(index), ValueArg{Value: value}, ByteArg(policy.Flags)},
	}
}

// ListSort sorts the list in place.
func ListSort(flags ListSortFlags) *Operation {
	return &Operation{Code: listOpSort, Args: []Argument{ByteArg(flags)}}
}

// ListSize returns the element count.
func ListSize() *Operation {
	return &Operation{Code: listOpSize}
}

// ListGet returns the element at index.
func ListGet(index int) *Operation {
	return &Operation{Code: listOpGet, Args: []Argument{IntArg(index)}}
}

// ListGetRange returns count elements starting at index.
func ListGetRange(index, count int) *Operation {
	return &Operation{Code: listOpGetRange, Args: []Argument{IntArg(index), IntArg(count)}}
}

// ListGetRangeFrom returns every element from index to the end.
func ListGetRangeFrom(index int) *Operation {
	return &Operation{Code: listOpGetRange, Args: []Argument{IntArg(index)}}
}

// ListGetByIndex returns the element at index, shaped by returnType.
func ListGetByIndex(index int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpGetByIndex, Args: []Argument{IntArg(returnType), IntArg(index)}}
}

// ListGetByIndexRange selects every element from index to the end.
func ListGetByIndexRange(index int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpGetByIndexRange, Args: []Argument{IntArg(returnType), IntArg(index)}}
}

// ListGetByIndexRangeCount selects count elements starting at index.
func ListGetByIndexRangeCount(index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index), IntArg(count)},
	}
}

// ListGetByRank selects the element with the given rank.
func ListGetByRank(rank int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpGetByRank, Args: []Argument{IntArg(returnType), IntArg(rank)}}
}

// ListGetByRankRange selects every element from rank to the highest rank.
func ListGetByRankRange(rank int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpGetByRankRange, Args: []Argument{IntArg(returnType), IntArg(rank)}}
}

// ListGetByRankRangeCount selects count elements starting at rank.
func ListGetByRankRangeCount(rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank), IntArg(count)},
	}
}

// ListGetByValue selects every element equal to value.
func ListGetByValue(value tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByValue,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}},
	}
}

// ListGetByValueList selects every element equal to any of values.
func ListGetByValueList(values []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByValueList,
		Args: []Argument{IntArg(returnType), ListArg(values)},
	}
}

// ListGetByValueRange selects elements with begin <= value < end. Pass a
// NullValue bound to leave that side open.
func ListGetByValueRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByValueInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// ListGetByValueRelativeRankRange selects every element with rank >= the
// given rank relative to value.
func ListGetByValueRelativeRankRange(value tessera.Value, rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank)},
	}
}

// ListGetByValueRelativeRankRangeCount selects count elements starting at
// the given rank relative to value.
func ListGetByValueRelativeRankRangeCount(value tessera.Value, rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpGetByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank), IntArg(count)},
	}
}

// ListRemoveByIndex removes the element at index, returning it per
// returnType.
func ListRemoveByIndex(index int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpRemoveByIndex, Args: []Argument{IntArg(returnType), IntArg(index)}}
}

// ListRemoveByIndexRange removes every element from index to the end.
func ListRemoveByIndexRange(index int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index)},
	}
}

// ListRemoveByIndexRangeCount removes count elements starting at index.
func ListRemoveByIndexRangeCount(index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index), IntArg(count)},
	}
}

// ListRemoveByRank removes the element with the given rank.
func ListRemoveByRank(rank int, returnType ReturnType) *Operation {
	return &Operation{Code: listOpRemoveByRank, Args: []Argument{IntArg(returnType), IntArg(rank)}}
}

// ListRemoveByRankRange removes every element from rank to the highest
// rank.
func ListRemoveByRankRange(rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank)},
	}
}

// ListRemoveByRankRangeCount removes count elements starting at rank.
func ListRemoveByRankRangeCount(rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank), IntArg(count)},
	}
}

// ListRemoveByValue removes every element equal to value.
func ListRemoveByValue(value tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByValue,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}},
	}
}

// ListRemoveByValueList removes every element equal to any of values.
func ListRemoveByValueList(values []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByValueList,
		Args: []Argument{IntArg(returnType), ListArg(values)},
	}
}

// ListRemoveByValueRange removes elements with begin <= value < end. Pass a
// NullValue bound to leave that side open.
func ListRemoveByValueRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByValueInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// ListRemoveByValueRelativeRankRange removes every element with rank >= the
// given rank relative to value.
func ListRemoveByValueRelativeRankRange(value tessera.Value, rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank)},
	}
}

// ListRemoveByValueRelativeRankRangeCount removes count elements starting
// at the given rank relative to value.
func ListRemoveByValueRelativeRankRangeCount(value tessera.Value, rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: listOpRemoveByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank), IntArg(count)},
	}
}
