package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
)

// MapOrderType controls how the server stores a map.
type MapOrderType int

const (
	// MapUnordered keeps entries in insertion order.
	MapUnordered MapOrderType = 0
	// MapKeyOrdered keeps entries sorted by key.
	MapKeyOrdered MapOrderType = 1
	// MapKeyValueOrdered keeps entries sorted by key with an additional
	// value index.
	MapKeyValueOrdered MapOrderType = 3
)

// MapWriteMode selects how map writes treat existing keys. It decides which
// opcode a write constructor emits.
type MapWriteMode int

const (
	// MapWriteUpdate creates missing entries and overwrites existing ones.
	MapWriteUpdate MapWriteMode = iota
	// MapWriteUpdateOnly overwrites existing entries and fails on missing
	// ones.
	MapWriteUpdateOnly
	// MapWriteCreateOnly creates missing entries and fails on existing
	// ones.
	MapWriteCreateOnly
)

// MapPolicy carries the storage order and write mode map write operations
// encode alongside their payload.
type MapPolicy struct {
	Order     MapOrderType
	WriteMode MapWriteMode
}

// NewMapPolicy returns a policy with the given order and write mode.
func NewMapPolicy(order MapOrderType, mode MapWriteMode) MapPolicy {
	return MapPolicy{Order: order, WriteMode: mode}
}

// DefaultMapPolicy is an unordered map in update mode.
func DefaultMapPolicy() MapPolicy { return MapPolicy{} }

// Map operation codes.
const (
	mapOpSetType                   byte = 64
	mapOpAdd                       byte = 65
	mapOpAddItems                  byte = 66
	mapOpPut                       byte = 67
	mapOpPutItems                  byte = 68
	mapOpReplace                   byte = 69
	mapOpReplaceItems              byte = 70
	mapOpIncrement                 byte = 73
	mapOpDecrement                 byte = 74
	mapOpClear                     byte = 75
	mapOpRemoveByKey               byte = 76
	mapOpRemoveByIndex             byte = 77
	mapOpRemoveByRank              byte = 79
	mapOpRemoveByKeyList           byte = 81
	mapOpRemoveByValue             byte = 82
	mapOpRemoveByValueList         byte = 83
	mapOpRemoveByKeyInterval       byte = 84
	mapOpRemoveByIndexRange        byte = 85
	mapOpRemoveByValueInterval     byte = 86
	mapOpRemoveByRankRange         byte = 87
	mapOpRemoveByKeyRelIndexRange  byte = 88
	mapOpRemoveByValueRelRankRange byte = 89
	mapOpSize                      byte = 96
	mapOpGetByKey                  byte = 97
	mapOpGetByIndex                byte = 98
	mapOpGetByRank                 byte = 100
	mapOpGetByValue                byte = 102
	mapOpGetByKeyInterval          byte = 103
	mapOpGetByIndexRange           byte = 104
	mapOpGetByValueInterval        byte = 105
	mapOpGetByRankRange            byte = 106
	mapOpGetByKeyList              byte = 107
	mapOpGetByValueList            byte = 108
	mapOpGetByKeyRelIndexRange     byte = 109
	mapOpGetByValueRelRankRange    byte = 110
)

// mapWriteOpCode maps the policy write mode onto the opcode family the
// server distinguishes update/replace/create semantics by.
func mapWriteOpCode(policy MapPolicy, multi bool) byte {
	switch policy.WriteMode {
	case MapWriteUpdateOnly:
		if multi {
			return mapOpReplaceItems
		}
		return mapOpReplace
	case MapWriteCreateOnly:
		if multi {
			return mapOpAddItems
		}
		return mapOpAdd
	default:
		if multi {
			return mapOpPutItems
		}
		return mapOpPut
	}
}

// mapOrderArg returns the trailing order argument map writes carry. Replace
// opcodes never take one: the entry already exists, so no map can be
// created.
func mapOrderArg(policy MapPolicy) (Argument, bool) {
	if policy.WriteMode == MapWriteUpdateOnly {
		return nil, false
	}
	return ByteArg(policy.Order), true
}

func isNilValue(v tessera.Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(tessera.NullValue)
	return ok
}

// MapSetOrder converts the map to the given storage order.
func MapSetOrder(order MapOrderType) *Operation {
	return &Operation{Code: mapOpSetType, Args: []Argument{ByteArg(order)}}
}

// MapPut writes one entry. The opcode follows the policy write mode; a nil
// value is omitted from the arguments, which the server reads as "keep the
// existing value".
func MapPut(policy MapPolicy, key, value tessera.Value) *Operation {
	args := []Argument{ValueArg{Value: key}}
	if !isNilValue(value) {
		args = append(args, ValueArg{Value: value})
	}
	if arg, ok := mapOrderArg(policy); ok {
		args = append(args, arg)
	}
	return &Operation{Code: mapWriteOpCode(policy, false), Args: args}
}

// MapPutItems writes every entry in items.
func MapPutItems(policy MapPolicy, items []tessera.MapPair) *Operation {
	args := []Argument{MapArg(items)}
	if arg, ok := mapOrderArg(policy); ok {
		args = append(args, arg)
	}
	return &Operation{Code: mapWriteOpCode(policy, true), Args: args}
}

// MapIncrement adds delta to the numeric value stored under key. A nil
// delta is omitted and the server applies its default of one.
func MapIncrement(policy MapPolicy, key, delta tessera.Value) *Operation {
	return mapDeltaOp(mapOpIncrement, policy, key, delta)
}

// MapDecrement subtracts delta from the numeric value stored under key. A
// nil delta is omitted and the server applies its default of one.
func MapDecrement(policy MapPolicy, key, delta tessera.Value) *Operation {
	return mapDeltaOp(mapOpDecrement, policy, key, delta)
}

func mapDeltaOp(code byte, policy MapPolicy, key, delta tessera.Value) *Operation {
	args := []Argument{ValueArg{Value: key}}
	if !isNilValue(delta) {
		args = append(args, ValueArg{Value: delta})
	}
	if arg, ok := mapOrderArg(policy); ok {
		args = append(args, arg)
	}
	return &Operation{Code: code, Args: args}
}

// MapClear removes all entries.
func MapClear() *Operation {
	return &Operation{Code: mapOpClear}
}

// MapSize returns the entry count.
func MapSize() *Operation {
	return &Operation{Code: mapOpSize}
}

// MapGetByKey returns the entry under key, shaped by returnType.
func MapGetByKey(key tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByKey,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}},
	}
}

// MapGetByKeyList selects every entry whose key is in keys.
func MapGetByKeyList(keys []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByKeyList,
		Args: []Argument{IntArg(returnType), ListArg(keys)},
	}
}

// MapGetByKeyRange selects entries with begin <= key < end. Pass a
// NullValue bound to leave that side open.
func MapGetByKeyRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByKeyInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// MapGetByKeyRelativeIndexRange selects every entry from the given index
// relative to key onwards.
func MapGetByKeyRelativeIndexRange(key tessera.Value, index int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByKeyRelIndexRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}, IntArg(index)},
	}
}

// MapGetByKeyRelativeIndexRangeCount selects count entries starting at the
// given index relative to key.
func MapGetByKeyRelativeIndexRangeCount(key tessera.Value, index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByKeyRelIndexRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}, IntArg(index), IntArg(count)},
	}
}

// MapGetByValue selects every entry holding value.
func MapGetByValue(value tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByValue,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}},
	}
}

// MapGetByValueList selects every entry holding any of values.
func MapGetByValueList(values []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByValueList,
		Args: []Argument{IntArg(returnType), ListArg(values)},
	}
}

// MapGetByValueRange selects entries with begin <= value < end. Pass a
// NullValue bound to leave that side open.
func MapGetByValueRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByValueInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// MapGetByValueRelativeRankRange selects every entry from the given rank
// relative to value onwards.
func MapGetByValueRelativeRankRange(value tessera.Value, rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank)},
	}
}

// MapGetByValueRelativeRankRangeCount selects count entries starting at the
// given rank relative to value.
func MapGetByValueRelativeRankRangeCount(value tessera.Value, rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank), IntArg(count)},
	}
}

// MapGetByIndex selects the entry at index.
func MapGetByIndex(index int, returnType ReturnType) *Operation {
	return &Operation{Code: mapOpGetByIndex, Args: []Argument{IntArg(returnType), IntArg(index)}}
}

// MapGetByIndexRange selects every entry from index to the end.
func MapGetByIndexRange(index int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index)},
	}
}

// MapGetByIndexRangeCount selects count entries starting at index.
func MapGetByIndexRangeCount(index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index), IntArg(count)},
	}
}

// MapGetByRank selects the entry with the given value rank.
func MapGetByRank(rank int, returnType ReturnType) *Operation {
	return &Operation{Code: mapOpGetByRank, Args: []Argument{IntArg(returnType), IntArg(rank)}}
}

// MapGetByRankRange selects every entry from rank to the highest rank.
func MapGetByRankRange(rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank)},
	}
}

// MapGetByRankRangeCount selects count entries starting at rank.
func MapGetByRankRangeCount(rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpGetByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank), IntArg(count)},
	}
}

// MapRemoveByKey removes the entry under key, returning it per returnType.
func MapRemoveByKey(key tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByKey,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}},
	}
}

// MapRemoveByKeyList removes every entry whose key is in keys.
func MapRemoveByKeyList(keys []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByKeyList,
		Args: []Argument{IntArg(returnType), ListArg(keys)},
	}
}

// MapRemoveByKeyRange removes entries with begin <= key < end. Pass a
// NullValue bound to leave that side open.
func MapRemoveByKeyRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByKeyInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// MapRemoveByKeyRelativeIndexRange removes every entry from the given index
// relative to key onwards.
func MapRemoveByKeyRelativeIndexRange(key tessera.Value, index int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByKeyRelIndexRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}, IntArg(index)},
	}
}

// MapRemoveByKeyRelativeIndexRangeCount removes count entries starting at
// the given index relative to key.
func MapRemoveByKeyRelativeIndexRangeCount(key tessera.Value, index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByKeyRelIndexRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: key}, IntArg(index), IntArg(count)},
	}
}

// MapRemoveByValue removes every entry holding value.
func MapRemoveByValue(value tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByValue,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}},
	}
}

// MapRemoveByValueList removes every entry holding any of values.
func MapRemoveByValueList(values []tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByValueList,
		Args: []Argument{IntArg(returnType), ListArg(values)},
	}
}

// MapRemoveByValueRange removes entries with begin <= value < end. Pass a
// NullValue bound to leave that side open.
func MapRemoveByValueRange(begin, end tessera.Value, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByValueInterval,
		Args: []Argument{IntArg(returnType), ValueArg{Value: begin}, ValueArg{Value: end}},
	}
}

// MapRemoveByValueRelativeRankRange removes every entry from the given rank
// relative to value onwards.
func MapRemoveByValueRelativeRankRange(value tessera.Value, rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank)},
	}
}

// MapRemoveByValueRelativeRankRangeCount removes count entries starting at
// the given rank relative to value.
func MapRemoveByValueRelativeRankRangeCount(value tessera.Value, rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByValueRelRankRange,
		Args: []Argument{IntArg(returnType), ValueArg{Value: value}, IntArg(rank), IntArg(count)},
	}
}

// MapRemoveByIndex removes the entry at index.
func MapRemoveByIndex(index int, returnType ReturnType) *Operation {
	return &Operation{Code: mapOpRemoveByIndex, Args: []Argument{IntArg(returnType), IntArg(index)}}
}

// MapRemoveByIndexRange removes every entry from index to the end.
func MapRemoveByIndexRange(index int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index)},
	}
}

// MapRemoveByIndexRangeCount removes count entries starting at index.
func MapRemoveByIndexRangeCount(index, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByIndexRange,
		Args: []Argument{IntArg(returnType), IntArg(index), IntArg(count)},
	}
}

// MapRemoveByRank removes the entry with the given value rank.
func MapRemoveByRank(rank int, returnType ReturnType) *Operation {
	return &Operation{Code: mapOpRemoveByRank, Args: []Argument{IntArg(returnType), IntArg(rank)}}
}

// MapRemoveByRankRange removes every entry from rank to the highest rank.
func MapRemoveByRankRange(rank int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank)},
	}
}

// MapRemoveByRankRangeCount removes count entries starting at rank.
func MapRemoveByRankRangeCount(rank, count int, returnType ReturnType) *Operation {
	return &Operation{
		Code: mapOpRemoveByRankRange,
		Args: []Argument{IntArg(returnType), IntArg(rank), IntArg(count)},
	}
}
