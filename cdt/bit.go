package cdt

import (
	tessera "github.com/tesseradb/tessera-client-go"
)

// BitWriteFlags modify how bit writes handle existing or missing bytes.
// Values combine with OR.
type BitWriteFlags int

const (
	// BitWriteDefault updates in place, creating the bin if missing.
	BitWriteDefault BitWriteFlags = 0
	// BitWriteCreateOnly fails when the bin already exists.
	BitWriteCreateOnly BitWriteFlags = 1
	// BitWriteUpdateOnly fails when the bin does not exist.
	BitWriteUpdateOnly BitWriteFlags = 2
	// BitWriteNoFail turns policy violations into silent no-ops.
	BitWriteNoFail BitWriteFlags = 4
	// BitWritePartial applies the acceptable parts of a write instead of
	// failing it wholesale.
	BitWritePartial BitWriteFlags = 8
)

// BitResizeFlags modify BitResize.
type BitResizeFlags int

const (
	BitResizeDefault    BitResizeFlags = 0
	BitResizeFromFront  BitResizeFlags = 1
	BitResizeGrowOnly   BitResizeFlags = 2
	BitResizeShrinkOnly BitResizeFlags = 4
)

// BitOverflowAction selects what BitAdd and BitSubtract do when the result
// does not fit the addressed bit range.
type BitOverflowAction int

const (
	// BitOverflowFail rejects the operation.
	BitOverflowFail BitOverflowAction = 0
	// BitOverflowSaturate clamps to the largest or smallest representable
	// value.
	BitOverflowSaturate BitOverflowAction = 2
	// BitOverflowWrap wraps around two's-complement style.
	BitOverflowWrap BitOverflowAction = 4
)

// bitIntFlagsSigned marks an integer bit range as signed.
const bitIntFlagsSigned = 1

// BitPolicy carries the write flags bit modify operations encode alongside
// their payload.
type BitPolicy struct {
	Flags BitWriteFlags
}

// NewBitPolicy returns a policy with the given write flags.
func NewBitPolicy(flags BitWriteFlags) BitPolicy {
	return BitPolicy{Flags: flags}
}

// DefaultBitPolicy has default write semantics.
func DefaultBitPolicy() BitPolicy { return BitPolicy{} }

// Bit operation codes.
const (
	bitOpResize   byte = 0
	bitOpInsert   byte = 1
	bitOpRemove   byte = 2
	bitOpSet      byte = 3
	bitOpOr       byte = 4
	bitOpXor      byte = 5
	bitOpAnd      byte = 6
	bitOpNot      byte = 7
	bitOpLShift   byte = 8
	bitOpRShift   byte = 9
	bitOpAdd      byte = 10
	bitOpSubtract byte = 11
	bitOpSetInt   byte = 12
	bitOpGet      byte = 50
	bitOpCount    byte = 51
	bitOpLScan    byte = 52
	bitOpRScan    byte = 53
	bitOpGetInt   byte = 54
)

// BitResize grows or shrinks the blob to byteSize bytes.
func BitResize(policy BitPolicy, byteSize int, flags BitResizeFlags) *Operation {
	return &Operation{
		Code: bitOpResize,
		Args: []Argument{IntArg(byteSize), ByteArg(policy.Flags), ByteArg(flags)},
		form: arrayHeader,
	}
}

// BitInsert inserts value at byteOffset, shifting existing bytes right.
func BitInsert(policy BitPolicy, byteOffset int, value []byte) *Operation {
	return &Operation{
		Code: bitOpInsert,
		Args: []Argument{
			IntArg(byteOffset),
			ValueArg{Value: tessera.BlobValue(value)},
			ByteArg(policy.Flags),
		},
		form: arrayHeader,
	}
}

// BitRemove deletes byteSize bytes starting at byteOffset.
func BitRemove(policy BitPolicy, byteOffset, byteSize int) *Operation {
	return &Operation{
		Code: bitOpRemove,
		Args: []Argument{IntArg(byteOffset), IntArg(byteSize), ByteArg(policy.Flags)},
		form: arrayHeader,
	}
}

// BitSet overwrites bitSize bits starting at bitOffset with value.
func BitSet(policy BitPolicy, bitOffset, bitSize int, value []byte) *Operation {
	return bitRangeValueOp(bitOpSet, policy, bitOffset, bitSize, value)
}

// BitOr ORs value into bitSize bits starting at bitOffset.
func BitOr(policy BitPolicy, bitOffset, bitSize int, value []byte) *Operation {
	return bitRangeValueOp(bitOpOr, policy, bitOffset, bitSize, value)
}

// BitXor XORs value into bitSize bits starting at bitOffset.
func BitXor(policy BitPolicy, bitOffset, bitSize int, value []byte) *Operation {
	return bitRangeValueOp(bitOpXor, policy, bitOffset, bitSize, value)
}

// BitAnd ANDs value into bitSize bits starting at bitOffset.
func BitAnd(policy BitPolicy, bitOffset, bitSize int, value []byte) *Operation {
	return bitRangeValueOp(bitOpAnd, policy, bitOffset, bitSize, value)
}

func bitRangeValueOp(code byte, policy BitPolicy, bitOffset, bitSize int, value []byte) *Operation {
	return &Operation{
		Code: code,
		Args: []Argument{
			IntArg(bitOffset),
			IntArg(bitSize),
			ValueArg{Value: tessera.BlobValue(value)},
			ByteArg(policy.Flags),
		},
		form: arrayHeader,
	}
}

// BitNot inverts bitSize bits starting at bitOffset.
func BitNot(policy BitPolicy, bitOffset, bitSize int) *Operation {
	return &Operation{
		Code: bitOpNot,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize), ByteArg(policy.Flags)},
		form: arrayHeader,
	}
}

// BitLShift shifts bitSize bits starting at bitOffset left by shift.
func BitLShift(policy BitPolicy, bitOffset, bitSize, shift int) *Operation {
	return bitShiftOp(bitOpLShift, policy, bitOffset, bitSize, shift)
}

// BitRShift shifts bitSize bits starting at bitOffset right by shift.
func BitRShift(policy BitPolicy, bitOffset, bitSize, shift int) *Operation {
	return bitShiftOp(bitOpRShift, policy, bitOffset, bitSize, shift)
}

func bitShiftOp(code byte, policy BitPolicy, bitOffset, bitSize, shift int) *Operation {
	return &Operation{
		Code: code,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize), IntArg(shift), ByteArg(policy.Flags)},
		form: arrayHeader,
	}
}

// BitAdd adds value to the integer held in bitSize bits starting at
// bitOffset. signed selects signed arithmetic; action decides the overflow
// behavior.
func BitAdd(policy BitPolicy, bitOffset, bitSize int, value int64, signed bool, action BitOverflowAction) *Operation {
	return bitArithmeticOp(bitOpAdd, policy, bitOffset, bitSize, value, signed, action)
}

// BitSubtract subtracts value from the integer held in bitSize bits
// starting at bitOffset. signed selects signed arithmetic; action decides
// the overflow behavior.
func BitSubtract(policy BitPolicy, bitOffset, bitSize int, value int64, signed bool, action BitOverflowAction) *Operation {
	return bitArithmeticOp(bitOpSubtract, policy, bitOffset, bitSize, value, signed, action)
}

func bitArithmeticOp(code byte, policy BitPolicy, bitOffset, bitSize int, value int64, signed bool, action BitOverflowAction) *Operation {
	actionFlags := uint8(action)
	if signed {
		actionFlags |= bitIntFlagsSigned
	}
	return &Operation{
		Code: code,
		Args: []Argument{
			IntArg(bitOffset),
			IntArg(bitSize),
			IntArg(value),
			ByteArg(policy.Flags),
			ByteArg(actionFlags),
		},
		form: arrayHeader,
	}
}

// BitSetInt overwrites bitSize bits starting at bitOffset with the integer
// value.
func BitSetInt(policy BitPolicy, bitOffset, bitSize int, value int64) *Operation {
	return &Operation{
		Code: bitOpSetInt,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize), IntArg(value), ByteArg(policy.Flags)},
		form: arrayHeader,
	}
}

// BitGet returns bitSize bits starting at bitOffset.
func BitGet(bitOffset, bitSize int) *Operation {
	return &Operation{
		Code: bitOpGet,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize)},
		form: arrayHeader,
	}
}

// BitCount returns the number of set bits among bitSize bits starting at
// bitOffset.
func BitCount(bitOffset, bitSize int) *Operation {
	return &Operation{
		Code: bitOpCount,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize)},
		form: arrayHeader,
	}
}

// BitLScan returns the offset of the first bit equal to value in bitSize
// bits starting at bitOffset.
func BitLScan(bitOffset, bitSize int, value bool) *Operation {
	return bitScanOp(bitOpLScan, bitOffset, bitSize, value)
}

// BitRScan returns the offset of the last bit equal to value in bitSize
// bits starting at bitOffset.
func BitRScan(bitOffset, bitSize int, value bool) *Operation {
	return bitScanOp(bitOpRScan, bitOffset, bitSize, value)
}

func bitScanOp(code byte, bitOffset, bitSize int, value bool) *Operation {
	return &Operation{
		Code: code,
		Args: []Argument{IntArg(bitOffset), IntArg(bitSize), BoolArg(value)},
		form: arrayHeader,
	}
}

// BitGetInt returns the integer held in bitSize bits starting at bitOffset.
// The signed flag is sent only when set; an unsigned read is the server
// default.
func BitGetInt(bitOffset, bitSize int, signed bool) *Operation {
	args := []Argument{IntArg(bitOffset), IntArg(bitSize)}
	if signed {
		args = append(args, ByteArg(bitIntFlagsSigned))
	}
	return &Operation{Code: bitOpGetInt, Args: args, form: arrayHeader}
}
