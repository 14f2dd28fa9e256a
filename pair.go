// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "fmt"

// ValueKind identifies the on-wire type carried by a group code.
type ValueKind int

const (
	// KindBool is a boolean commonly encoded on the wire as 0/1.
	KindBool ValueKind = iota
	// KindInt16 is a 16-bit signed integer.
	KindInt16
	// KindInt32 is a 32-bit signed integer.
	KindInt32
	// KindInt64 is a 64-bit signed integer.
	KindInt64
	// KindDouble is a 64-bit float.
	KindDouble
	// KindString is a UTF-8 string (possibly carrying \U+XXXX escapes).
	KindString
	// KindBinary is a raw byte chunk (hex-encoded on the ASCII wire).
	KindBinary
	// KindHandle is a hex object handle.
	KindHandle
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Value is a tagged value carried by a CodePair. Exactly one of the
// typed fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind

	boolVal   bool
	int16Val  int16
	int32Val  int32
	int64Val  int64
	floatVal  float64
	stringVal string
	binVal    []byte
	handleVal Handle
}

// BoolValue constructs a KindBool value.
func BoolValue(v bool) Value { return Value{Kind: KindBool, boolVal: v} }

// Int16Value constructs a KindInt16 value.
func Int16Value(v int16) Value { return Value{Kind: KindInt16, int16Val: v} }

// Int32Value constructs a KindInt32 value.
func Int32Value(v int32) Value { return Value{Kind: KindInt32, int32Val: v} }

// Int64Value constructs a KindInt64 value.
func Int64Value(v int64) Value { return Value{Kind: KindInt64, int64Val: v} }

// DoubleValue constructs a KindDouble value.
func DoubleValue(v float64) Value { return Value{Kind: KindDouble, floatVal: v} }

// StringValue constructs a KindString value.
func StringValue(v string) Value { return Value{Kind: KindString, stringVal: v} }

// BinaryValue constructs a KindBinary value.
func BinaryValue(v []byte) Value { return Value{Kind: KindBinary, binVal: v} }

// HandleValue constructs a KindHandle value.
func HandleValue(v Handle) Value { return Value{Kind: KindHandle, handleVal: v} }

// AsBool coerces the value to a bool, failing with WrongValueType if Kind
// is not KindBool (bools are also commonly read off an int16 field, so
// callers that know a code is bool-like should use AsBoolLoose).
func (v Value) AsBool() (bool, error) {
	if v.Kind != KindBool {
		return false, &WrongValueTypeError{Wanted: KindBool, Got: v.Kind}
	}
	return v.boolVal, nil
}

// AsBoolLoose coerces bool or any integer kind to a bool (non-zero => true).
func (v Value) AsBoolLoose() (bool, error) {
	switch v.Kind {
	case KindBool:
		return v.boolVal, nil
	case KindInt16:
		return v.int16Val != 0, nil
	case KindInt32:
		return v.int32Val != 0, nil
	case KindInt64:
		return v.int64Val != 0, nil
	default:
		return false, &WrongValueTypeError{Wanted: KindBool, Got: v.Kind}
	}
}

// AsInt16 coerces the value to an int16.
func (v Value) AsInt16() (int16, error) {
	if v.Kind != KindInt16 {
		return 0, &WrongValueTypeError{Wanted: KindInt16, Got: v.Kind}
	}
	return v.int16Val, nil
}

// AsInt32 coerces the value to an int32.
func (v Value) AsInt32() (int32, error) {
	switch v.Kind {
	case KindInt32:
		return v.int32Val, nil
	case KindInt16:
		return int32(v.int16Val), nil
	default:
		return 0, &WrongValueTypeError{Wanted: KindInt32, Got: v.Kind}
	}
}

// AsInt64 coerces the value to an int64.
func (v Value) AsInt64() (int64, error) {
	switch v.Kind {
	case KindInt64:
		return v.int64Val, nil
	case KindInt32:
		return int64(v.int32Val), nil
	case KindInt16:
		return int64(v.int16Val), nil
	default:
		return 0, &WrongValueTypeError{Wanted: KindInt64, Got: v.Kind}
	}
}

// AsF64 coerces the value to a float64.
func (v Value) AsF64() (float64, error) {
	if v.Kind != KindDouble {
		return 0, &WrongValueTypeError{Wanted: KindDouble, Got: v.Kind}
	}
	return v.floatVal, nil
}

// AsString coerces the value to a string.
func (v Value) AsString() (string, error) {
	if v.Kind != KindString {
		return "", &WrongValueTypeError{Wanted: KindString, Got: v.Kind}
	}
	return v.stringVal, nil
}

// AsBinary coerces the value to a raw byte chunk.
func (v Value) AsBinary() ([]byte, error) {
	if v.Kind != KindBinary {
		return nil, &WrongValueTypeError{Wanted: KindBinary, Got: v.Kind}
	}
	return v.binVal, nil
}

// AsHandle coerces the value to a Handle.
func (v Value) AsHandle() (Handle, error) {
	if v.Kind != KindHandle {
		return 0, &WrongValueTypeError{Wanted: KindHandle, Got: v.Kind}
	}
	return v.handleVal, nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		if v.boolVal {
			return "1"
		}
		return "0"
	case KindInt16:
		return fmt.Sprintf("%d", v.int16Val)
	case KindInt32:
		return fmt.Sprintf("%d", v.int32Val)
	case KindInt64:
		return fmt.Sprintf("%d", v.int64Val)
	case KindDouble:
		return fmt.Sprintf("%g", v.floatVal)
	case KindString:
		return v.stringVal
	case KindBinary:
		return fmt.Sprintf("% x", v.binVal)
	case KindHandle:
		return v.handleVal.String()
	default:
		return ""
	}
}

// CodePair is the atomic DXF token: a group code and its typed value.
// Offset is the byte offset of the code line in the source stream, or -1
// when the pair was constructed programmatically.
type CodePair struct {
	Code   uint16
	Value  Value
	Offset int64
}

// NewCodePair builds a CodePair with no known source offset.
func NewCodePair(code uint16, value Value) CodePair {
	return CodePair{Code: code, Value: value, Offset: -1}
}

// NewStringPair is a convenience constructor for string-valued pairs.
func NewStringPair(code uint16, s string) CodePair { return NewCodePair(code, StringValue(s)) }

// NewBoolPair is a convenience constructor for bool-valued pairs.
func NewBoolPair(code uint16, b bool) CodePair { return NewCodePair(code, BoolValue(b)) }

// NewInt16Pair is a convenience constructor for int16-valued pairs.
func NewInt16Pair(code uint16, v int16) CodePair { return NewCodePair(code, Int16Value(v)) }

// NewInt32Pair is a convenience constructor for int32-valued pairs.
func NewInt32Pair(code uint16, v int32) CodePair { return NewCodePair(code, Int32Value(v)) }

// NewInt64Pair is a convenience constructor for int64-valued pairs.
func NewInt64Pair(code uint16, v int64) CodePair { return NewCodePair(code, Int64Value(v)) }

// NewDoublePair is a convenience constructor for float-valued pairs.
func NewDoublePair(code uint16, v float64) CodePair { return NewCodePair(code, DoubleValue(v)) }

// NewBinaryPair is a convenience constructor for binary-chunk pairs.
func NewBinaryPair(code uint16, v []byte) CodePair { return NewCodePair(code, BinaryValue(v)) }

// NewHandlePair is a convenience constructor for handle-valued pairs.
func NewHandlePair(code uint16, v Handle) CodePair { return NewCodePair(code, HandleValue(v)) }

// kindOverride captures the handful of codes whose kind does not follow
// the enclosing range (5 sits inside the 0-9 string range but carries a
// record's own handle; 1004 and 1005 sit inside the 1000-1009 string
// range but carry binary/handle data respectively).
var kindOverride = map[uint16]ValueKind{
	5:    KindHandle,
	1004: KindBinary,
	1005: KindHandle,
}

// codeRange pairs an inclusive [low, high] group-code range with the
// value kind the DXF wire format assigns to it.
type codeRange struct {
	low, high uint16
	kind      ValueKind
}

// codeRanges is evaluated in order; the first matching range wins. Ranges
// that would otherwise collide (see kindOverride) are resolved there
// first. Code 1070 is treated as int16 (not bool): the DXF group-code
// table assigns 1070 to "16-bit integer" xdata, and the 290-299 bool
// range does not extend to it, resolving the apparent overlap in the
// code-range table.
var codeRanges = []codeRange{
	{0, 9, KindString},
	{10, 59, KindDouble},
	{60, 79, KindInt16},
	{90, 99, KindInt32},
	{100, 105, KindString},
	{110, 149, KindDouble},
	{160, 169, KindInt64},
	{170, 179, KindInt16},
	{210, 239, KindDouble},
	{270, 289, KindInt16},
	{290, 299, KindBool},
	{300, 309, KindString},
	{310, 319, KindBinary},
	{320, 329, KindHandle},
	{330, 369, KindHandle},
	{370, 389, KindInt16},
	{390, 399, KindHandle},
	{400, 409, KindInt16},
	{410, 419, KindString},
	{420, 429, KindInt32},
	{430, 439, KindString},
	{440, 459, KindInt32},
	{470, 479, KindString},
	{480, 481, KindHandle},
	{999, 999, KindString},
	{1000, 1009, KindString},
	{1010, 1059, KindDouble},
	{1060, 1070, KindInt16},
	{1071, 1071, KindInt32},
}

// ValueKindForCode returns the canonical value kind for a group code, or
// an error if the code is outside the legal [0, 1071] range.
func ValueKindForCode(code uint16) (ValueKind, error) {
	if code > 1071 {
		return 0, fmt.Errorf("dxf: group code %d out of range [0, 1071]", code)
	}
	if k, ok := kindOverride[code]; ok {
		return k, nil
	}
	for _, r := range codeRanges {
		if code >= r.low && code <= r.high {
			return r.kind, nil
		}
	}
	return 0, fmt.Errorf("dxf: group code %d has no assigned value kind", code)
}
