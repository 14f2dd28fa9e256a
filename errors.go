// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the tokenizer, writer and drawing driver,
// following a package-level Err* convention rather than a single opaque
// error type.
var (
	// ErrUnexpectedEOF is returned when the stream ends mid-pair.
	ErrUnexpectedEOF = errors.New("dxf: unexpected end of stream")

	// ErrMalformedInteger is returned when an integer-kinded code pair's
	// value cannot be parsed as an integer.
	ErrMalformedInteger = errors.New("dxf: malformed integer value")

	// ErrMalformedFloat is returned when a float-kinded code pair's value
	// cannot be parsed as a float.
	ErrMalformedFloat = errors.New("dxf: malformed float value")

	// ErrMalformedHandle is returned when a handle-kinded code pair's
	// value is not valid hex.
	ErrMalformedHandle = errors.New("dxf: malformed handle value")

	// ErrUnexpectedByte is returned when a binary-mode stream contains a
	// byte sequence that cannot be interpreted per the code-range table.
	ErrUnexpectedByte = errors.New("dxf: unexpected byte in binary stream")

	// ErrMissingSection is returned by strict readers when a required
	// section is absent.
	ErrMissingSection = errors.New("dxf: required section missing")

	// ErrPushedBackTwice is a programmer error: at most one pair may be
	// pushed back onto a PairIterator before the next Next call.
	ErrPushedBackTwice = errors.New("dxf: pushed back a pair while one was already buffered")

	// ErrUnexpectedEOFSection is returned when a section ends without a
	// matching ENDSEC pair.
	ErrUnexpectedEOFSection = errors.New("dxf: section ended without ENDSEC")
)

// WrongValueTypeError is returned when a code pair's value cannot be
// coerced to the type a field or converter requested.
type WrongValueTypeError struct {
	Wanted ValueKind
	Got    ValueKind
}

func (e *WrongValueTypeError) Error() string {
	return fmt.Sprintf("dxf: wanted value of kind %s, got %s", e.Wanted, e.Got)
}

// UnexpectedCodePairError is returned by structural sub-codecs (nested
// groups, points, SectionTypeSettings-style records) when a pair is seen
// where it cannot logically belong.
type UnexpectedCodePairError struct {
	Pair    CodePair
	Context string
}

func (e *UnexpectedCodePairError) Error() string {
	return fmt.Sprintf("dxf: unexpected code pair (%d, %v) %s", e.Pair.Code, e.Pair.Value, e.Context)
}

// UnexpectedEnumValueError is returned when a typed field encounters an
// integer outside its known variants.
type UnexpectedEnumValueError struct {
	Field string
	Value int64
}

func (e *UnexpectedEnumValueError) Error() string {
	return fmt.Sprintf("dxf: unexpected enum value %d for field %s", e.Value, e.Field)
}

// CodePairError wraps an error encountered while tokenizing or decoding a
// specific pair with its byte offset, matching the tokenizer's contract
// that the stream position is left just past the offending bytes.
type CodePairError struct {
	Offset int64
	Err    error
}

func (e *CodePairError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("dxf: at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("dxf: %v", e.Err)
}

func (e *CodePairError) Unwrap() error { return e.Err }
