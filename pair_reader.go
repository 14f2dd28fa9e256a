// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/deltacad/dxf/internal/dfitext"
)

// binaryMagic is the 22-byte sentinel that opens a binary-mode DXF stream.
const binaryMagic = "AutoCAD Binary DXF\r\n\x1a\x00"

// Tokenizer converts a byte stream into a sequence of CodePairs. It
// auto-detects ASCII vs binary encoding from the first 22 bytes and is
// fully synchronous: NextPair only advances the stream when called, and
// dropping the Tokenizer (letting it be garbage collected, or simply not
// calling NextPair again) is how callers cancel mid-stream.
type Tokenizer struct {
	r      *bufio.Reader
	binary bool
	offset int64

	// done is set once the stream has reached a clean end; every later
	// NextPair call returns (CodePair{}, false, nil).
	done bool
}

// NewTokenizer wraps r, sniffing the encoding from its first bytes.
func NewTokenizer(r io.Reader) (*Tokenizer, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	t := &Tokenizer{r: br}
	peek, err := br.Peek(len(binaryMagic))
	if err == nil && string(peek) == binaryMagic {
		t.binary = true
		if _, err := br.Discard(len(binaryMagic)); err != nil {
			return nil, err
		}
		t.offset = int64(len(binaryMagic))
	}
	return t, nil
}

// NextPair implements PairSource. It returns (pair, true, nil) on
// success, (_, false, nil) at a clean EOF, or (_, false, err) on a
// malformed pair; an error is fatal to that pair and the stream position
// is left just past the offending bytes.
func (t *Tokenizer) NextPair() (CodePair, bool, error) {
	if t.done {
		return CodePair{}, false, nil
	}
	if t.binary {
		return t.nextBinaryPair()
	}
	return t.nextASCIIPair()
}

// --- ASCII mode ---

// readLine reads up to the next line terminator (CR, LF, or CRLF,
// tolerating a mix of styles within a single stream) and returns the
// line's content without its terminator; callers trim whitespace.
func (t *Tokenizer) readLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if sb.Len() == 0 {
					return "", io.EOF
				}
				return sb.String(), nil
			}
			return "", err
		}
		t.offset++
		if b == '\n' {
			return sb.String(), nil
		}
		if b == '\r' {
			next, err := t.r.Peek(1)
			if err == nil && len(next) == 1 && next[0] == '\n' {
				_, _ = t.r.Discard(1)
				t.offset++
			}
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

func (t *Tokenizer) nextASCIIPair() (CodePair, bool, error) {
	for {
		codeOffset := t.offset
		codeLine, err := t.readLine()
		if err != nil {
			if err == io.EOF {
				t.done = true
				return CodePair{}, false, nil
			}
			return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: err}
		}
		codeStr := strings.TrimSpace(codeLine)
		code64, err := strconv.ParseInt(codeStr, 10, 32)
		if err != nil || code64 < 0 || code64 > 1071 {
			return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: ErrMalformedInteger}
		}
		code := uint16(code64)

		valueLine, err := t.readLine()
		if err != nil {
			return CodePair{}, false, &CodePairError{Offset: t.offset, Err: ErrUnexpectedEOF}
		}
		valueStr := strings.TrimSpace(valueLine)

		if code == 999 {
			// Comment pairs are dropped.
			continue
		}

		value, err := decodeASCIIValue(code, valueStr)
		if err != nil {
			return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: err}
		}
		return CodePair{Code: code, Value: value, Offset: codeOffset}, true, nil
	}
}

func decodeASCIIValue(code uint16, s string) (Value, error) {
	kind, err := ValueKindForCode(code)
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case KindString:
		return StringValue(dfitext.UnescapeUnicode(s)), nil
	case KindDouble:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, ErrMalformedFloat
		}
		return DoubleValue(f), nil
	case KindInt16:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return Value{}, ErrMalformedInteger
		}
		return Int16Value(int16(i)), nil
	case KindInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, ErrMalformedInteger
		}
		return Int32Value(int32(i)), nil
	case KindInt64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, ErrMalformedInteger
		}
		return Int64Value(i), nil
	case KindBool:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return Value{}, ErrMalformedInteger
		}
		return BoolValue(i != 0), nil
	case KindBinary:
		b, err := hex.DecodeString(s)
		if err != nil {
			return Value{}, ErrMalformedHandle
		}
		return BinaryValue(b), nil
	case KindHandle:
		h, err := ParseHandle(s)
		if err != nil {
			return Value{}, err
		}
		return HandleValue(h), nil
	default:
		return Value{}, ErrUnexpectedByte
	}
}

// --- Binary mode ---

func (t *Tokenizer) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(t.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrUnexpectedEOF
		}
		return nil, err
	}
	t.offset += int64(n)
	return buf, nil
}

func (t *Tokenizer) nextBinaryPair() (CodePair, bool, error) {
	codeOffset := t.offset
	first, err := t.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			t.done = true
			return CodePair{}, false, nil
		}
		return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: err}
	}
	t.offset++

	var code uint16
	if first != 0xFF {
		code = uint16(first)
	} else {
		b, err := t.readBytes(2)
		if err != nil {
			return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: err}
		}
		code = binary.LittleEndian.Uint16(b)
	}

	value, err := t.decodeBinaryValue(code)
	if err != nil {
		return CodePair{}, false, &CodePairError{Offset: codeOffset, Err: err}
	}
	if code == 999 {
		return t.nextBinaryPair()
	}
	return CodePair{Code: code, Value: value, Offset: codeOffset}, true, nil
}

func (t *Tokenizer) decodeBinaryValue(code uint16) (Value, error) {
	kind, err := ValueKindForCode(code)
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case KindString, KindHandle:
		s, err := t.readNullTerminatedString()
		if err != nil {
			return Value{}, err
		}
		if kind == KindHandle {
			h, err := ParseHandle(s)
			if err != nil {
				return Value{}, err
			}
			return HandleValue(h), nil
		}
		return StringValue(dfitext.UnescapeUnicode(s)), nil
	case KindDouble:
		b, err := t.readBytes(8)
		if err != nil {
			return Value{}, err
		}
		bits := binary.LittleEndian.Uint64(b)
		return DoubleValue(math.Float64frombits(bits)), nil
	case KindInt16:
		b, err := t.readBytes(2)
		if err != nil {
			return Value{}, err
		}
		return Int16Value(int16(binary.LittleEndian.Uint16(b))), nil
	case KindInt32:
		b, err := t.readBytes(4)
		if err != nil {
			return Value{}, err
		}
		return Int32Value(int32(binary.LittleEndian.Uint32(b))), nil
	case KindInt64:
		b, err := t.readBytes(8)
		if err != nil {
			return Value{}, err
		}
		return Int64Value(int64(binary.LittleEndian.Uint64(b))), nil
	case KindBool:
		b, err := t.readBytes(1)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b[0] != 0), nil
	case KindBinary:
		lenBuf, err := t.readBytes(1)
		if err != nil {
			return Value{}, err
		}
		n := int(lenBuf[0])
		data, err := t.readBytes(n)
		if err != nil {
			return Value{}, err
		}
		return BinaryValue(data), nil
	default:
		return Value{}, ErrUnexpectedByte
	}
}

func (t *Tokenizer) readNullTerminatedString() (string, error) {
	var sb strings.Builder
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", ErrUnexpectedEOF
			}
			return "", err
		}
		t.offset++
		if b == 0 {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}
