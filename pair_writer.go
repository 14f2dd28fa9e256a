// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/deltacad/dxf/internal/dfitext"
)

// CodePairWriter is the inverse of Tokenizer: it emits code pairs with
// correct on-wire formatting for either encoding. It flushes on Close;
// callers are expected to defer cleanup rather than rely on finalizers.
type CodePairWriter struct {
	w      *bufio.Writer
	binary bool
}

// NewASCIIWriter returns a writer that emits the CRLF-terminated,
// fixed-width-code ASCII encoding.
func NewASCIIWriter(w io.Writer) *CodePairWriter {
	return &CodePairWriter{w: bufio.NewWriter(w)}
}

// NewBinaryWriter returns a writer that emits the binary encoding,
// writing the 22-byte magic header immediately.
func NewBinaryWriter(w io.Writer) (*CodePairWriter, error) {
	cw := &CodePairWriter{w: bufio.NewWriter(w), binary: true}
	if _, err := cw.w.WriteString(binaryMagic); err != nil {
		return nil, err
	}
	return cw, nil
}

// WriteCodePair emits a single pair.
func (w *CodePairWriter) WriteCodePair(p CodePair) error {
	if w.binary {
		return w.writeBinaryPair(p)
	}
	return w.writeASCIIPair(p)
}

// Flush flushes any buffered output to the underlying writer. Callers
// must call Flush (or Close) after the last WriteCodePair.
func (w *CodePairWriter) Flush() error { return w.w.Flush() }

// Close flushes the writer. The Writer does not own the underlying
// io.Writer and never closes it.
func (w *CodePairWriter) Close() error { return w.Flush() }

func (w *CodePairWriter) writeASCIIPair(p CodePair) error {
	if err := w.writeASCIICodeLine(p.Code); err != nil {
		return err
	}
	s, err := formatASCIIValue(p.Code, p.Value)
	if err != nil {
		return err
	}
	_, err = w.w.WriteString(s + "\r\n")
	return err
}

func (w *CodePairWriter) writeASCIICodeLine(code uint16) error {
	var s string
	if code <= 999 {
		s = fmt.Sprintf("%3d", code)
	} else {
		s = strconv.Itoa(int(code))
	}
	_, err := w.w.WriteString(s + "\r\n")
	return err
}

func formatASCIIValue(code uint16, v Value) (string, error) {
	kind, err := ValueKindForCode(code)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindString:
		s, err := v.AsString()
		if err != nil {
			return "", err
		}
		return dfitext.EscapeUnicode(s), nil
	case KindDouble:
		f, err := v.AsF64()
		if err != nil {
			return "", err
		}
		return formatFloat(f), nil
	case KindInt16:
		i, err := v.AsInt16()
		if b, berr := v.AsBool(); berr == nil {
			// Bool fields stored on int16-band codes (280, 67, 60) go out as 0/1.
			i, err = 0, nil
			if b {
				i = 1
			}
		}
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%5d", i), nil
	case KindInt32:
		i, err := v.AsInt32()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(i), 10), nil
	case KindInt64:
		i, err := v.AsInt64()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(i, 10), nil
	case KindBool:
		b, err := v.AsBoolLoose()
		if err != nil {
			return "", err
		}
		if b {
			return "1", nil
		}
		return "0", nil
	case KindBinary:
		b, err := v.AsBinary()
		if err != nil {
			return "", err
		}
		return strings.ToUpper(hex.EncodeToString(b)), nil
	case KindHandle:
		h, err := v.AsHandle()
		if err != nil {
			return "", err
		}
		return h.String(), nil
	default:
		return "", ErrUnexpectedByte
	}
}

// formatFloat renders a float with full round-trip precision and no
// locale-dependent grouping, always including a decimal point so the
// value reads unambiguously as a real even when it has no fractional
// part (AutoCAD writes "10.0", never "10", for a double-kinded code).
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (w *CodePairWriter) writeBinaryPair(p CodePair) error {
	if p.Code < 255 {
		if err := w.w.WriteByte(byte(p.Code)); err != nil {
			return err
		}
	} else {
		if err := w.w.WriteByte(0xFF); err != nil {
			return err
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], p.Code)
		if _, err := w.w.Write(buf[:]); err != nil {
			return err
		}
	}
	return w.writeBinaryValue(p.Code, p.Value)
}

func (w *CodePairWriter) writeBinaryValue(code uint16, v Value) error {
	kind, err := ValueKindForCode(code)
	if err != nil {
		return err
	}
	switch kind {
	case KindString:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		_, err = w.w.WriteString(s)
		if err != nil {
			return err
		}
		return w.w.WriteByte(0)
	case KindHandle:
		h, err := v.AsHandle()
		if err != nil {
			return err
		}
		if _, err := w.w.WriteString(h.String()); err != nil {
			return err
		}
		return w.w.WriteByte(0)
	case KindDouble:
		f, err := v.AsF64()
		if err != nil {
			return err
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, err = w.w.Write(buf[:])
		return err
	case KindInt16:
		i, err := v.AsInt16()
		if b, berr := v.AsBool(); berr == nil {
			// Bool fields stored on int16-band codes (280, 67, 60) go out as 0/1.
			i, err = 0, nil
			if b {
				i = 1
			}
		}
		if err != nil {
			return err
		}
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(i))
		_, err = w.w.Write(buf[:])
		return err
	case KindInt32:
		i, err := v.AsInt32()
		if err != nil {
			return err
		}
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(i))
		_, err = w.w.Write(buf[:])
		return err
	case KindInt64:
		i, err := v.AsInt64()
		if err != nil {
			return err
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		_, err = w.w.Write(buf[:])
		return err
	case KindBool:
		b, err := v.AsBoolLoose()
		if err != nil {
			return err
		}
		if b {
			return w.w.WriteByte(1)
		}
		return w.w.WriteByte(0)
	case KindBinary:
		b, err := v.AsBinary()
		if err != nil {
			return err
		}
		if len(b) > 255 {
			return fmt.Errorf("dxf: binary chunk of %d bytes exceeds 255-byte binary-mode limit", len(b))
		}
		if err := w.w.WriteByte(byte(len(b))); err != nil {
			return err
		}
		_, err = w.w.Write(b)
		return err
	default:
		return ErrUnexpectedByte
	}
}
