// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

// Package dfitext decodes and encodes the string conventions DXF uses to
// carry non-ASCII text through an otherwise 7-bit-clean wire format:
// \U+XXXX escapes for individual code points, and raw UTF-16 for the
// handful of binary-mode fields that still need wide-character decoding.
// Grounded on saferwall/pe's helper.go DecodeUTF16String.
package dfitext

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// UnescapeUnicode replaces \U+XXXX escape sequences (as emitted by
// AutoCAD for any character outside the drawing's codepage) with the
// corresponding rune. Sequences that are not valid 4-hex-digit escapes
// are left untouched.
func UnescapeUnicode(s string) string {
	if !strings.Contains(s, `\U+`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], `\U+`) && i+7 <= len(s) {
			hex := s[i+3 : i+7]
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				sb.WriteRune(rune(v))
				i += 7
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

// EscapeUnicode is the inverse of UnescapeUnicode: every rune outside the
// printable ASCII range is rewritten as a \U+XXXX escape so the result is
// safe to emit on a 7-bit ASCII DXF wire.
func EscapeUnicode(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r > 0x7e || r < 0x20 {
			fmt.Fprintf(&sb, `\U+%04X`, r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// DecodeUTF16LE decodes a little-endian UTF-16 byte slice (as found in a
// handful of binary-mode wide-string fields) into a Go string.
func DecodeUTF16LE(b []byte) (string, error) {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeUTF16LE encodes s as little-endian UTF-16 bytes.
func EncodeUTF16LE(s string) ([]byte, error) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	return encoder.Bytes([]byte(s))
}
