// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestTokenizerASCIISniffsNonBinary(t *testing.T) {
	src := "  0\r\nSECTION\r\n"
	tok, err := NewTokenizer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if tok.binary {
		t.Fatal("tokenizer sniffed an ASCII stream as binary")
	}
	p, ok, err := tok.NextPair()
	if err != nil || !ok {
		t.Fatalf("NextPair() = (%v, %v, %v)", p, ok, err)
	}
	if p.Code != 0 {
		t.Errorf("Code = %d, want 0", p.Code)
	}
	s, _ := p.Value.AsString()
	if s != "SECTION" {
		t.Errorf("Value = %q, want SECTION", s)
	}
}

func TestTokenizerSniffsBinaryMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(binaryMagic)
	buf.WriteByte(0) // code 0
	buf.WriteString("SECTION")
	buf.WriteByte(0)

	tok, err := NewTokenizer(&buf)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if !tok.binary {
		t.Fatal("tokenizer failed to sniff binary magic")
	}
	p, ok, err := tok.NextPair()
	if err != nil || !ok {
		t.Fatalf("NextPair() = (%v, %v, %v)", p, ok, err)
	}
	s, _ := p.Value.AsString()
	if p.Code != 0 || s != "SECTION" {
		t.Errorf("got (%d, %q), want (0, SECTION)", p.Code, s)
	}
}

func TestTokenizerASCIICommentPairsAreDropped(t *testing.T) {
	src := "999\r\na comment\r\n0\r\nEOF\r\n"
	tok, err := NewTokenizer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	p, ok, err := tok.NextPair()
	if err != nil || !ok {
		t.Fatalf("NextPair() = (%v, %v, %v)", p, ok, err)
	}
	if p.Code != 0 {
		t.Errorf("Code = %d, want 0 (comment should have been skipped)", p.Code)
	}
}

func TestTokenizerASCIIMalformedCodeErrors(t *testing.T) {
	src := "not-a-number\r\nSECTION\r\n"
	tok, err := NewTokenizer(strings.NewReader(src))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if _, _, err := tok.NextPair(); err == nil {
		t.Error("expected a malformed-code error, got nil")
	}
}

func TestASCIIWriterRoundTripsAllKinds(t *testing.T) {
	pairs := []CodePair{
		NewStringPair(0, "LINE"),
		NewDoublePair(10, 1.5),
		NewInt16Pair(62, -3),
		NewInt32Pair(90, 123456),
		NewInt64Pair(160, 9999999999),
		NewBoolPair(290, true),
		NewBinaryPair(310, []byte{0xDE, 0xAD, 0xBE, 0xEF}),
		NewHandlePair(330, Handle(0x2A1)),
	}

	var buf bytes.Buffer
	w := NewASCIIWriter(&buf)
	for _, p := range pairs {
		if err := w.WriteCodePair(p); err != nil {
			t.Fatalf("WriteCodePair(%v): %v", p, err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	tok, err := NewTokenizer(&buf)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	for i, want := range pairs {
		got, ok, err := tok.NextPair()
		if err != nil || !ok {
			t.Fatalf("pair %d: NextPair() = (%v, %v, %v)", i, got, ok, err)
		}
		if got.Code != want.Code || got.Value.Kind != want.Value.Kind {
			t.Errorf("pair %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestBinaryWriterRoundTripsAllKinds(t *testing.T) {
	pairs := []CodePair{
		NewStringPair(0, "CIRCLE"),
		NewDoublePair(40, 2.5),
		NewInt16Pair(70, 1),
		NewInt32Pair(90, 42),
		NewBoolPair(290, false),
		NewBinaryPair(310, []byte{1, 2, 3}),
		NewHandlePair(5, Handle(0xFF)),
	}

	var buf bytes.Buffer
	w, err := NewBinaryWriter(&buf)
	if err != nil {
		t.Fatalf("NewBinaryWriter: %v", err)
	}
	for _, p := range pairs {
		if err := w.WriteCodePair(p); err != nil {
			t.Fatalf("WriteCodePair(%v): %v", p, err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	tok, err := NewTokenizer(&buf)
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	if !tok.binary {
		t.Fatal("round-tripped stream was not sniffed as binary")
	}
	for i, want := range pairs {
		got, ok, err := tok.NextPair()
		if err != nil || !ok {
			t.Fatalf("pair %d: NextPair() = (%v, %v, %v)", i, got, ok, err)
		}
		if got.Code != want.Code {
			t.Errorf("pair %d Code = %d, want %d", i, got.Code, want.Code)
		}
	}
}

func TestBinaryWriterRejectsOversizeChunk(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewBinaryWriter(&buf)
	if err != nil {
		t.Fatalf("NewBinaryWriter: %v", err)
	}
	big := make([]byte, 256)
	if err := w.WriteCodePair(NewBinaryPair(310, big)); err == nil {
		t.Error("expected an error writing a 256-byte binary chunk, got nil")
	}
}

func TestFormatFloatAlwaysHasDecimalPoint(t *testing.T) {
	if got := formatFloat(10); got != "10.0" {
		t.Errorf("formatFloat(10) = %q, want %q", got, "10.0")
	}
	if got := formatFloat(1.5); got != "1.5" {
		t.Errorf("formatFloat(1.5) = %q, want %q", got, "1.5")
	}
}
