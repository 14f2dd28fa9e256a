// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"testing"
)

func newIterator(pairs []CodePair) *PairIterator {
	return NewPairIterator(NewSlicePairSource(pairs))
}

func TestSkipUnknownRecordStopsBeforeNextSentinel(t *testing.T) {
	it := newIterator([]CodePair{
		NewStringPair(1, "junk"),
		NewInt16Pair(70, 3),
		NewStringPair(0, "LINE"),
	})
	if err := skipUnknownRecord(it); err != nil {
		t.Fatalf("skipUnknownRecord: %v", err)
	}
	p, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next after skip: %v, %v, %v", p, ok, err)
	}
	s, _ := p.Value.AsString()
	if p.Code != 0 || s != "LINE" {
		t.Errorf("Next after skip = %+v, want (0, LINE)", p)
	}
}

func TestSkipUnknownRecordReachesEOF(t *testing.T) {
	it := newIterator([]CodePair{NewStringPair(1, "junk")})
	if err := skipUnknownRecord(it); err != nil {
		t.Fatalf("skipUnknownRecord: %v", err)
	}
	_, ok, err := it.Next()
	if err != nil || ok {
		t.Errorf("Next after skip to EOF = ok:%v err:%v, want ok:false", ok, err)
	}
}

func TestSkipSectionBodyConsumesThroughEndsec(t *testing.T) {
	it := newIterator([]CodePair{
		NewStringPair(1, "junk"),
		NewStringPair(0, "SOMETHING"),
		NewStringPair(0, "ENDSEC"),
		NewStringPair(0, "SECTION"),
	})
	if err := skipSectionBody(it); err != nil {
		t.Fatalf("skipSectionBody: %v", err)
	}
	p, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next after skipSectionBody: %v, %v, %v", p, ok, err)
	}
	s, _ := p.Value.AsString()
	if s != "SECTION" {
		t.Errorf("Next after skipSectionBody = %q, want SECTION", s)
	}
}

func TestReadSectionDispatchesUnknownSectionToSkipSectionBody(t *testing.T) {
	it := newIterator([]CodePair{
		NewStringPair(1, "data"),
		NewStringPair(0, "ENDSEC"),
	})
	version := VersionR2013
	s := &Sections{}
	if err := readSection(it, "ACDSDATA", &version, s); err != nil {
		t.Fatalf("readSection(unknown): %v", err)
	}
	if s.Header != nil || len(s.Classes) != 0 {
		t.Errorf("unknown section mutated Sections: %+v", s)
	}
}

func TestReadSectionClassesDispatch(t *testing.T) {
	it := newIterator([]CodePair{
		NewStringPair(0, "CLASS"),
		NewStringPair(1, "FOO"),
		NewStringPair(2, "AcDbFoo"),
		NewStringPair(3, "App"),
		NewInt32Pair(90, 0),
		NewInt32Pair(91, 1),
		NewInt16Pair(280, 0),
		NewInt16Pair(281, 0),
		NewStringPair(0, "ENDSEC"),
	})
	version := VersionR2013
	s := &Sections{}
	if err := readSection(it, "CLASSES", &version, s); err != nil {
		t.Fatalf("readSection(CLASSES): %v", err)
	}
	if len(s.Classes) != 1 || s.Classes[0].RecordName != "FOO" {
		t.Fatalf("Classes = %+v, unexpected", s.Classes)
	}
}

func TestThumbnailSectionRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB, 0xCD}, 200)

	var buf bytes.Buffer
	w := NewASCIIWriter(&buf)
	if err := writeThumbnailSection(w, data); err != nil {
		t.Fatalf("writeThumbnailSection: %v", err)
	}
	w.Flush()

	tok, err := NewTokenizer(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("NewTokenizer: %v", err)
	}
	it := NewPairIterator(tok)
	// Consume the (0, SECTION) and (2, THUMBNAILIMAGE) pairs readSection's
	// caller would normally have already stripped.
	if _, _, err := it.Next(); err != nil {
		t.Fatalf("Next SECTION: %v", err)
	}
	if _, _, err := it.Next(); err != nil {
		t.Fatalf("Next THUMBNAILIMAGE: %v", err)
	}
	s := &Sections{}
	if err := readThumbnailSection(it, s); err != nil {
		t.Fatalf("readThumbnailSection: %v", err)
	}
	if !bytes.Equal(s.Thumbnail, data) {
		t.Errorf("Thumbnail round-trip mismatch: got %d bytes, want %d", len(s.Thumbnail), len(data))
	}
}

func TestReadTablesSectionHandlesEntrylessTable(t *testing.T) {
	it := newIterator([]CodePair{
		NewStringPair(0, "TABLE"),
		NewStringPair(2, "UCS"),
		NewHandlePair(5, Handle(1)),
		NewInt16Pair(70, 0),
		NewStringPair(0, "ENDTAB"),
		NewStringPair(0, "ENDSEC"),
	})
	s := &Sections{}
	if err := readTablesSection(it, VersionR2013, s); err != nil {
		t.Fatalf("readTablesSection: %v", err)
	}
	if table, ok := s.Tables["UCS"]; !ok || len(table.Entries) != 0 {
		t.Errorf("Tables[UCS] = %+v, %v, want present with 0 entries", table, ok)
	}
}
