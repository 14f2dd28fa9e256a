// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "testing"

func TestRecordCommonReadsHandleOwnerAndXDictionary(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator(nil)

	cases := []struct {
		pair CodePair
		want bool
	}{
		{NewHandlePair(5, Handle(0x1A)), true},
		{NewHandlePair(330, Handle(0x1B)), true},
		{NewHandlePair(360, Handle(0x1C)), true},
		{NewStringPair(100, "AcDbEntity"), true},
		{NewStringPair(8, "0"), false},
	}
	for _, tc := range cases {
		consumed, err := c.readCommonPair(it, tc.pair)
		if err != nil {
			t.Fatalf("readCommonPair(%v): %v", tc.pair, err)
		}
		if consumed != tc.want {
			t.Errorf("readCommonPair(code %d) consumed = %v, want %v", tc.pair.Code, consumed, tc.want)
		}
	}
	if c.Handle != Handle(0x1A) || c.OwnerHandle != Handle(0x1B) || c.ExtensionDictionary != Handle(0x1C) {
		t.Errorf("RecordCommon = %+v, unexpected", c)
	}
}

func TestRecordCommonReadsReactorsGroup(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator([]CodePair{
		NewHandlePair(330, Handle(0x10)),
		NewHandlePair(330, Handle(0x20)),
		NewStringPair(102, "}"),
		NewStringPair(0, "LINE"),
	})
	opener := NewStringPair(102, "{ACAD_REACTORS")
	consumed, err := c.readCommonPair(it, opener)
	if err != nil || !consumed {
		t.Fatalf("readCommonPair(reactors opener) = %v, %v", consumed, err)
	}
	if len(c.ReactorHandles) != 2 || c.ReactorHandles[1] != Handle(0x20) {
		t.Errorf("ReactorHandles = %v, unexpected", c.ReactorHandles)
	}
	p, ok, err := it.Next()
	if err != nil || !ok || p.Code != 0 {
		t.Fatalf("Next after reactors group = %+v, %v, %v, want (0, LINE)", p, ok, err)
	}
}

func TestRecordCommonReadsXDictionaryGroup(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator([]CodePair{
		NewHandlePair(360, Handle(0x33)),
		NewStringPair(102, "}"),
	})
	opener := NewStringPair(102, "{ACAD_XDICTIONARY")
	consumed, err := c.readCommonPair(it, opener)
	if err != nil || !consumed {
		t.Fatalf("readCommonPair(xdict opener) = %v, %v", consumed, err)
	}
	if c.ExtensionDictionary != Handle(0x33) {
		t.Errorf("ExtensionDictionary = %v, want 0x33", c.ExtensionDictionary)
	}
}

func TestRecordCommonReadsExtensionDataGroup(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator([]CodePair{
		NewStringPair(1000, "hello"),
		NewStringPair(102, "}"),
	})
	opener := NewStringPair(102, "{MYAPP")
	consumed, err := c.readCommonPair(it, opener)
	if err != nil || !consumed {
		t.Fatalf("readCommonPair(extdata opener) = %v, %v", consumed, err)
	}
	if len(c.ExtensionData) != 1 || c.ExtensionData[0].ApplicationName != "MYAPP" {
		t.Fatalf("ExtensionData = %+v, unexpected", c.ExtensionData)
	}
}

func TestRecordCommonAccumulatesXData(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator([]CodePair{
		NewStringPair(1000, "value1"),
		NewInt32Pair(1071, 7),
		NewStringPair(0, "LINE"),
	})
	opener := NewStringPair(1001, "MYAPP")
	consumed, err := c.readCommonPair(it, opener)
	if err != nil || !consumed {
		t.Fatalf("readCommonPair(xdata opener) = %v, %v", consumed, err)
	}
	if len(c.XData) != 1 || c.XData[0].ApplicationName != "MYAPP" || len(c.XData[0].Items) != 2 {
		t.Fatalf("XData = %+v, unexpected", c.XData)
	}
	p, ok, err := it.Next()
	if err != nil || !ok || p.Code != 0 {
		t.Fatalf("Next after xdata = %+v, %v, %v, want (0, LINE)", p, ok, err)
	}
}

func TestRecordCommonIgnoresStrayXDataCode(t *testing.T) {
	c := &RecordCommon{}
	it := newIterator(nil)
	consumed, err := c.readCommonPair(it, NewStringPair(1000, "orphaned"))
	if err != nil || !consumed {
		t.Fatalf("readCommonPair(stray xdata) = %v, %v, want consumed with no error", consumed, err)
	}
	if len(c.XData) != 0 {
		t.Errorf("XData = %v, want empty for a stray item with no 1001 opener", c.XData)
	}
}

func TestReadRecordBodyStopsAtSentinelAndForwardsUnknownCodes(t *testing.T) {
	c := &EntityCommon{}
	var seen []uint16
	it := newIterator([]CodePair{
		NewHandlePair(5, Handle(0x1)),
		NewStringPair(8, "Layer1"),
		NewDoublePair(10, 5.0),
		NewStringPair(0, "CIRCLE"),
	})
	err := readRecordBody(it, c, VersionR2013, func(pair CodePair, version AcadVersion) (ApplyResult, error) {
		seen = append(seen, pair.Code)
		return Applied, nil
	})
	if err != nil {
		t.Fatalf("readRecordBody: %v", err)
	}
	if c.Handle != Handle(0x1) || c.Layer != "Layer1" {
		t.Errorf("EntityCommon = %+v, unexpected", c)
	}
	if len(seen) != 1 || seen[0] != 10 {
		t.Errorf("forwarded codes = %v, want [10]", seen)
	}
	p, ok, err := it.Next()
	if err != nil || !ok || p.Code != 0 {
		t.Fatalf("Next after readRecordBody = %+v, %v, %v, want sentinel pushed back", p, ok, err)
	}
}
