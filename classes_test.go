// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestClassesSectionReadsAllFields(t *testing.T) {
	body := pairLines("0", "CLASS", "1", "DICTIONARYVAR", "2", "AcDbDictionaryVar",
		"3", "ObjectDBX Classes", "90", "0", "91", "3", "280", "1", "281", "0")
	doc := wrapDocument("AC1018", wrapSection("CLASSES", body))
	d := readDoc(t, doc)

	if len(d.Classes) != 1 {
		t.Fatalf("len(Classes) = %d, want 1", len(d.Classes))
	}
	c := d.Classes[0]
	if c.RecordName != "DICTIONARYVAR" || c.CppClassName != "AcDbDictionaryVar" {
		t.Errorf("Class = %+v, unexpected names", c)
	}
	if c.InstanceCount != 3 {
		t.Errorf("InstanceCount = %d, want 3", c.InstanceCount)
	}
	if !c.WasProxy || c.IsAnEntity {
		t.Errorf("WasProxy/IsAnEntity = %v/%v, want true/false", c.WasProxy, c.IsAnEntity)
	}
}

func TestWriteClassOmitsInstanceCountBeforeR2004(t *testing.T) {
	c := &Class{RecordName: "FOO", InstanceCount: 7}

	var pre bytes.Buffer
	w := NewASCIIWriter(&pre)
	if err := writeClass(w, c, VersionR2000); err != nil {
		t.Fatalf("writeClass at R2000: %v", err)
	}
	w.Flush()
	lines := strings.Split(pre.String(), "\r\n")
	for _, l := range lines {
		if strings.TrimSpace(l) == "91" {
			t.Errorf("writeClass at R2000 emitted code 91, want omitted: %s", pre.String())
		}
	}

	var post bytes.Buffer
	w2 := NewASCIIWriter(&post)
	if err := writeClass(w2, c, VersionR2004); err != nil {
		t.Fatalf("writeClass at R2004: %v", err)
	}
	w2.Flush()
	found := false
	for _, l := range strings.Split(post.String(), "\r\n") {
		if strings.TrimSpace(l) == "91" {
			found = true
		}
	}
	if !found {
		t.Errorf("writeClass at R2004 missing code 91: %s", post.String())
	}
}
