// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"testing"
)

func TestDictionaryReadWriteRoundTrip(t *testing.T) {
	body := pairLines("0", "DICTIONARY", "5", "C", "280", "1", "281", "1",
		"3", "NamedObject1", "350", "D1",
		"3", "NamedObject2", "350", "D2")
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)

	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	dict, ok := d.Objects[0].Specific.(*Dictionary)
	if !ok {
		t.Fatalf("Specific = %T, want *Dictionary", d.Objects[0].Specific)
	}
	if len(dict.Keys) != 2 || dict.Keys[0] != "NamedObject1" {
		t.Fatalf("Keys = %v, unexpected", dict.Keys)
	}
	if len(dict.ValueHandles) != 2 || dict.ValueHandles[1] != Handle(0xD2) {
		t.Fatalf("ValueHandles = %v, unexpected", dict.ValueHandles)
	}

	var out bytes.Buffer
	w := NewASCIIWriter(&out)
	if err := writeObject(w, d.Objects[0], VersionR2000); err != nil {
		t.Fatalf("writeObject: %v", err)
	}
	w.Flush()

	d2 := readDoc(t, wrapDocument("AC1015", wrapSection("OBJECTS", out.String())))
	dict2 := d2.Objects[0].Specific.(*Dictionary)
	if len(dict2.Keys) != 2 || len(dict2.ValueHandles) != 2 {
		t.Fatalf("round-tripped Dictionary = %+v", dict2)
	}
}

func TestImageDefinitionReadsPointFields(t *testing.T) {
	body := pairLines("0", "IMAGEDEF", "5", "50", "90", "0", "1", "photo.png",
		"10", "640.0", "20", "480.0", "11", "1.0", "21", "1.0",
		"280", "1", "281", "5")
	doc := wrapDocument("AC1018", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)

	img := d.Objects[0].Specific.(*ImageDefinition)
	if img.ImageSize.X != 640.0 || img.ImageSize.Y != 480.0 {
		t.Errorf("ImageSize = %+v, unexpected", img.ImageSize)
	}
	if !img.IsLoaded || img.ResolutionUnits != 5 {
		t.Errorf("IsLoaded/ResolutionUnits = %v/%v, unexpected", img.IsLoaded, img.ResolutionUnits)
	}
}
