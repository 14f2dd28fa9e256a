// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// pairLines joins a flat list of "code\nvalue" strings with DXF's CRLF
// line endings, the shape every fixture below builds on.
func pairLines(lines ...string) string {
	return strings.Join(lines, "\r\n") + "\r\n"
}

func wrapSection(name, body string) string {
	return pairLines("0", "SECTION", "2", name) + body + pairLines("0", "ENDSEC")
}

func wrapDocument(acadver string, sections ...string) string {
	header := wrapSection("HEADER", pairLines("9", "$ACADVER", "1", acadver))
	var sb strings.Builder
	sb.WriteString(header)
	for _, s := range sections {
		sb.WriteString(s)
	}
	sb.WriteString(pairLines("0", "EOF"))
	return sb.String()
}

func readDoc(t *testing.T, doc string) *Drawing {
	t.Helper()
	d, err := ReadDrawing(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("ReadDrawing: %v", err)
	}
	return d
}

// 1. An empty OBJECTS section parses cleanly to zero objects.
func TestEmptyObjectsSection(t *testing.T) {
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", ""))
	d := readDoc(t, doc)
	if len(d.Objects) != 0 {
		t.Errorf("len(Objects) = %d, want 0", len(d.Objects))
	}
}

// 2. An unsupported object sandwiched between two supported ones is
// skipped without disturbing its neighbors.
func TestUnsupportedObjectBetweenSupportedNeighbors(t *testing.T) {
	body := pairLines("0", "DICTIONARYVAR", "5", "1A", "280", "0", "1", "first") +
		pairLines("0", "SOME_FUTURE_OBJECT", "5", "1B", "1", "opaque payload", "99", "1") +
		pairLines("0", "IMAGEDEF", "5", "1C", "90", "0", "1", "photo.jpg")
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)

	if len(d.Objects) != 2 {
		t.Fatalf("len(Objects) = %d, want 2", len(d.Objects))
	}
	dv, ok := d.Objects[0].Specific.(*DictionaryVariable)
	if !ok {
		t.Fatalf("Objects[0] = %T, want *DictionaryVariable", d.Objects[0].Specific)
	}
	if dv.Value != "first" {
		t.Errorf("DictionaryVariable.Value = %q, want %q", dv.Value, "first")
	}
	img, ok := d.Objects[1].Specific.(*ImageDefinition)
	if !ok {
		t.Fatalf("Objects[1] = %T, want *ImageDefinition", d.Objects[1].Specific)
	}
	if img.FileName != "photo.jpg" {
		t.Errorf("ImageDefinition.FileName = %q, want %q", img.FileName, "photo.jpg")
	}
}

// 3. Handles parse from hex, independent of case.
func TestHandleParsedFromHexInObject(t *testing.T) {
	body := pairLines("0", "DICTIONARYVAR", "5", "2a1", "280", "0", "1", "v")
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)
	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	if got, want := d.Objects[0].Common.Handle, Handle(0x2A1); got != want {
		t.Errorf("Handle = %v, want %v", got, want)
	}
}

// 4. LAYER_FILTER preserves the read order of its repeated layer names.
func TestLayerFilterPreservesOrder(t *testing.T) {
	body := pairLines("0", "LAYER_FILTER", "5", "30", "8", "Gamma", "8", "Alpha", "8", "Beta")
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)
	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	lf, ok := d.Objects[0].Specific.(*LayerFilter)
	if !ok {
		t.Fatalf("Objects[0] = %T, want *LayerFilter", d.Objects[0].Specific)
	}
	want := []string{"Gamma", "Alpha", "Beta"}
	if len(lf.LayerNames) != len(want) {
		t.Fatalf("LayerNames = %v, want %v", lf.LayerNames, want)
	}
	for i := range want {
		if lf.LayerNames[i] != want[i] {
			t.Errorf("LayerNames[%d] = %q, want %q", i, lf.LayerNames[i], want[i])
		}
	}

	var out bytes.Buffer
	w := NewASCIIWriter(&out)
	if err := writeObject(w, d.Objects[0], VersionR2000); err != nil {
		t.Fatalf("writeObject: %v", err)
	}
	w.Flush()
	if strings.Index(out.String(), "Gamma") > strings.Index(out.String(), "Alpha") ||
		strings.Index(out.String(), "Alpha") > strings.Index(out.String(), "Beta") {
		t.Errorf("written LAYER_FILTER did not preserve order: %s", out.String())
	}
}

// 5. VBA_PROJECT's hex-chunked binary data concatenates on read.
func TestVbaProjectConcatenatesHexChunks(t *testing.T) {
	body := pairLines("0", "VBA_PROJECT", "5", "40", "90", "6",
		"310", "DEADBE", "310", "EF0102")
	doc := wrapDocument("AC1015", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)
	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	vba, ok := d.Objects[0].Specific.(*VbaProject)
	if !ok {
		t.Fatalf("Objects[0] = %T, want *VbaProject", d.Objects[0].Specific)
	}
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}
	if !bytes.Equal(vba.Data, want) {
		t.Errorf("Data = %x, want %x", vba.Data, want)
	}

	var out bytes.Buffer
	w := NewASCIIWriter(&out)
	if err := writeObject(w, d.Objects[0], VersionR2000); err != nil {
		t.Fatalf("writeObject: %v", err)
	}
	w.Flush()
	d2 := readDoc(t, wrapDocument("AC1015", wrapSection("OBJECTS", out.String())))
	vba2 := d2.Objects[0].Specific.(*VbaProject)
	if !bytes.Equal(vba2.Data, want) {
		t.Errorf("round-tripped Data = %x, want %x", vba2.Data, want)
	}
}

// 6. LAYOUT fields are only written at R2000+; writing at R14 drops the
// whole record.
func TestLayoutOnlyWritesAtR2000(t *testing.T) {
	layout := &Layout{PlotSettingsName: "Plot", LayoutName: "Layout1"}
	obj := NewObject(layout)
	obj.Common.Handle = Handle(0x50)

	var r14 bytes.Buffer
	w14 := NewASCIIWriter(&r14)
	if err := writeObject(w14, obj, VersionR14); err != nil {
		t.Fatalf("writeObject at R14: %v", err)
	}
	w14.Flush()
	if r14.Len() != 0 {
		t.Errorf("writeObject at R14 wrote %d bytes, want 0", r14.Len())
	}

	var r2000 bytes.Buffer
	w2000 := NewASCIIWriter(&r2000)
	if err := writeObject(w2000, obj, VersionR2000); err != nil {
		t.Fatalf("writeObject at R2000: %v", err)
	}
	w2000.Flush()
	if !strings.Contains(r2000.String(), "Layout1") {
		t.Errorf("writeObject at R2000 missing LayoutName: %s", r2000.String())
	}
}

// 6b. Setting two Layout flag bits combines them into a single packed
// (70, ...) value, with TabOrder written independently right after it.
func TestLayoutFlagBitsCombineIntoSingleCode70Pair(t *testing.T) {
	cases := []struct {
		name      string
		psLtScale bool
		limCheck  bool
		wantFlags int16
	}{
		{"neither", false, false, 0},
		{"psLtScaleOnly", true, false, 1},
		{"limCheckOnly", false, true, 2},
		{"both", true, true, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := &Layout{}
			if got := layout.Flags; got != 0 {
				t.Fatalf("new Layout.Flags = %d, want 0", got)
			}
			layout.SetIsPsLtScale(tc.psLtScale)
			layout.SetIsLimCheck(tc.limCheck)
			layout.TabOrder = -54

			if got := layout.Flags; got != tc.wantFlags {
				t.Errorf("Flags = %d, want %d", got, tc.wantFlags)
			}
			if got := layout.IsPsLtScale(); got != tc.psLtScale {
				t.Errorf("IsPsLtScale() = %v, want %v", got, tc.psLtScale)
			}
			if got := layout.IsLimCheck(); got != tc.limCheck {
				t.Errorf("IsLimCheck() = %v, want %v", got, tc.limCheck)
			}

			obj := NewObject(layout)
			obj.Common.Handle = Handle(0x51)
			var buf bytes.Buffer
			w := NewASCIIWriter(&buf)
			if err := writeObject(w, obj, VersionR2000); err != nil {
				t.Fatalf("writeObject: %v", err)
			}
			w.Flush()

			wantFlagsPair := pairLines(" 70", fmt.Sprintf("%5d", tc.wantFlags))
			if !strings.Contains(buf.String(), wantFlagsPair) {
				t.Errorf("writeObject output missing flags pair %q: %s", wantFlagsPair, buf.String())
			}
			wantTabOrderPair := pairLines(" 71", fmt.Sprintf("%5d", int16(-54)))
			if !strings.Contains(buf.String(), wantTabOrderPair) {
				t.Errorf("writeObject output missing tab order pair %q: %s", wantTabOrderPair, buf.String())
			}
		})
	}
}

// 7. AcadProxyObject is only emitted for R2000+ drawings.
func TestAcadProxyObjectVersionGatedEmission(t *testing.T) {
	obj := NewObject(&AcadProxyObject{OriginalClassID: 7})
	obj.Common.Handle = Handle(0x60)

	var r14 bytes.Buffer
	w14 := NewASCIIWriter(&r14)
	if err := writeObject(w14, obj, VersionR14); err != nil {
		t.Fatalf("writeObject at R14: %v", err)
	}
	w14.Flush()
	if r14.Len() != 0 {
		t.Errorf("writeObject at R14 wrote %d bytes, want 0 (pre-R2000 gating)", r14.Len())
	}

	var r2000 bytes.Buffer
	w2000 := NewASCIIWriter(&r2000)
	if err := writeObject(w2000, obj, VersionR2000); err != nil {
		t.Fatalf("writeObject at R2000: %v", err)
	}
	w2000.Flush()
	if !strings.Contains(r2000.String(), "ACAD_PROXY_OBJECT") {
		t.Errorf("writeObject at R2000 missing ACAD_PROXY_OBJECT: %s", r2000.String())
	}
}

// 8. Extension data and x-data round-trip through a record.
func TestExtensionDataAndXDataRoundTrip(t *testing.T) {
	body := pairLines(
		"0", "DICTIONARYVAR", "5", "70",
		"102", "{MY_APP", "1", "note", "102", "}",
		"280", "0", "1", "v",
		"1001", "MY_APP", "1000", "payload", "1070", "5",
	)
	doc := wrapDocument("AC1018", wrapSection("OBJECTS", body))
	d := readDoc(t, doc)
	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	common := d.Objects[0].Common
	if len(common.ExtensionData) != 1 || common.ExtensionData[0].ApplicationName != "MY_APP" {
		t.Fatalf("ExtensionData = %+v, want one MY_APP group", common.ExtensionData)
	}
	if len(common.XData) != 1 || common.XData[0].ApplicationName != "MY_APP" {
		t.Fatalf("XData = %+v, want one MY_APP entry", common.XData)
	}

	var out bytes.Buffer
	w := NewASCIIWriter(&out)
	if err := writeObject(w, d.Objects[0], VersionR2000); err != nil {
		t.Fatalf("writeObject: %v", err)
	}
	w.Flush()
	d2 := readDoc(t, wrapDocument("AC1018", wrapSection("OBJECTS", out.String())))
	c2 := d2.Objects[0].Common
	if len(c2.ExtensionData) != 1 || len(c2.XData) != 1 {
		t.Errorf("round-tripped common = %+v, want ExtensionData/XData preserved", c2)
	}
}

func TestDrawingWriteReadRoundTripsVersion(t *testing.T) {
	d := NewDrawing()
	d.Version = VersionR2000
	d.Entities = append(d.Entities, NewEntity(&Line{Start: Point{X: 0, Y: 0, Z: 0}, End: Point{X: 1, Y: 1, Z: 0}}))

	var buf bytes.Buffer
	if err := d.Write(&buf, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	d2, err := ReadDrawing(&buf, nil)
	if err != nil {
		t.Fatalf("ReadDrawing: %v", err)
	}
	if d2.Version != VersionR2000 {
		t.Errorf("round-tripped Version = %v, want %v", d2.Version, VersionR2000)
	}
	if len(d2.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(d2.Entities))
	}
	if _, ok := d2.Entities[0].Specific.(*Line); !ok {
		t.Errorf("Entities[0] = %T, want *Line", d2.Entities[0].Specific)
	}
}
