// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "encoding/xml"

// SchemaDocument is the root element of a spec/*.xml schema file
// (EntitiesSpec.xml, ObjectsSpec.xml, TableEntriesSpec.xml,
// HeaderVariablesSpec.xml, ClassesSpec.xml): an unordered list of
// <Entity>/<Object>/<TableEntry>/<Variable>/<Class> records, each carrying
// a flat list of <Field> children. This mirrors the shape
// test_helper_generator.rs walks via xmltree::Element, ported to
// encoding/xml's struct-tag decoding instead of a generic element tree.
type SchemaDocument struct {
	XMLName xml.Name      `xml:"Items"`
	Records []SchemaRecord `xml:",any"`
}

// SchemaRecord is one <Entity>/<Object>/<TableEntry>/<Class>/<Variable>
// element. XMLName.Local distinguishes the element kind; base records
// named after their own element kind ("Entity", "Object", etc., with no
// TypeString) are abstract base definitions and are skipped by
// ParseSchemaDocument, matching test_helper_generator.rs's
// `name(c) != "Entity"` filter.
type SchemaRecord struct {
	XMLName         xml.Name      `xml:""`
	Name            string        `xml:"Name,attr"`
	TypeString      string        `xml:"TypeString,attr"`
	SubclassMarker  string        `xml:"SubclassMarker,attr"`
	MinVersion      string        `xml:"MinVersion,attr"`
	MaxVersion      string        `xml:"MaxVersion,attr"`
	BaseClass       string        `xml:"BaseClass,attr"`
	Fields          []SchemaField `xml:"Field"`
}

// SchemaField is one <Field> element describing a single record field's
// wire code, Go type, and version gating.
type SchemaField struct {
	Name                  string `xml:"Name,attr"`
	Code                  int    `xml:"Code,attr"`
	Type                  string `xml:"Type,attr"`
	MinVersion            string `xml:"MinVersion,attr"`
	MaxVersion            string `xml:"MaxVersion,attr"`
	DisableWritingDefault bool   `xml:"DisableWritingDefault,attr"`
	WriteCondition        string `xml:"WriteCondition,attr"`
}

// ParseSchemaDocument decodes one spec/*.xml document, skipping abstract
// base elements (those with no Name attribute, or named after their own
// element kind with no TypeString), so the returned slice only holds
// concrete, generatable record types.
func ParseSchemaDocument(data []byte) (*SchemaDocument, error) {
	var doc SchemaDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	concrete := doc.Records[:0]
	for _, r := range doc.Records {
		if r.Name == "" || (r.Name == r.XMLName.Local && r.TypeString == "") {
			continue
		}
		concrete = append(concrete, r)
	}
	doc.Records = concrete
	return &doc, nil
}

// TypeStrings splits a record's comma-separated TypeString attribute
// (e.g. "LWPOLYLINE" or "ARC_DIMENSION,ROTATED_DIMENSION") into its
// individual on-wire names.
func (r SchemaRecord) TypeStrings() []string {
	var out []string
	start := 0
	for i := 0; i <= len(r.TypeString); i++ {
		if i == len(r.TypeString) || r.TypeString[i] == ',' {
			if i > start {
				out = append(out, r.TypeString[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// ResolveVersion maps an XML MinVersion/MaxVersion attribute string (an
// AcadVersion.Name(), e.g. "R2000") to an AcadVersion, falling back to def
// when the attribute is empty or unrecognized.
func ResolveVersion(s string, def AcadVersion) AcadVersion {
	if s == "" {
		return def
	}
	for v := VersionMin; v <= VersionMax; v++ {
		if v.Name() == s {
			return v
		}
	}
	return def
}
