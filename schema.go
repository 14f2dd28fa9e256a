// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// ApplyResult is the outcome of feeding one CodePair to a record's
// readPair method.
type ApplyResult int

const (
	// Applied means the pair was consumed and a field was updated.
	Applied ApplyResult = iota
	// NotApplicable means the code is not recognized for this record;
	// the caller silently ignores the pair and moves on, preserving
	// forward compatibility with newer AutoCAD dialects.
	NotApplicable
	// VersionGated means the code is recognized but the field it feeds
	// is out of range for the drawing's version; the pair is silently
	// dropped.
	VersionGated
)

// Multiplicity describes how a field accumulates values read off the
// wire.
type Multiplicity int

const (
	// MultiplicityScalar fields are overwritten on each Applied read.
	MultiplicityScalar Multiplicity = iota
	// MultiplicityVector fields append each Applied read.
	MultiplicityVector
	// MultiplicityFlagBit fields set/clear a single bit of an underlying
	// integer field.
	MultiplicityFlagBit
	// MultiplicityBitfield fields are replaced wholesale (the value IS a
	// bitfield, as opposed to one bit of a larger field).
	MultiplicityBitfield
)

// FieldSpec is the schema metadata for a single field of a record type,
// as declared by a <Field> element in one of the spec/*.xml documents.
// Hand-written record codecs (generated_*.go) inline the same
// information into literal Go code for the read/write hot paths; this
// struct exists for introspection (DescribeType) and is what dxfgen
// would consume to emit those hot paths.
type FieldSpec struct {
	Name                  string
	Code                  uint16
	MinVersion            AcadVersion
	MaxVersion            AcadVersion
	Multiplicity          Multiplicity
	FlagBit               uint
	WriteOrderIndex       int
	DisableWritingDefault bool
	HasWriteCondition     bool
}

// RecordSpec is the schema entry for one record type: an entity, object,
// table entry, class, or header variable.
type RecordSpec struct {
	TypeName        string
	TypeStrings     []string
	SubclassMarkers []string
	MinVersion      AcadVersion
	MaxVersion      AcadVersion
	RequiresHandle  bool
	IsProxy         bool
	Fields          []FieldSpec
}

// inVersionRange reports whether v falls within [min, max].
func inVersionRange(v, min, max AcadVersion) bool {
	return v >= min && v <= max
}

// entitySpecs, objectSpecs and tableEntrySpecs are populated by the
// generated_*.go files' init() functions, keyed by TypeName (the Go type
// name, e.g. "Line", not the on-wire string). They back DescribeType, and
// writeEntity/writeObject/writeTableEntry consult their MinVersion and
// MaxVersion to drop a record that is out of range for the target version.
var (
	entitySpecs     = map[string]*RecordSpec{}
	objectSpecs     = map[string]*RecordSpec{}
	tableEntrySpecs = map[string]*RecordSpec{}
)

// DescribeType returns the schema entry for a record's Go type name
// (e.g. "Line", "ImageDefinition", "Layer"), searching entities, objects
// and table entries in that order.
func DescribeType(typeName string) (*RecordSpec, bool) {
	if s, ok := entitySpecs[typeName]; ok {
		return s, true
	}
	if s, ok := objectSpecs[typeName]; ok {
		return s, true
	}
	if s, ok := tableEntrySpecs[typeName]; ok {
		return s, true
	}
	return nil, false
}
