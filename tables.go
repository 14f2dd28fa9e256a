// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// TableEntryType is the sealed interface every concrete table entry
// payload (Layer, LineType, ApplicationID, ...) implements.
type TableEntryType interface {
	TypeName() string
	TableKind() string
	readPair(pair CodePair, version AcadVersion) (ApplyResult, error)
	write(w *CodePairWriter, version AcadVersion) error
}

// TableEntry is one row of a TABLES section table: a common header
// (name, flags, handle, owner) plus a type-specific payload.
type TableEntry struct {
	Common   TableEntryCommon
	Specific TableEntryType
}

// NewTableEntry wraps specific with a zero-value common header.
func NewTableEntry(specific TableEntryType) *TableEntry {
	return &TableEntry{Specific: specific}
}

// Table is one TABLES section table: an on-wire kind name (e.g. "LAYER")
// and its ordered entries. The table header's handle (5) is kept in
// Handle; its max-entries count (70) is advisory and is not stored, and
// len(Entries) is authoritative on write.
type Table struct {
	Kind    string
	Handle  Handle
	Entries []*TableEntry
}

var tableEntryFactories = map[string]func() TableEntryType{}
var tableEntryTypeStrings = map[string][]string{}

func registerTableEntryType(typeName string, typeStrings []string, factory func() TableEntryType) {
	tableEntryTypeStrings[typeName] = typeStrings
	for _, s := range typeStrings {
		tableEntryFactories[s] = factory
	}
}

func readTableEntry(it *PairIterator, typeName string, version AcadVersion) (*TableEntry, bool, error) {
	factory, ok := tableEntryFactories[typeName]
	if !ok {
		return nil, false, nil
	}
	e := NewTableEntry(factory())
	err := readRecordBody(it, &e.Common, version, func(pair CodePair, v AcadVersion) (ApplyResult, error) {
		return e.Specific.readPair(pair, v)
	})
	if err != nil {
		return nil, true, err
	}
	return e, true, nil
}

func writeTableEntry(w *CodePairWriter, e *TableEntry, version AcadVersion) error {
	spec, ok := tableEntrySpecs[e.Specific.TypeName()]
	if ok && !inVersionRange(version, spec.MinVersion, spec.MaxVersion) {
		return nil
	}
	typeStrings := tableEntryTypeStrings[e.Specific.TypeName()]
	if len(typeStrings) == 0 {
		return nil
	}
	if err := w.WriteCodePair(NewStringPair(0, typeStrings[0])); err != nil {
		return err
	}
	if err := e.Common.writeLeading(w, version); err != nil {
		return err
	}
	if err := e.Specific.write(w, version); err != nil {
		return err
	}
	return e.Common.writeXData(w, version)
}

// writeTable emits the (0, TABLE) (2, kind) ... (0, ENDTAB) frame for a
// whole table, skipping entries whose version range excludes version.
func writeTable(w *CodePairWriter, t *Table, version AcadVersion) error {
	if err := w.WriteCodePair(NewStringPair(0, "TABLE")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, t.Kind)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewHandlePair(5, t.Handle)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewInt16Pair(70, int16(len(t.Entries)))); err != nil {
		return err
	}
	for _, e := range t.Entries {
		if err := writeTableEntry(w, e, version); err != nil {
			return err
		}
	}
	return w.WriteCodePair(NewStringPair(0, "ENDTAB"))
}
