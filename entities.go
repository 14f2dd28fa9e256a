// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// EntityType is the sealed interface every concrete entity payload
// (Line, Circle, Text, ...) implements. The unexported methods keep the
// set closed to this package (a closed tagged-variant enumeration) while
// still letting write dispatch use a plain Go type switch.
type EntityType interface {
	// TypeName returns the Go type name used to look the record up in
	// DescribeType (e.g. "Line").
	TypeName() string
	readPair(pair CodePair, version AcadVersion) (ApplyResult, error)
	write(w *CodePairWriter, version AcadVersion) error
}

// Entity is a drawing entity: a common header plus a type-specific
// payload.
type Entity struct {
	Common   EntityCommon
	Specific EntityType
}

// NewEntity wraps specific with a freshly defaulted common header.
func NewEntity(specific EntityType) *Entity {
	return &Entity{Common: NewEntityCommon(), Specific: specific}
}

// entityFactories maps an on-wire (0, TYPE) string to a constructor for
// the Go type that implements it. Populated by generated_entities.go's
// init(). Multiple on-wire strings may map to the same constructor
// (declared as repeated calls to registerEntityType).
var entityFactories = map[string]func() EntityType{}

// entityTypeStrings maps a Go type name back to its canonical on-wire
// type string(s), used by the writer.
var entityTypeStrings = map[string][]string{}

func registerEntityType(typeName string, typeStrings []string, factory func() EntityType) {
	entityTypeStrings[typeName] = typeStrings
	for _, s := range typeStrings {
		entityFactories[s] = factory
	}
}

// readEntity reads one entity whose (0, typeName) pair has already been
// consumed by the section parser. ok is false if typeName is not a
// registered entity type, signalling the caller to skip-scan forward.
func readEntity(it *PairIterator, typeName string, version AcadVersion) (*Entity, bool, error) {
	factory, ok := entityFactories[typeName]
	if !ok {
		return nil, false, nil
	}
	e := NewEntity(factory())
	err := readRecordBody(it, &e.Common, version, func(pair CodePair, v AcadVersion) (ApplyResult, error) {
		return e.Specific.readPair(pair, v)
	})
	if err != nil {
		return nil, true, err
	}
	return e, true, nil
}

// writeEntity emits an entity if its declared version range covers
// version; returns immediately (writing nothing) otherwise.
func writeEntity(w *CodePairWriter, e *Entity, version AcadVersion) error {
	spec, ok := entitySpecs[e.Specific.TypeName()]
	if ok && !inVersionRange(version, spec.MinVersion, spec.MaxVersion) {
		return nil
	}
	typeStrings := entityTypeStrings[e.Specific.TypeName()]
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
