// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// ObjectType is the sealed interface every concrete non-graphical object
// payload (DictionaryVariable, ImageDefinition, Layout, ...) implements.
type ObjectType interface {
	TypeName() string
	readPair(pair CodePair, version AcadVersion) (ApplyResult, error)
	write(w *CodePairWriter, version AcadVersion) error
}

// Object is a non-graphical drawing object: a common header plus a
// type-specific payload.
type Object struct {
	Common   RecordCommon
	Specific ObjectType
}

// NewObject wraps specific with a zero-value common header.
func NewObject(specific ObjectType) *Object {
	return &Object{Specific: specific}
}

var objectFactories = map[string]func() ObjectType{}
var objectTypeStrings = map[string][]string{}

func registerObjectType(typeName string, typeStrings []string, factory func() ObjectType) {
	objectTypeStrings[typeName] = typeStrings
	for _, s := range typeStrings {
		objectFactories[s] = factory
	}
}

// readObject reads one object whose (0, typeName) pair has already been
// consumed. ok is false if typeName is unregistered.
func readObject(it *PairIterator, typeName string, version AcadVersion) (*Object, bool, error) {
	factory, ok := objectFactories[typeName]
	if !ok {
		return nil, false, nil
	}
	o := NewObject(factory())
	err := readRecordBody(it, &o.Common, version, func(pair CodePair, v AcadVersion) (ApplyResult, error) {
		return o.Specific.readPair(pair, v)
	})
	if err != nil {
		return nil, true, err
	}
	return o, true, nil
}

func writeObject(w *CodePairWriter, o *Object, version AcadVersion) error {
	spec, ok := objectSpecs[o.Specific.TypeName()]
	if ok && !inVersionRange(version, spec.MinVersion, spec.MaxVersion) {
		return nil
	}
	typeStrings := objectTypeStrings[o.Specific.TypeName()]
	if len(typeStrings) == 0 {
		return nil
	}
	if err := w.WriteCodePair(NewStringPair(0, typeStrings[0])); err != nil {
		return err
	}
	if err := o.Common.writeLeadingObject(w, version); err != nil {
		return err
	}
	if err := o.Specific.write(w, version); err != nil {
		return err
	}
	return o.Common.writeXData(w, version)
}
