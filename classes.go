// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// Class is one CLASSES-section record. Unlike entities/objects/table
// entries, classes have a single fixed schema, so there is no per-type
// dispatch: readClass/writeClass handle the whole record.
type Class struct {
	RecordName        string
	CppClassName      string
	ApplicationName   string
	ProxyFlags        int32
	InstanceCount     int32
	WasProxy          bool
	IsAnEntity        bool
}

// readClass reads one CLASS record whose (0, "CLASS") pair has already
// been consumed.
func readClass(it *PairIterator) (*Class, error) {
	c := &Class{}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return c, nil
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return c, nil
		}
		switch pair.Code {
		case 1:
			c.RecordName, err = pair.Value.AsString()
		case 2:
			c.CppClassName, err = pair.Value.AsString()
		case 3:
			c.ApplicationName, err = pair.Value.AsString()
		case 90:
			c.ProxyFlags, err = pair.Value.AsInt32()
		case 91:
			c.InstanceCount, err = pair.Value.AsInt32()
		case 280:
			c.WasProxy, err = pair.Value.AsBoolLoose()
		case 281:
			c.IsAnEntity, err = pair.Value.AsBoolLoose()
		}
		if err != nil {
			return nil, err
		}
	}
}

func writeClass(w *CodePairWriter, c *Class, version AcadVersion) error {
	if err := w.WriteCodePair(NewStringPair(0, "CLASS")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(1, c.RecordName)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, c.CppClassName)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(3, c.ApplicationName)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewInt32Pair(90, c.ProxyFlags)); err != nil {
		return err
	}
	if version >= VersionR2004 {
		if err := w.WriteCodePair(NewInt32Pair(91, c.InstanceCount)); err != nil {
			return err
		}
	}
	if err := w.WriteCodePair(NewBoolPair(280, c.WasProxy)); err != nil {
		return err
	}
	return w.WriteCodePair(NewBoolPair(281, c.IsAnEntity))
}
