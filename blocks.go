// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// Block is one BLOCKS-section definition: a name/flags/base-point header
// framed by (0, BLOCK) ... (0, ENDBLK), containing the entities that make
// up the block definition.
type Block struct {
	Common         EntityCommon
	Name           string
	Flags          int16
	BasePoint      Point
	XrefPathName   string
	Entities       []*Entity
	EndBlockHandle Handle
	EndBlockOwner  Handle
}

// readBlock reads one block whose (0, "BLOCK") pair has already been
// consumed, through and including its (0, "ENDBLK") terminator.
func readBlock(it *PairIterator, version AcadVersion) (*Block, error) {
	b := &Block{Common: NewEntityCommon()}
	err := readRecordBody(it, &b.Common, version, func(pair CodePair, v AcadVersion) (ApplyResult, error) {
		switch pair.Code {
		case 2, 3:
			s, err := pair.Value.AsString()
			if err != nil {
				return NotApplicable, err
			}
			if b.Name == "" {
				b.Name = s
			}
			return Applied, nil
		case 70:
			flags, err := pair.Value.AsInt16()
			if err != nil {
				return NotApplicable, err
			}
			b.Flags = flags
			return Applied, nil
		case 1:
			s, err := pair.Value.AsString()
			if err != nil {
				return NotApplicable, err
			}
			b.XrefPathName = s
			return Applied, nil
		case 10, 20, 30:
			return b.BasePoint.applyOrdinate(pair.Code, 10, pair.Value)
		default:
			return NotApplicable, nil
		}
	})
	if err != nil {
		return nil, err
	}

	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return b, ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return nil, err
		}
		if typeName == "ENDBLK" {
			if err := readEndBlock(it, b, version); err != nil {
				return nil, err
			}
			return b, nil
		}
		entity, ok, err := readEntity(it, typeName, version)
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := skipUnknownRecord(it); err != nil {
				return nil, err
			}
			continue
		}
		b.Entities = append(b.Entities, entity)
	}
}

func readEndBlock(it *PairIterator, b *Block, version AcadVersion) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return nil
		}
		switch pair.Code {
		case 5:
			h, err := pair.Value.AsHandle()
			if err != nil {
				return err
			}
			b.EndBlockHandle = h
		case 330:
			h, err := pair.Value.AsHandle()
			if err != nil {
				return err
			}
			b.EndBlockOwner = h
		}
	}
}

func writeBlock(w *CodePairWriter, b *Block, version AcadVersion) error {
	if err := w.WriteCodePair(NewStringPair(0, "BLOCK")); err != nil {
		return err
	}
	if err := b.Common.writeLeading(w, version); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewInt16Pair(70, b.Flags)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewDoublePair(10, b.BasePoint.X)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewDoublePair(20, b.BasePoint.Y)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewDoublePair(30, b.BasePoint.Z)); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(3, b.Name)); err != nil {
		return err
	}
	if b.XrefPathName != "" {
		if err := w.WriteCodePair(NewStringPair(1, b.XrefPathName)); err != nil {
			return err
		}
	}
	for _, e := range b.Entities {
		if err := writeEntity(w, e, version); err != nil {
			return err
		}
	}
	if err := w.WriteCodePair(NewStringPair(0, "ENDBLK")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewHandlePair(5, b.EndBlockHandle)); err != nil {
		return err
	}
	if b.EndBlockOwner != NoHandle && version >= VersionR13 {
		if err := w.WriteCodePair(NewHandlePair(330, b.EndBlockOwner)); err != nil {
			return err
		}
	}
	return nil
}
