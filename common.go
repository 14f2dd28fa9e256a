// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "strings"

// RecordCommon is the header every DXF record family carries: a handle,
// an owner back-reference, extension data, x-data, and persistent
// reactor/extension-dictionary handles. It is read and written by a
// single shared codec that runs ahead of every record's specific codec,
// since codes 5, 100, 102, 330, 360 and the 1000-series are never
// consumed by the specific codec.
type RecordCommon struct {
	Handle              Handle
	OwnerHandle         Handle
	ExtensionData       []ExtensionDataGroup
	XData               []XData
	ReactorHandles      []Handle
	ExtensionDictionary Handle
}

// EntityCommon extends RecordCommon with the additional fields every
// entity (as opposed to object or table entry) carries.
type EntityCommon struct {
	RecordCommon
	Layer          string
	IsInPaperSpace bool
	LinetypeName   string
	Color          int16
	LineTypeScale  float64
	Visible        bool
	LineWeight     int16
}

// NewEntityCommon returns an EntityCommon with AutoCAD's documented
// defaults (layer "0", linetype "BYLAYER", color/lineweight "by layer").
func NewEntityCommon() EntityCommon {
	return EntityCommon{
		Layer:         "0",
		LinetypeName:  "BYLAYER",
		Color:         256,
		LineTypeScale: 1.0,
		Visible:       true,
		LineWeight:    -1,
	}
}

// TableEntryCommon extends RecordCommon with the name/flags pair nearly
// every table entry type declares.
type TableEntryCommon struct {
	RecordCommon
	Name  string
	Flags int16
}

// commonReader is implemented by every family's common-header type
// (RecordCommon for objects, EntityCommon for entities, TableEntryCommon
// for table entries) so readRecordBody can share one loop across all
// three families.
type commonReader interface {
	readCommonPair(it *PairIterator, pair CodePair) (bool, error)
}

// readCommonPair attempts to interpret pair as part of the common header.
// consumed is true if the pair (and possibly more pairs read through it)
// was handled; callers should not forward a consumed pair to the
// record's specific codec. Code 100 (subclass marker) is also absorbed
// here: its value is structurally useful only for the writer, which
// emits it from the schema rather than anything stored on read.
func (c *RecordCommon) readCommonPair(it *PairIterator, pair CodePair) (consumed bool, err error) {
	switch pair.Code {
	case 5:
		h, err := pair.Value.AsHandle()
		if err != nil {
			return true, err
		}
		c.Handle = h
		return true, nil
	case 100:
		return true, nil
	case 330:
		h, err := pair.Value.AsHandle()
		if err != nil {
			return true, err
		}
		c.OwnerHandle = h
		return true, nil
	case 360:
		h, err := pair.Value.AsHandle()
		if err != nil {
			return true, err
		}
		c.ExtensionDictionary = h
		return true, nil
	case 102:
		s, _ := pair.Value.AsString()
		switch {
		case s == "{ACAD_REACTORS":
			if err := c.readReactors(it); err != nil {
				return true, err
			}
			return true, nil
		case s == "{ACAD_XDICTIONARY":
			if err := c.readXDictionary(it); err != nil {
				return true, err
			}
			return true, nil
		case strings.HasPrefix(s, "{"):
			group, err := readExtensionDataGroup(it, strings.TrimPrefix(s, "{"), 1)
			if err != nil {
				return true, err
			}
			c.ExtensionData = append(c.ExtensionData, *group)
			return true, nil
		}
		return false, nil
	default:
		if pair.Code == 1001 {
			if err := c.readXData(it, pair); err != nil {
				return true, err
			}
			return true, nil
		}
		if isXDataCode(pair.Code) {
			// Stray x-data item with no preceding 1001 marker: ignore per
			// the tolerant-reader policy.
			return true, nil
		}
		return false, nil
	}
}

func (c *RecordCommon) readReactors(it *PairIterator) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOF
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return nil
		}
		if pair.Code == 102 {
			if s, _ := pair.Value.AsString(); s == "}" {
				return nil
			}
		}
		if pair.Code == 330 {
			h, err := pair.Value.AsHandle()
			if err != nil {
				return err
			}
			c.ReactorHandles = append(c.ReactorHandles, h)
		}
	}
}

func (c *RecordCommon) readXDictionary(it *PairIterator) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOF
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return nil
		}
		if pair.Code == 102 {
			if s, _ := pair.Value.AsString(); s == "}" {
				return nil
			}
		}
		if pair.Code == 360 {
			h, err := pair.Value.AsHandle()
			if err != nil {
				return err
			}
			c.ExtensionDictionary = h
		}
	}
}

// readXData accumulates 1000-series pairs into the XData entry opened by
// the just-read 1001 pair, stopping when a non-xdata, non-1001 pair is
// seen (which is pushed back for the caller).
func (c *RecordCommon) readXData(it *PairIterator, opener CodePair) error {
	appName, err := opener.Value.AsString()
	if err != nil {
		return err
	}
	entry := XData{ApplicationName: appName}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if pair.Code == 1001 {
			c.XData = append(c.XData, entry)
			entry = XData{}
			if appName, err = pair.Value.AsString(); err != nil {
				return err
			}
			entry.ApplicationName = appName
			continue
		}
		if !isXDataCode(pair.Code) {
			it.PutBack(pair)
			break
		}
		entry.Items = append(entry.Items, pair)
	}
	c.XData = append(c.XData, entry)
	return nil
}

// writeExtensionData emits the record's extension data groups, reactors
// and extension dictionary (R14+ only), right after the handle/owner
// pairs. X-data is not written here.
func (c *RecordCommon) writeExtensionData(w *CodePairWriter, version AcadVersion) error {
	if version < VersionR14 {
		return nil
	}
	for i := range c.ExtensionData {
		if err := c.ExtensionData[i].write(w); err != nil {
			return err
		}
	}
	if len(c.ReactorHandles) > 0 {
		if err := w.WriteCodePair(NewStringPair(102, "{ACAD_REACTORS")); err != nil {
			return err
		}
		for _, h := range c.ReactorHandles {
			if err := w.WriteCodePair(NewHandlePair(330, h)); err != nil {
				return err
			}
		}
		if err := w.WriteCodePair(NewStringPair(102, "}")); err != nil {
			return err
		}
	}
	if c.ExtensionDictionary != NoHandle {
		if err := w.WriteCodePair(NewStringPair(102, "{ACAD_XDICTIONARY")); err != nil {
			return err
		}
		if err := w.WriteCodePair(NewHandlePair(360, c.ExtensionDictionary)); err != nil {
			return err
		}
		if err := w.WriteCodePair(NewStringPair(102, "}")); err != nil {
			return err
		}
	}
	return nil
}

func (c *RecordCommon) writeXData(w *CodePairWriter, version AcadVersion) error {
	if version < VersionR2000 {
		return nil
	}
	for i := range c.XData {
		if err := c.XData[i].write(w); err != nil {
			return err
		}
	}
	return nil
}

// readCommonPair handles entity-only common codes (layer, linetype,
// color, paperspace flag, linetype scale, visibility, lineweight) on top
// of the RecordCommon codes every family shares.
func (c *EntityCommon) readCommonPair(it *PairIterator, pair CodePair) (bool, error) {
	if consumed, err := c.RecordCommon.readCommonPair(it, pair); consumed || err != nil {
		return consumed, err
	}
	switch pair.Code {
	case 8:
		s, err := pair.Value.AsString()
		if err != nil {
			return true, err
		}
		c.Layer = s
		return true, nil
	case 6:
		s, err := pair.Value.AsString()
		if err != nil {
			return true, err
		}
		c.LinetypeName = s
		return true, nil
	case 62:
		v, err := pair.Value.AsInt16()
		if err != nil {
			return true, err
		}
		c.Color = v
		return true, nil
	case 67:
		b, err := pair.Value.AsBoolLoose()
		if err != nil {
			return true, err
		}
		c.IsInPaperSpace = b
		return true, nil
	case 48:
		f, err := pair.Value.AsF64()
		if err != nil {
			return true, err
		}
		c.LineTypeScale = f
		return true, nil
	case 60:
		invisible, err := pair.Value.AsBoolLoose()
		if err != nil {
			return true, err
		}
		c.Visible = !invisible
		return true, nil
	case 370:
		v, err := pair.Value.AsInt16()
		if err != nil {
			return true, err
		}
		c.LineWeight = v
		return true, nil
	default:
		return false, nil
	}
}

// writeLeading emits the common header codes that precede the subclass
// marker(s): handle, owner, then (paperspace/layer/linetype/color/...).
func (c *EntityCommon) writeLeading(w *CodePairWriter, version AcadVersion) error {
	if err := w.WriteCodePair(NewHandlePair(5, c.Handle)); err != nil {
		return err
	}
	if c.OwnerHandle != NoHandle && version >= VersionR13 {
		if err := w.WriteCodePair(NewHandlePair(330, c.OwnerHandle)); err != nil {
			return err
		}
	}
	if err := c.writeExtensionData(w, version); err != nil {
		return err
	}
	if c.IsInPaperSpace {
		if err := w.WriteCodePair(NewBoolPair(67, true)); err != nil {
			return err
		}
	}
	if err := w.WriteCodePair(NewStringPair(8, c.Layer)); err != nil {
		return err
	}
	if c.LinetypeName != "" && c.LinetypeName != "BYLAYER" {
		if err := w.WriteCodePair(NewStringPair(6, c.LinetypeName)); err != nil {
			return err
		}
	}
	if c.Color != 256 {
		if err := w.WriteCodePair(NewInt16Pair(62, c.Color)); err != nil {
			return err
		}
	}
	if version >= VersionR13 && c.LineTypeScale != 1.0 {
		if err := w.WriteCodePair(NewDoublePair(48, c.LineTypeScale)); err != nil {
			return err
		}
	}
	if !c.Visible {
		if err := w.WriteCodePair(NewBoolPair(60, true)); err != nil {
			return err
		}
	}
	if version >= VersionR2000 && c.LineWeight != 0 {
		if err := w.WriteCodePair(NewInt16Pair(370, c.LineWeight)); err != nil {
			return err
		}
	}
	return nil
}

// readCommonPair handles the name/flags codes shared by most table entry
// types on top of the RecordCommon codes every family shares.
func (c *TableEntryCommon) readCommonPair(it *PairIterator, pair CodePair) (bool, error) {
	if consumed, err := c.RecordCommon.readCommonPair(it, pair); consumed || err != nil {
		return consumed, err
	}
	switch pair.Code {
	case 2:
		s, err := pair.Value.AsString()
		if err != nil {
			return true, err
		}
		c.Name = s
		return true, nil
	case 70:
		v, err := pair.Value.AsInt16()
		if err != nil {
			return true, err
		}
		c.Flags = v
		return true, nil
	default:
		return false, nil
	}
}

func (c *TableEntryCommon) writeLeading(w *CodePairWriter, version AcadVersion) error {
	if err := w.WriteCodePair(NewHandlePair(5, c.Handle)); err != nil {
		return err
	}
	if c.OwnerHandle != NoHandle && version >= VersionR13 {
		if err := w.WriteCodePair(NewHandlePair(330, c.OwnerHandle)); err != nil {
			return err
		}
	}
	if err := c.writeExtensionData(w, version); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, c.Name)); err != nil {
		return err
	}
	return w.WriteCodePair(NewInt16Pair(70, c.Flags))
}

// writeLeadingObject mirrors writeLeading for the simpler object/class
// common header, which carries no layer/linetype/paperspace fields.
func (c *RecordCommon) writeLeadingObject(w *CodePairWriter, version AcadVersion) error {
	if err := w.WriteCodePair(NewHandlePair(5, c.Handle)); err != nil {
		return err
	}
	if c.OwnerHandle != NoHandle {
		if err := w.WriteCodePair(NewHandlePair(330, c.OwnerHandle)); err != nil {
			return err
		}
	}
	return c.writeExtensionData(w, version)
}

// readRecordBody drives a record's specific codec to completion: it pulls
// pairs from it, diverting common-header pairs to common, and forwarding
// everything else to readSpecific, until the sentinel (0, ...) pair
// is seen (pushed back for the parent section parser) or the stream ends.
// This is the shared loop every entity/object/table-entry reader uses: a
// record's extent is all pairs up to but not including the next
// (0, ...) pair.
func readRecordBody(it *PairIterator, common commonReader, version AcadVersion, readSpecific func(CodePair, AcadVersion) (ApplyResult, error)) error {
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
		consumed, err := common.readCommonPair(it, pair)
		if err != nil {
			return err
		}
		if consumed {
			continue
		}
		// Unknown/unrecognized/version-gated codes are all silently
		// absorbed per the tolerant-reader policy; only a malformed
		// encoding propagates an error.
		if _, err := readSpecific(pair, version); err != nil {
			return err
		}
	}
}
