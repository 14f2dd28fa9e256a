// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// Sections holds the parsed top-level SECTION blocks of a drawing, in the
// shape Drawing assembles them into. THUMBNAILIMAGE is carried as raw
// bytes; nothing in this package needs to interpret the embedded BMP.
type Sections struct {
	Header    *Header
	Classes   []*Class
	Tables    map[string]*Table
	Blocks    []*Block
	Entities  []*Entity
	Objects   []*Object
	Thumbnail []byte
}

// skipUnknownRecord discards an unrecognized record's body by reading
// forward until the next (0, ...) sentinel (pushed back) or EOF. This is
// the mechanism behind the parser's tolerance of unknown or unsupported
// records: an unrecognized (0, TYPE) is already consumed by the caller,
// so only the body needs discarding here.
func skipUnknownRecord(it *PairIterator) error {
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
	}
}

// readSection dispatches on the section name already read from its
// (2, name) pair, consuming through (but not past) the (0, "ENDSEC")
// terminator, and folds the result into s.
func readSection(it *PairIterator, name string, version *AcadVersion, s *Sections) error {
	switch name {
	case "HEADER":
		h, err := readHeader(it, version)
		if err != nil {
			return err
		}
		s.Header = h
	case "CLASSES":
		return readClassesSection(it, s)
	case "TABLES":
		return readTablesSection(it, *version, s)
	case "BLOCKS":
		return readBlocksSection(it, *version, s)
	case "ENTITIES":
		return readEntitiesSection(it, *version, s)
	case "OBJECTS":
		return readObjectsSection(it, *version, s)
	case "THUMBNAILIMAGE":
		return readThumbnailSection(it, s)
	default:
		return skipSectionBody(it)
	}
	return skipSectionBody(it)
}

// skipSectionBody discards everything up to and including ENDSEC, for
// sections whose content this library has no model for at all (ACDSDATA,
// OLE... future sections, etc.).
func skipSectionBody(it *PairIterator) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if pair.Code == 0 {
			if s, _ := pair.Value.AsString(); s == "ENDSEC" {
				return nil
			}
		}
	}
}

func readClassesSection(it *PairIterator, s *Sections) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return err
		}
		if typeName == "ENDSEC" {
			return nil
		}
		if typeName != "CLASS" {
			if err := skipUnknownRecord(it); err != nil {
				return err
			}
			continue
		}
		c, err := readClass(it)
		if err != nil {
			return err
		}
		s.Classes = append(s.Classes, c)
	}
}

func readTablesSection(it *PairIterator, version AcadVersion, s *Sections) error {
	if s.Tables == nil {
		s.Tables = make(map[string]*Table)
	}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return err
		}
		switch typeName {
		case "ENDSEC":
			return nil
		case "TABLE":
			t, err := readTable(it, version)
			if err != nil {
				return err
			}
			s.Tables[t.Kind] = t
		default:
			if err := skipUnknownRecord(it); err != nil {
				return err
			}
		}
	}
}

// readTable reads one TABLE...ENDTAB block whose (0, "TABLE") pair has
// already been consumed.
func readTable(it *PairIterator, version AcadVersion) (*Table, error) {
	t := &Table{}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return t, ErrUnexpectedEOFSection
		}
		switch pair.Code {
		case 2:
			s, err := pair.Value.AsString()
			if err != nil {
				return nil, err
			}
			t.Kind = s
		case 5:
			h, err := pair.Value.AsHandle()
			if err != nil {
				return nil, err
			}
			t.Handle = h
		case 70:
			// Advisory max-entries count; len(Entries) is authoritative.
		case 0:
			typeName, err := pair.Value.AsString()
			if err != nil {
				return nil, err
			}
			if typeName == "ENDTAB" {
				return t, nil
			}
			entry, ok, err := readTableEntry(it, typeName, version)
			if err != nil {
				return nil, err
			}
			if !ok {
				if err := skipUnknownRecord(it); err != nil {
					return nil, err
				}
				continue
			}
			t.Entries = append(t.Entries, entry)
		}
	}
}

func readBlocksSection(it *PairIterator, version AcadVersion, s *Sections) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return err
		}
		switch typeName {
		case "ENDSEC":
			return nil
		case "BLOCK":
			b, err := readBlock(it, version)
			if err != nil {
				return err
			}
			s.Blocks = append(s.Blocks, b)
		default:
			if err := skipUnknownRecord(it); err != nil {
				return err
			}
		}
	}
}

func readEntitiesSection(it *PairIterator, version AcadVersion, s *Sections) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return err
		}
		if typeName == "ENDSEC" {
			return nil
		}
		entity, ok, err := readEntity(it, typeName, version)
		if err != nil {
			return err
		}
		if !ok {
			if err := skipUnknownRecord(it); err != nil {
				return err
			}
			continue
		}
		s.Entities = append(s.Entities, entity)
	}
}

func readObjectsSection(it *PairIterator, version AcadVersion, s *Sections) error {
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code != 0 {
			continue
		}
		typeName, err := pair.Value.AsString()
		if err != nil {
			return err
		}
		if typeName == "ENDSEC" {
			return nil
		}
		object, ok, err := readObject(it, typeName, version)
		if err != nil {
			return err
		}
		if !ok {
			if err := skipUnknownRecord(it); err != nil {
				return err
			}
			continue
		}
		s.Objects = append(s.Objects, object)
	}
}

// readThumbnailSection reads a THUMBNAILIMAGE section's single (310, ...)
// binary-chunk sequence, concatenating all chunks (the same
// hex-chunk-concatenation rule the VBA_PROJECT object uses).
func readThumbnailSection(it *PairIterator, s *Sections) error {
	var data []byte
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnexpectedEOFSection
		}
		if pair.Code == 0 {
			if name, _ := pair.Value.AsString(); name == "ENDSEC" {
				s.Thumbnail = data
				return nil
			}
			continue
		}
		if pair.Code == 310 {
			b, err := pair.Value.AsBinary()
			if err != nil {
				return err
			}
			data = append(data, b...)
		}
	}
}

func writeThumbnailSection(w *CodePairWriter, data []byte) error {
	if err := w.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, "THUMBNAILIMAGE")); err != nil {
		return err
	}
	const chunkSize = 127
	for i := 0; i < len(data); i += chunkSize {
		end := i + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if err := w.WriteCodePair(NewBinaryPair(310, data[i:end])); err != nil {
			return err
		}
	}
	return w.WriteCodePair(NewStringPair(0, "ENDSEC"))
}
