// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"io"
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/deltacad/dxf/log"
)

// ReadOptions configures ReadDrawing/OpenFile. The zero value is valid and
// selects the defaults documented on each field.
type ReadOptions struct {
	// Logger receives recovered (non-fatal) parse conditions, such as an
	// unrecognized record type or a version-gated field found out of
	// range. A nil Logger installs a filtered stdout logger at
	// log.LevelError, matching pe.Options' default.
	Logger log.Logger
}

// WriteOptions configures Drawing.Write/SaveFile.
type WriteOptions struct {
	// Version overrides the drawing's stored AcadVersion for this write
	// only. Zero means "use Drawing.Version".
	Version AcadVersion
	Logger  log.Logger
}

// Drawing is a fully parsed DXF document: a header, the five structural
// sections, and an optional embedded thumbnail.
type Drawing struct {
	Version   AcadVersion
	Header    *Header
	Classes   []*Class
	Tables    map[string]*Table
	Blocks    []*Block
	Entities  []*Entity
	Objects   []*Object
	Thumbnail []byte

	logger *log.Helper
}

// NewDrawing returns an empty drawing defaulted to the newest supported
// version, ready to have entities/objects appended before Write.
func NewDrawing() *Drawing {
	return &Drawing{
		Version: VersionR2013,
		Header:  NewHeader(),
		Tables:  make(map[string]*Table),
	}
}

func helperFromLogger(l log.Logger) *log.Helper {
	if l == nil {
		stdout := log.NewStdLogger(os.Stdout)
		return log.NewHelper(log.NewFilter(stdout, log.FilterLevel(log.LevelError)))
	}
	return log.NewHelper(l)
}

// ReadDrawing parses a whole DXF document (ASCII or binary, auto-detected)
// from r. Unknown or unsupported records are tolerated and skipped per
// each section's documented robustness contract; only a malformed
// low-level encoding (bad integer/float/handle text, a truncated binary
// chunk) produces an error.
func ReadDrawing(r io.Reader, opts *ReadOptions) (*Drawing, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	d := NewDrawing()
	d.logger = helperFromLogger(opts.Logger)

	tok, err := NewTokenizer(r)
	if err != nil {
		return nil, err
	}
	it := NewPairIterator(tok)

	sections := &Sections{Tables: make(map[string]*Table)}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if pair.Code != 0 {
			continue
		}
		marker, err := pair.Value.AsString()
		if err != nil {
			return nil, err
		}
		switch marker {
		case "EOF":
			goto done
		case "SECTION":
			namePair, ok, err := it.Next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrUnexpectedEOFSection
			}
			name, err := namePair.Value.AsString()
			if err != nil {
				return nil, err
			}
			if err := readSection(it, name, &d.Version, sections); err != nil {
				return nil, err
			}
		default:
			d.logger.Debugf("skipping unexpected top-level record %q", marker)
			if err := skipUnknownRecord(it); err != nil {
				return nil, err
			}
		}
	}
done:

	if sections.Header != nil {
		d.Header = sections.Header
	}
	d.Classes = sections.Classes
	if sections.Tables != nil {
		d.Tables = sections.Tables
	}
	d.Blocks = sections.Blocks
	d.Entities = sections.Entities
	d.Objects = sections.Objects
	d.Thumbnail = sections.Thumbnail

	fixupOwnerHandles(d)
	return d, nil
}

// fixupOwnerHandles applies a post-read cross-record correction:
// entities whose owner handle is unset inherit the handle of the block
// that contains them, mirroring what AutoCAD itself guarantees on a
// well-formed file but which some minimal/hand-authored fixtures omit.
func fixupOwnerHandles(d *Drawing) {
	for _, b := range d.Blocks {
		for _, e := range b.Entities {
			if e.Common.OwnerHandle == NoHandle {
				e.Common.OwnerHandle = b.Common.Handle
			}
		}
	}
}

// Write serializes d as ASCII DXF text, honoring opts.Version if set.
func (d *Drawing) Write(w io.Writer, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}
	version := opts.Version
	if version == 0 {
		version = d.Version
	}
	d.logger = helperFromLogger(opts.Logger)

	cw := NewASCIIWriter(w)
	return d.writeSections(cw, version)
}

// WriteBinary serializes d using the binary DXF encoding.
func (d *Drawing) WriteBinary(w io.Writer, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{}
	}
	version := opts.Version
	if version == 0 {
		version = d.Version
	}
	d.logger = helperFromLogger(opts.Logger)

	cw, err := NewBinaryWriter(w)
	if err != nil {
		return err
	}
	return d.writeSections(cw, version)
}

func (d *Drawing) writeSections(cw *CodePairWriter, version AcadVersion) error {
	if d.Header == nil {
		d.Header = NewHeader()
	}
	d.Header.Version = version
	d.Header.Set("$ACADVER", NewStringPair(1, versionNames[version]))
	if err := writeHeader(cw, d.Header, version); err != nil {
		return err
	}

	if version >= VersionR13 {
		if err := cw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
			return err
		}
		if err := cw.WriteCodePair(NewStringPair(2, "CLASSES")); err != nil {
			return err
		}
		for _, c := range d.Classes {
			if err := writeClass(cw, c, version); err != nil {
				return err
			}
		}
		if err := cw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
			return err
		}
	}

	if err := cw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := cw.WriteCodePair(NewStringPair(2, "TABLES")); err != nil {
		return err
	}
	for _, kind := range tableWriteOrder {
		t, ok := d.Tables[kind]
		if !ok {
			continue
		}
		if err := writeTable(cw, t, version); err != nil {
			return err
		}
	}
	if err := cw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		return err
	}

	if err := cw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := cw.WriteCodePair(NewStringPair(2, "BLOCKS")); err != nil {
		return err
	}
	for _, b := range d.Blocks {
		if err := writeBlock(cw, b, version); err != nil {
			return err
		}
	}
	if err := cw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		return err
	}

	if err := cw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := cw.WriteCodePair(NewStringPair(2, "ENTITIES")); err != nil {
		return err
	}
	for _, e := range d.Entities {
		if err := writeEntity(cw, e, version); err != nil {
			return err
		}
	}
	if err := cw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		return err
	}

	if version >= VersionR13 {
		if err := cw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
			return err
		}
		if err := cw.WriteCodePair(NewStringPair(2, "OBJECTS")); err != nil {
			return err
		}
		for _, o := range d.Objects {
			if err := writeObject(cw, o, version); err != nil {
				return err
			}
		}
		if err := cw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
			return err
		}
	}

	if len(d.Thumbnail) > 0 && version >= VersionR2000 {
		if err := writeThumbnailSection(cw, d.Thumbnail); err != nil {
			return err
		}
	}

	if err := cw.WriteCodePair(NewStringPair(0, "EOF")); err != nil {
		return err
	}
	return cw.Flush()
}

// tableWriteOrder fixes the conventional TABLES-section ordering AutoCAD
// itself writes; any table kind not listed here (a forward-compatible
// table this library doesn't specifically model) is simply never emitted.
var tableWriteOrder = []string{
	"VPORT", "LTYPE", "LAYER", "STYLE", "VIEW", "UCS", "APPID", "DIMSTYLE", "BLOCK_RECORD",
}

// OpenFile memory-maps name and parses it as a DXF document, the file
// convenience analogous to pe.New: ReadDrawing (taking an io.Reader) is
// the primitive, this is sugar over mmap-go for the common file-on-disk
// case.
func OpenFile(name string, opts *ReadOptions) (*Drawing, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return ReadDrawing(bytes.NewReader(data), opts)
}

// SaveFile serializes d to name as ASCII DXF text.
func SaveFile(name string, d *Drawing, opts *WriteOptions) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Write(f, opts)
}
