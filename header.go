// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// HeaderVariable is one ($NAME, value...) entry of the HEADER section. Most
// variables carry a single code pair, but a handful (e.g. $EXTMIN,
// $EXTMAX, $PUCSORG) are point triples and carry three.
type HeaderVariable struct {
	Name   string
	Values []CodePair
}

// Header holds the drawing's HEADER section. Variables are kept in
// insertion (on-wire) order so re-serialization is stable even for
// variables dxfgen's generated accessors don't know about yet.
type Header struct {
	Version   AcadVersion
	Variables []HeaderVariable
	index     map[string]int
}

// NewHeader returns an empty header defaulted to the newest supported
// version, mirroring what AutoCAD itself writes for a blank drawing.
func NewHeader() *Header {
	return &Header{Version: VersionR2013}
}

func (h *Header) ensureIndex() {
	if h.index != nil {
		return
	}
	h.index = make(map[string]int, len(h.Variables))
	for i, v := range h.Variables {
		h.index[v.Name] = i
	}
}

// Get returns the raw code pairs stored for name, if present.
func (h *Header) Get(name string) ([]CodePair, bool) {
	h.ensureIndex()
	i, ok := h.index[name]
	if !ok {
		return nil, false
	}
	return h.Variables[i].Values, true
}

// Set stores or replaces the code pairs for name.
func (h *Header) Set(name string, values ...CodePair) {
	h.ensureIndex()
	if i, ok := h.index[name]; ok {
		h.Variables[i].Values = values
		return
	}
	h.index[name] = len(h.Variables)
	h.Variables = append(h.Variables, HeaderVariable{Name: name, Values: values})
}

// headerVariableValueCounts records how many code pairs a known header
// variable consumes, so the reader can greedily gather point triples
// without a full generated schema. Variables absent from this table are
// assumed single-valued, matching the vast majority of $-variables.
var headerVariableValueCounts = map[string]int{
	"$EXTMIN":   3,
	"$EXTMAX":   3,
	"$LIMMIN":   2,
	"$LIMMAX":   2,
	"$INSBASE":  3,
	"$PUCSORG":  3,
	"$PUCSXDIR": 3,
	"$PUCSYDIR": 3,
	"$UCSORG":   3,
	"$UCSXDIR":  3,
	"$UCSYDIR":  3,
}

// readHeader reads the HEADER section body. The (0, "SECTION")/(2, "HEADER")
// pairs are assumed already consumed; it stops at (0, "ENDSEC") or EOF.
func readHeader(it *PairIterator, version *AcadVersion) (*Header, error) {
	h := NewHeader()
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return h, nil
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return h, nil
		}
		if pair.Code != 9 {
			// Unexpected code where a $-name was wanted: tolerate and skip.
			continue
		}
		name, err := pair.Value.AsString()
		if err != nil {
			return nil, err
		}
		n := headerVariableValueCounts[name]
		if n == 0 {
			n = 1
		}
		values := make([]CodePair, 0, n)
		for i := 0; i < n; i++ {
			vp, ok, err := it.Next()
			if err != nil {
				return nil, err
			}
			if !ok || vp.Code == 0 || vp.Code == 9 {
				if ok {
					it.PutBack(vp)
				}
				break
			}
			values = append(values, vp)
		}
		h.Set(name, values...)
		if name == "$ACADVER" && len(values) == 1 {
			if s, err := values[0].Value.AsString(); err == nil {
				if v, ok := ParseAcadVersion(s); ok {
					*version = v
					h.Version = v
				}
			}
		}
	}
}

// writeHeader emits the (0, SECTION)(2, HEADER) ... (0, ENDSEC) frame.
func writeHeader(w *CodePairWriter, h *Header, version AcadVersion) error {
	if err := w.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, "HEADER")); err != nil {
		return err
	}
	wroteVersion := false
	for _, v := range h.Variables {
		if v.Name == "$ACADVER" {
			wroteVersion = true
		}
		if err := w.WriteCodePair(NewStringPair(9, v.Name)); err != nil {
			return err
		}
		for _, p := range v.Values {
			if err := w.WriteCodePair(p); err != nil {
				return err
			}
		}
	}
	if !wroteVersion {
		if err := w.WriteCodePair(NewStringPair(9, "$ACADVER")); err != nil {
			return err
		}
		if err := w.WriteCodePair(NewStringPair(1, versionNames[version])); err != nil {
			return err
		}
	}
	return w.WriteCodePair(NewStringPair(0, "ENDSEC"))
}
