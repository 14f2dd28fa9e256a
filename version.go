// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// AcadVersion identifies the AutoCAD drawing database version a Drawing
// targets. The order of the constants is significant: version gating
// throughout the schema compares versions with plain <, <=, >, >=.
type AcadVersion int

// Supported AutoCAD versions, oldest first.
const (
	VersionR9 AcadVersion = iota
	VersionR10
	VersionR11
	VersionR12
	VersionR13
	VersionR14
	VersionR2000
	VersionR2004
	VersionR2007
	VersionR2010
	VersionR2013

	// VersionMin and VersionMax bound the legal AcadVersion range and are
	// used as defaults for fields with no declared min/max version.
	VersionMin = VersionR9
	VersionMax = VersionR2013
)

var versionNames = map[AcadVersion]string{
	VersionR9:    "AC1004",
	VersionR10:   "AC1006",
	VersionR11:   "AC1009",
	VersionR12:   "AC1009",
	VersionR13:   "AC1012",
	VersionR14:   "AC1014",
	VersionR2000: "AC1015",
	VersionR2004: "AC1018",
	VersionR2007: "AC1021",
	VersionR2010: "AC1024",
	VersionR2013: "AC1027",
}

var namesToVersion = func() map[string]AcadVersion {
	m := make(map[string]AcadVersion, len(versionNames))
	for v, s := range versionNames {
		// R11 and R12 share the AC1009 code; the first insertion (R11)
		// would win on a naive reverse map, so explicitly prefer R12 since
		// that is the commonly produced version for that code.
		if s == "AC1009" {
			m[s] = VersionR12
			continue
		}
		m[s] = v
	}
	return m
}()

// String returns the on-wire $ACADVER string for the version (e.g. "AC1015"
// for R2000).
func (v AcadVersion) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return "AC1027"
}

// Name returns the human-readable version name (e.g. "R2000").
func (v AcadVersion) Name() string {
	switch v {
	case VersionR9:
		return "R9"
	case VersionR10:
		return "R10"
	case VersionR11:
		return "R11"
	case VersionR12:
		return "R12"
	case VersionR13:
		return "R13"
	case VersionR14:
		return "R14"
	case VersionR2000:
		return "R2000"
	case VersionR2004:
		return "R2004"
	case VersionR2007:
		return "R2007"
	case VersionR2010:
		return "R2010"
	case VersionR2013:
		return "R2013"
	default:
		return "unknown"
	}
}

// ParseAcadVersion maps an on-wire $ACADVER string to an AcadVersion.
func ParseAcadVersion(s string) (AcadVersion, bool) {
	v, ok := namesToVersion[s]
	return v, ok
}
