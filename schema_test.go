// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "testing"

func TestDescribeTypeFindsEntitiesObjectsAndTableEntries(t *testing.T) {
	names := []string{"Line", "Dictionary", "Layer"}
	for _, name := range names {
		spec, ok := DescribeType(name)
		if !ok {
			t.Errorf("DescribeType(%q) not found", name)
			continue
		}
		if spec.TypeName != name {
			t.Errorf("DescribeType(%q).TypeName = %q, want %q", name, spec.TypeName, name)
		}
	}
}

func TestDescribeTypeUnknownReturnsFalse(t *testing.T) {
	if _, ok := DescribeType("NoSuchRecord"); ok {
		t.Error("DescribeType(\"NoSuchRecord\") = true, want false")
	}
}

func TestAcadProxyObjectIsVersionGatedFromR2000(t *testing.T) {
	spec, ok := DescribeType("AcadProxyObject")
	if !ok {
		t.Fatal("DescribeType(\"AcadProxyObject\") not found")
	}
	if spec.MinVersion != VersionR2000 {
		t.Errorf("AcadProxyObject.MinVersion = %v, want %v", spec.MinVersion, VersionR2000)
	}
	if inVersionRange(VersionR9, spec.MinVersion, spec.MaxVersion) {
		t.Error("AcadProxyObject should not be in range at VersionR9")
	}
	if !inVersionRange(VersionR2013, spec.MinVersion, spec.MaxVersion) {
		t.Error("AcadProxyObject should be in range at VersionR2013")
	}
}

func TestInVersionRange(t *testing.T) {
	tests := []struct {
		v, min, max AcadVersion
		want        bool
	}{
		{VersionR2000, VersionR13, VersionR2013, true},
		{VersionR9, VersionR13, VersionR2013, false},
		{VersionR2013, VersionR13, VersionR2013, true},
	}
	for _, tt := range tests {
		if got := inVersionRange(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("inVersionRange(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}
