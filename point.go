// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// Point is a simple Cartesian point, the geometric primitive shared by
// nearly every entity's field set. Grounded on
// _examples/original_source/src/point.rs.
type Point struct {
	X, Y, Z float64
}

// Origin returns the point (0, 0, 0).
func Origin() Point { return Point{} }

// applyOrdinate sets the X/Y/Z field selected by a 1X/2X/3X-offset triple
// of codes (e.g. 10/20/30 for a point's primary codes, 11/21/31 for a
// second point on the same entity). base is the "X" code of the triple.
func (p *Point) applyOrdinate(code, base uint16, v Value) (ApplyResult, error) {
	f, err := v.AsF64()
	if err != nil {
		return Applied, err
	}
	switch code {
	case base:
		p.X = f
	case base + 10:
		p.Y = f
	case base + 20:
		p.Z = f
	default:
		return NotApplicable, nil
	}
	return Applied, nil
}
