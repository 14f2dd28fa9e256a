// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// XData is application-tagged free-form data attached to any record via
// the 1000-series codes. Items are kept as raw CodePairs rather than a
// bespoke per-kind enum: a code pair's Code already selects the XDataItem
// kind (str/i16/i32/real/point/handle/binary/...), so wrapping it again
// would duplicate information the CodePair already carries without
// adding behavior.
type XData struct {
	ApplicationName string
	Items           []CodePair
}

// isXDataCode reports whether code falls in the 1000-series range that
// belongs to x-data rather than a record's own fields.
func isXDataCode(code uint16) bool {
	return code >= 1000 && code <= 1071
}

// write emits the (1001, appname) marker followed by the item pairs.
func (x *XData) write(w *CodePairWriter) error {
	if err := w.WriteCodePair(NewStringPair(1001, x.ApplicationName)); err != nil {
		return err
	}
	for _, item := range x.Items {
		if err := w.WriteCodePair(item); err != nil {
			return err
		}
	}
	return nil
}
