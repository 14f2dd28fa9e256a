// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// The applyN helpers remove the repeated "decode, check error, store,
// return Applied" boilerplate every generated ReadPair method would
// otherwise spell out for each scalar field.

func boolApply(dst *bool, v bool, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func int16Apply(dst *int16, v int16, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func int32Apply(dst *int32, v int32, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func int64Apply(dst *int64, v int64, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func f64Apply(dst *float64, v float64, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func stringApply(dst *string, v string, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

func handleApply(dst *Handle, v Handle, err error) (ApplyResult, error) {
	if err != nil {
		return NotApplicable, err
	}
	*dst = v
	return Applied, nil
}

// setFlagBit sets or clears bit in *dst, the pattern a MultiplicityFlagBit
// field uses to expose an individual boolean backed by one packed integer
// field shared with other bits.
func setFlagBit(dst *int16, bit int16, v bool) {
	if v {
		*dst |= bit
	} else {
		*dst &^= bit
	}
}

// flagBitSet reports whether bit is set in v.
func flagBitSet(v, bit int16) bool {
	return v&bit != 0
}
