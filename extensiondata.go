// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "strings"

// maxExtensionDataDepth bounds extension-data group nesting depth.
const maxExtensionDataDepth = 3

// ExtensionDataGroup is application-tagged free-form data attached to any
// record, delimited on the wire by (102, "{APP") ... (102, "}"), with
// arbitrary nesting permitted up to maxExtensionDataDepth.
type ExtensionDataGroup struct {
	ApplicationName string
	Items           []ExtensionDataItem
}

// ExtensionDataItem is either a plain code pair or a nested group; exactly
// one of Pair/Group is non-nil.
type ExtensionDataItem struct {
	Pair  *CodePair
	Group *ExtensionDataGroup
}

// readExtensionDataGroup reads the body of an extension data group whose
// opening (102, "{APPNAME") pair has already been consumed (appName is
// that pair's value with the leading brace stripped). It stops at the
// matching (102, "}") pair, consuming it.
func readExtensionDataGroup(it *PairIterator, appName string, depth int) (*ExtensionDataGroup, error) {
	if depth > maxExtensionDataDepth {
		return nil, &UnexpectedCodePairError{Context: "extension data group nested too deeply"}
	}
	group := &ExtensionDataGroup{ApplicationName: appName}
	for {
		pair, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		if pair.Code == 0 {
			it.PutBack(pair)
			return group, nil
		}
		if pair.Code == 102 {
			s, _ := pair.Value.AsString()
			if s == "}" {
				return group, nil
			}
			if strings.HasPrefix(s, "{") {
				nested, err := readExtensionDataGroup(it, strings.TrimPrefix(s, "{"), depth+1)
				if err != nil {
					return nil, err
				}
				group.Items = append(group.Items, ExtensionDataItem{Group: nested})
				continue
			}
		}
		p := pair
		group.Items = append(group.Items, ExtensionDataItem{Pair: &p})
	}
}

// write emits the (102, "{APP") ... (102, "}") framed group.
func (g *ExtensionDataGroup) write(w *CodePairWriter) error {
	if err := w.WriteCodePair(NewStringPair(102, "{"+g.ApplicationName)); err != nil {
		return err
	}
	for _, item := range g.Items {
		if item.Group != nil {
			if err := item.Group.write(w); err != nil {
				return err
			}
			continue
		}
		if err := w.WriteCodePair(*item.Pair); err != nil {
			return err
		}
	}
	return w.WriteCodePair(NewStringPair(102, "}"))
}
