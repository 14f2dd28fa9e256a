// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import "embed"

// specFS embeds the spec/*.xml schema documents so ReadSchemaFile can
// parse them at runtime without a filesystem dependency. DescribeType does
// not read them; it answers from the registries the generated_*.go files
// fill.
//
//go:embed spec/*.xml
var specFS embed.FS

// ReadSchemaFile returns the parsed contents of one embedded spec/*.xml
// document (e.g. "EntitiesSpec.xml").
func ReadSchemaFile(name string) (*SchemaDocument, error) {
	data, err := specFS.ReadFile("spec/" + name)
	if err != nil {
		return nil, err
	}
	return ParseSchemaDocument(data)
}
