// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

// Command dxfgen reads the Entities, Objects and TableEntries schema
// documents under spec/ and writes, for each, a generated_*.go.generated
// stub holding one register*Type call per concrete record. It does not
// produce the record structs or their readPair/write codecs: those live in
// the hand-authored generated_*.go files this repository checks in.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/deltacad/dxf"
)

var registerTmpl = template.Must(template.New("register").Parse(
	`	register{{.Kind}}Type("{{.GoName}}", []string{ {{range .TypeStrings}}"{{.}}", {{end}}}, func() {{.Kind}}Type { return &{{.GoName}}{} })
`))

type recordInfo struct {
	Kind        string // "Entity", "Object", or "TableEntry"
	GoName      string
	TypeStrings []string
}

func loadSchema(path string) (*dxf.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dxf.ParseSchemaDocument(data)
}

// emitRegistrations writes the `register*Type(...)` call for every
// concrete record in doc, tagged with kind ("Entity"/"Object"/"TableEntry").
func emitRegistrations(w *strings.Builder, doc *dxf.SchemaDocument, kind string) error {
	for _, rec := range doc.Records {
		info := recordInfo{Kind: kind, GoName: rec.Name, TypeStrings: rec.TypeStrings()}
		if len(info.TypeStrings) == 0 {
			info.TypeStrings = []string{rec.Name}
		}
		if err := registerTmpl.Execute(w, info); err != nil {
			return err
		}
	}
	return nil
}

func generate(specDir, outDir string) error {
	sources := []struct {
		file string
		kind string
		out  string
	}{
		{"EntitiesSpec.xml", "Entity", "generated_entities.go"},
		{"ObjectsSpec.xml", "Object", "generated_objects.go"},
		{"TableEntriesSpec.xml", "TableEntry", "generated_tables.go"},
	}

	for _, src := range sources {
		path := filepath.Join(specDir, src.file)
		doc, err := loadSchema(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		var body strings.Builder
		body.WriteString("// Code generated by dxfgen; DO NOT EDIT.\n\npackage dxf\n\nfunc init() {\n")
		if err := emitRegistrations(&body, doc, src.kind); err != nil {
			return err
		}
		body.WriteString("}\n")

		outPath := filepath.Join(outDir, src.out+".generated")
		if err := os.WriteFile(outPath, []byte(body.String()), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s (registrations only; field codecs are hand-authored)\n", outPath)
	}
	return nil
}

func main() {
	specDir := flag.String("spec", "spec", "directory containing the *Spec.xml schema files")
	outDir := flag.String("out", ".", "directory to write generated_*.go.generated registration stubs into")
	flag.Parse()

	if err := generate(*specDir, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
