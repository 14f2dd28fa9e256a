// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/deltacad/dxf"
)

var (
	wantHeader    bool
	wantClasses   bool
	wantTables    bool
	wantBlocks    bool
	wantEntities  bool
	wantObjects   bool
	wantThumbnail bool
	wantAll       bool

	convertVersion string

	wg   sync.WaitGroup
	jobs = make(chan string)
)

func prettyPrint(v interface{}) string {
	buf, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal error: %v\n", err)
		return ""
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		return string(buf)
	}
	return pretty.String()
}

func dumpFile(path string) {
	d, err := dxf.OpenFile(path, &dxf.ReadOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}

	if wantHeader || wantAll {
		fmt.Println(prettyPrint(d.Header))
	}
	if wantClasses || wantAll {
		fmt.Println(prettyPrint(d.Classes))
	}
	if wantTables || wantAll {
		fmt.Println(prettyPrint(d.Tables))
	}
	if wantBlocks || wantAll {
		fmt.Println(prettyPrint(d.Blocks))
	}
	if wantEntities || wantAll {
		fmt.Println(prettyPrint(d.Entities))
	}
	if wantObjects || wantAll {
		fmt.Println(prettyPrint(d.Objects))
	}
	if wantThumbnail || wantAll {
		fmt.Printf("thumbnail: %d bytes\n", len(d.Thumbnail))
	}
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func dirWorker() {
	for path := range jobs {
		entries, err := os.ReadDir(path)
		if err != nil {
			wg.Done()
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				dumpFile(filepath.Join(path, entry.Name()))
			}
		}
		wg.Done()
	}
}

func walkDirs(path string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	wg.Add(1)
	jobs <- path
	for _, entry := range entries {
		if entry.IsDir() {
			walkDirs(filepath.Join(path, entry.Name()))
		}
	}
}

func runDump(cmd *cobra.Command, args []string) {
	target := args[0]
	go dirWorker()

	if isDirectory(target) {
		walkDirs(target)
		wg.Wait()
	} else {
		dumpFile(target)
	}
}

func runConvert(cmd *cobra.Command, args []string) {
	in, out := args[0], args[1]
	d, err := dxf.OpenFile(in, &dxf.ReadOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", in, err)
		os.Exit(1)
	}

	opts := &dxf.WriteOptions{}
	if convertVersion != "" {
		v, ok := dxf.ParseAcadVersion(versionCodeFor(convertVersion))
		if !ok {
			fmt.Fprintf(os.Stderr, "unrecognized version %q\n", convertVersion)
			os.Exit(1)
		}
		opts.Version = v
	}

	if err := dxf.SaveFile(out, d, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", out, err)
		os.Exit(1)
	}
}

// versionCodeFor accepts either a human name ("R2000") or an on-wire code
// ("AC1015") and normalizes to the on-wire code ParseAcadVersion expects.
func versionCodeFor(s string) string {
	for v := dxf.VersionMin; v <= dxf.VersionMax; v++ {
		if v.Name() == s {
			return v.String()
		}
	}
	return s
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dxfdump",
		Short: "A DXF drawing inspector",
		Long:  "dxfdump reads AutoCAD DXF drawings and prints their structure as JSON",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dxfdump 0.0.1")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [file or directory]",
		Short: "Dumps a drawing's sections as JSON",
		Args:  cobra.ExactArgs(1),
		Run:   runDump,
	}
	dumpCmd.Flags().BoolVar(&wantHeader, "header", false, "dump the HEADER section")
	dumpCmd.Flags().BoolVar(&wantClasses, "classes", false, "dump the CLASSES section")
	dumpCmd.Flags().BoolVar(&wantTables, "tables", false, "dump the TABLES section")
	dumpCmd.Flags().BoolVar(&wantBlocks, "blocks", false, "dump the BLOCKS section")
	dumpCmd.Flags().BoolVar(&wantEntities, "entities", false, "dump the ENTITIES section")
	dumpCmd.Flags().BoolVar(&wantObjects, "objects", false, "dump the OBJECTS section")
	dumpCmd.Flags().BoolVar(&wantThumbnail, "thumbnail", false, "report the THUMBNAILIMAGE size")
	dumpCmd.Flags().BoolVar(&wantAll, "all", false, "dump everything")

	convertCmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-saves a drawing, optionally at a different version",
		Args:  cobra.ExactArgs(2),
		Run:   runConvert,
	}
	convertCmd.Flags().StringVar(&convertVersion, "version", "", "target AutoCAD version (e.g. R2000)")

	rootCmd.AddCommand(versionCmd, dumpCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
