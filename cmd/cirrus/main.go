// Copyright 2014 Joel Scoble (github:mohae). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cirrus translates a Snow document into HTML.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohae/snow"
	"github.com/mohae/snow/cirrus"
)

var rootCmd = &cobra.Command{
	Use:          "cirrus <src> [dst]",
	Short:        "cirrus translates a Snow document to HTML",
	SilenceUsage: true,
	Args:         cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		dst := defaultDst(src)
		if len(args) == 2 {
			dst = args[1]
		}
		return translate(src, dst)
	},
}

// defaultDst replaces src's extension with .html.
func defaultDst(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".html"
}

func translate(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cirrus: opening %s: %w", src, err)
	}
	defer f.Close()

	doc, err := snow.Load(cirrus.TagSet, f)
	if err != nil {
		return fmt.Errorf("cirrus: parsing %s: %w", src, err)
	}

	out, err := cirrus.Render(doc)
	if err != nil {
		return fmt.Errorf("cirrus: rendering %s: %w", src, err)
	}

	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return fmt.Errorf("cirrus: writing %s: %w", dst, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
