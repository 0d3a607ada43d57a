// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package assembler combines multiple extracted documents into one labeled
// prompt block.
package assembler

import (
	"os"
	"path/filepath"
	"strings"

	"docprompt/internal/extract"
	"docprompt/internal/observability"
)

// Assembler resolves input files, dispatches them to format extractors and
// concatenates the results in input order
type Assembler struct {
	observer *observability.StandardObserver
}

// New creates an assembler
func New(observer *observability.StandardObserver) *Assembler {
	return &Assembler{observer: observer}
}

// Combine turns an ordered list of file paths into one combined text block.
// Each file contributes a "### {name}" header followed by its extracted
// body; blocks join with a blank line.
//
// The batch is atomic: the first missing or unreadable file aborts the whole
// combination and no later file is touched.
func (a *Assembler) Combine(paths []string) (string, error) {
	blocks := make([]string, 0, len(paths))

	for _, path := range paths {
		finish := a.observer.StartTiming("assembler", "extract", path)

		absPath, err := filepath.Abs(path)
		if err != nil {
			finish(false, nil)
			return "", extract.NewFileNotFoundError(path, err)
		}
		if _, err := os.Stat(absPath); err != nil {
			finish(false, nil)
			return "", extract.NewFileNotFoundError(absPath, err)
		}

		content, err := extract.ForFile(absPath).Extract(absPath)
		if err != nil {
			finish(false, nil)
			return "", err
		}

		finish(true, map[string]interface{}{
			"format":     content.Format,
			"word_count": content.WordCount,
		})

		blocks = append(blocks, "### "+filepath.Base(absPath)+"\n"+content.Text)
	}

	return strings.Join(blocks, "\n\n"), nil
}
