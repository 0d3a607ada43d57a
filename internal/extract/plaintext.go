// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
)

// PlainTextExtractor reads a file's bytes verbatim as UTF-8 text. It is the
// default strategy for .md, .txt, .json and any unrecognized extension.
type PlainTextExtractor struct{}

// Extract reads the file content without structural parsing
func (e *PlainTextExtractor) Extract(filePath string) (*TextContent, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, NewDocumentError(filePath, "Plain Text", ErrorTypeFileAccess, "cannot read file", err)
	}

	return finishContent(&TextContent{
		Filename: filepath.Base(filePath),
		Format:   "Plain Text",
		Text:     string(data),
	}), nil
}
