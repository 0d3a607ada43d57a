// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extract turns heterogeneous document files into plain text.
//
// Each supported format has its own extractor strategy. Packaged XML formats
// (docx, pptx) are read as ZIP containers whose members are parsed into a
// typed node tree; PDF files go through their text layer; anything else is
// treated as plain text.
package extract

import (
	"path/filepath"
	"strings"
)

// TextContent represents the extracted text content from a document
type TextContent struct {
	Filename  string
	Format    string
	Text      string
	WordCount int
	CharCount int
	LineCount int
}

// Extractor produces one normalized text string for one input file
type Extractor interface {
	Extract(filePath string) (*TextContent, error)
}

// ForExtension selects the extractor strategy for a file extension. The
// match is case-insensitive; unknown extensions fall back to plain text.
func ForExtension(ext string) Extractor {
	switch strings.ToLower(ext) {
	case ".docx":
		return &DocxExtractor{}
	case ".pptx":
		return &PptxExtractor{}
	case ".pdf":
		return &PDFExtractor{}
	case ".jpg", ".jpeg", ".png", ".tiff":
		return &ImageExtractor{}
	default:
		// .md, .txt, .json and anything unrecognized
		return &PlainTextExtractor{}
	}
}

// ForFile selects the extractor strategy for a file path
func ForFile(filePath string) Extractor {
	return ForExtension(filepath.Ext(filePath))
}

func finishContent(content *TextContent) *TextContent {
	content.WordCount = countWords(content.Text)
	content.CharCount = len(content.Text)
	content.LineCount = strings.Count(content.Text, "\n") + 1
	return content
}

// countWords counts the number of words in a text
func countWords(text string) int {
	return len(strings.Fields(text))
}
