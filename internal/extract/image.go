// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ImageExtractor contributes an image's textual EXIF metadata to the prompt.
// Raster content itself is not readable without OCR, so an image with no
// EXIF block extracts to an empty body.
type ImageExtractor struct{}

// exifWalker collects every EXIF tag into a map
type exifWalker struct {
	tags map[string]string
}

// Walk implements the exif.Walker interface
func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	if tag != nil {
		w.tags[string(name)] = strings.Trim(tag.String(), `"`)
	}
	return nil
}

// Extract decodes EXIF metadata and renders it as "Tag: value" lines in
// stable (sorted) tag order
func (e *ImageExtractor) Extract(filePath string) (*TextContent, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, NewDocumentError(filePath, "Image", ErrorTypeFileAccess, "cannot open file", err)
	}
	defer f.Close()

	content := &TextContent{
		Filename: filepath.Base(filePath),
		Format:   "Image",
	}

	x, err := exif.Decode(f)
	if err != nil {
		// No EXIF block; nothing to contribute.
		return finishContent(content), nil
	}

	walker := &exifWalker{tags: make(map[string]string)}
	_ = x.Walk(walker)

	names := make([]string, 0, len(walker.tags))
	for name := range walker.tags {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		if value := strings.TrimSpace(walker.tags[name]); value != "" {
			lines = append(lines, name+": "+value)
		}
	}

	content.Text = strings.Join(lines, "\n")
	return finishContent(content), nil
}
