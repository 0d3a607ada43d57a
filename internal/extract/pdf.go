// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor extracts the text layer of PDF documents. Scanned PDFs have
// no text layer and extract to an empty body; OCR is out of scope.
type PDFExtractor struct{}

// Extract validates the PDF structure and walks its pages in order,
// honoring page boundaries
func (e *PDFExtractor) Extract(filePath string) (content *TextContent, err error) {
	// The text-layer parser panics on some malformed structures; turn that
	// into an ordinary parse error.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = NewDocumentError(filePath, "PDF Document", ErrorTypeParseFailed, fmt.Sprintf("text layer extraction panicked: %v", r), nil)
		}
	}()

	pdfConfig := model.NewDefaultConfiguration()
	if err := api.ValidateFile(filePath, pdfConfig); err != nil {
		return nil, NewDocumentError(filePath, "PDF Document", ErrorTypeParseFailed, "invalid PDF structure", err)
	}

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, NewDocumentError(filePath, "PDF Document", ErrorTypeParseFailed, "cannot open PDF", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page without an extractable text layer is skipped, not fatal;
			// scanned pages land here.
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return finishContent(&TextContent{
		Filename: filepath.Base(filePath),
		Format:   "PDF Document",
		Text:     strings.Join(pages, "\n"),
	}), nil
}
