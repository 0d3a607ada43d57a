// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"testing"
)

const docxBodyXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First run</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second   run</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestDocxExtractor_CollectsRunsInOrder(t *testing.T) {
	path := fixturePath(t, "sample.docx")
	writeZipFixture(t, path,
		[]string{"[Content_Types].xml", "word/document.xml"},
		map[string]string{
			"[Content_Types].xml": "<Types/>",
			"word/document.xml":   docxBodyXML,
		})

	content, err := (&DocxExtractor{}).Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Text != "First run\nSecond run" {
		t.Errorf("unexpected body: %q", content.Text)
	}
	if content.Format != "Word Document" {
		t.Errorf("unexpected format: %s", content.Format)
	}
}

func TestDocxExtractor_MissingDocumentPart(t *testing.T) {
	path := fixturePath(t, "empty.docx")
	writeZipFixture(t, path, []string{"word/styles.xml"}, map[string]string{"word/styles.xml": "<s/>"})

	_, err := (&DocxExtractor{}).Extract(path)
	if err == nil {
		t.Fatal("expected error when document part is missing")
	}

	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentError, got %T", err)
	}
	if docErr.Type != ErrorTypeParseFailed {
		t.Errorf("expected parse_failed, got %s", docErr.Type)
	}
	if !errors.Is(err, ErrNoMatchingMembers) {
		t.Errorf("expected ErrNoMatchingMembers as cause, got %v", err)
	}
}

func TestDocxExtractor_MalformedBody(t *testing.T) {
	path := fixturePath(t, "broken.docx")
	writeZipFixture(t, path, []string{"word/document.xml"},
		map[string]string{"word/document.xml": "<w:document><w:body>"})

	_, err := (&DocxExtractor{}).Extract(path)
	if err == nil {
		t.Fatal("expected error for malformed document body")
	}
}

func TestDocxExtractor_Idempotent(t *testing.T) {
	path := fixturePath(t, "sample.docx")
	writeZipFixture(t, path, []string{"word/document.xml"},
		map[string]string{"word/document.xml": docxBodyXML})

	first, err := (&DocxExtractor{}).Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := (&DocxExtractor{}).Extract(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Text != second.Text {
		t.Error("re-running extraction on an unmodified file must yield identical text")
	}
}
