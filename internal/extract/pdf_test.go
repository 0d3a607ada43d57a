// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"os"
	"testing"
)

func TestPDFExtractor_InvalidStructure(t *testing.T) {
	path := fixturePath(t, "garbage.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 but nothing else here"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := (&PDFExtractor{}).Extract(path)
	if err == nil {
		t.Fatal("expected error for structurally invalid PDF")
	}

	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentError, got %T", err)
	}
	if docErr.Type != ErrorTypeParseFailed {
		t.Errorf("expected parse_failed, got %s", docErr.Type)
	}
	if docErr.Path != path {
		t.Errorf("error should carry the source path, got %s", docErr.Path)
	}
}

func TestPDFExtractor_NotAPDF(t *testing.T) {
	path := fixturePath(t, "plain.pdf")
	if err := os.WriteFile(path, []byte("just some text"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := (&PDFExtractor{}).Extract(path); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}
