// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeZipFixture writes a ZIP container with the given members. Member
// order in the archive follows the order slice, not the map.
func writeZipFixture(t *testing.T, path string, order []string, members map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range order {
		member, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create member %s: %v", name, err)
		}
		if _, err := member.Write([]byte(members[name])); err != nil {
			t.Fatalf("failed to write member %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize fixture: %v", err)
	}
}

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
