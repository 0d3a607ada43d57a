// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"path/filepath"
)

// wordRunTag is the local name of the Word text-run element (w:t)
const wordRunTag = "t"

// DocxExtractor extracts text from Word documents. A .docx file is a ZIP
// container whose main body lives in word/document.xml.
type DocxExtractor struct{}

// Extract reads the document body part and collects its text runs in
// document order
func (e *DocxExtractor) Extract(filePath string) (*TextContent, error) {
	members, err := ReadPackageMembers(filePath, func(memberPath string) bool {
		return memberPath == "word/document.xml"
	})
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, NewDocumentError(filePath, "Word Document", ErrorTypeParseFailed, "word/document.xml not found in archive", ErrNoMatchingMembers)
	}

	root, err := ParseTree(members[0].Data)
	if err != nil {
		return nil, NewDocumentError(filePath, "Word Document", ErrorTypeParseFailed, "cannot parse document body", err)
	}

	return finishContent(&TextContent{
		Filename: filepath.Base(filePath),
		Format:   "Word Document",
		Text:     JoinRuns(CollectTextRuns(root, wordRunTag)),
	}), nil
}
