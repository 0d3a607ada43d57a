// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// slideRunTag is the local name of the DrawingML text-run element (a:t)
const slideRunTag = "t"

// PptxExtractor extracts text from PowerPoint presentations. Slides live as
// ppt/slides/slideN.xml members; archive order is not slide order, so slides
// are re-sorted by the numeric suffix in their member path.
type PptxExtractor struct{}

// Extract collects each slide's text runs in slide order and labels every
// slide block with its 1-based position
func (e *PptxExtractor) Extract(filePath string) (*TextContent, error) {
	members, err := ReadPackageMembers(filePath, func(memberPath string) bool {
		return strings.HasPrefix(memberPath, "ppt/slides/slide") && strings.HasSuffix(memberPath, ".xml")
	})
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		// A deck without slide parts extracts to nothing; that is valid.
		return finishContent(&TextContent{
			Filename: filepath.Base(filePath),
			Format:   "PowerPoint Presentation",
		}), nil
	}

	SortMembersByOrdinal(members)

	blocks := make([]string, 0, len(members))
	for i, slide := range members {
		root, err := ParseTree(slide.Data)
		if err != nil {
			return nil, NewDocumentError(filePath, "PowerPoint Presentation", ErrorTypeParseFailed, "cannot parse "+slide.Path, err)
		}

		body := JoinRuns(CollectTextRuns(root, slideRunTag))
		label := fmt.Sprintf("-- Slide %d --", i+1)
		if body == "" {
			blocks = append(blocks, label)
			continue
		}
		blocks = append(blocks, label+"\n"+body)
	}

	return finishContent(&TextContent{
		Filename: filepath.Base(filePath),
		Format:   "PowerPoint Presentation",
		Text:     strings.Join(blocks, "\n\n"),
	}), nil
}
