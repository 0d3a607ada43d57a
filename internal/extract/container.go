// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"archive/zip"
	"io"
	"regexp"
	"sort"
	"strconv"
)

// PackageMember is one XML part read out of a ZIP-structured document container
type PackageMember struct {
	// Path is the member's path inside the archive
	Path string

	// Data is the member's full decompressed content
	Data []byte

	// Ordinal is the numeric suffix parsed from the member path, or 0 when
	// the path carries no parsable suffix
	Ordinal int
}

var memberOrdinalRe = regexp.MustCompile(`(\d+)\.xml$`)

// MemberOrdinal parses the numeric suffix embedded in a member path
// (e.g. "ppt/slides/slide10.xml" -> 10). Paths without a suffix get 0.
func MemberOrdinal(memberPath string) int {
	matches := memberOrdinalRe.FindStringSubmatch(memberPath)
	if len(matches) < 2 {
		return 0
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0
	}
	return n
}

// ReadPackageMembers opens a ZIP-structured document container and returns
// the full content of every member whose path satisfies match, in archive
// order. Archive order carries no semantic meaning for Office containers;
// callers needing slide order must re-sort with SortMembersByOrdinal.
//
// A file that is not a valid ZIP archive yields a container_read
// DocumentError. No matching member is not an error: the result is simply
// the empty set, and callers that require a member decide what that means.
func ReadPackageMembers(path string, match func(memberPath string) bool) ([]PackageMember, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, NewDocumentError(path, "", ErrorTypeContainerRead, "not a valid document container", err)
	}
	defer reader.Close()

	var members []PackageMember
	for _, file := range reader.File {
		if !match(file.Name) {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, NewDocumentError(path, "", ErrorTypeContainerRead, "cannot open member "+file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, NewDocumentError(path, "", ErrorTypeContainerRead, "cannot read member "+file.Name, err)
		}

		members = append(members, PackageMember{
			Path:    file.Name,
			Data:    data,
			Ordinal: MemberOrdinal(file.Name),
		})
	}

	return members, nil
}

// SortMembersByOrdinal sorts members ascending by parsed ordinal. The sort is
// stable so members without a parsable suffix keep their archive order.
func SortMembersByOrdinal(members []PackageMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Ordinal < members[j].Ordinal
	})
}
