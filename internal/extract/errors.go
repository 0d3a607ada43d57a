// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies extraction failures
type ErrorType string

const (
	// File-related errors
	ErrorTypeFileAccess ErrorType = "file_access"

	// Container-related errors
	ErrorTypeContainerRead ErrorType = "container_read"

	// Format-related errors
	ErrorTypeParseFailed ErrorType = "parse_failed"
)

// ErrNoMatchingMembers marks the cause of a DocumentError raised by
// extractors that require a container member and found none. An empty slide
// deck is valid, a docx without its document part is not.
var ErrNoMatchingMembers = errors.New("no matching members in container")

// DocumentError represents a failure while extracting text from one document
type DocumentError struct {
	Path    string
	Format  string
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (de *DocumentError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("extraction failed for %s", de.Path))

	if de.Format != "" {
		parts = append(parts, fmt.Sprintf("format=%s", de.Format))
	}

	parts = append(parts, fmt.Sprintf("error=%s", de.Type))

	if de.Message != "" {
		parts = append(parts, fmt.Sprintf("message=%s", de.Message))
	}

	if de.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", de.Cause))
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying error
func (de *DocumentError) Unwrap() error {
	return de.Cause
}

// NewDocumentError creates a new document extraction error
func NewDocumentError(path, format string, errorType ErrorType, message string, cause error) *DocumentError {
	return &DocumentError{
		Path:    path,
		Format:  format,
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewFileNotFoundError creates an error for a missing input file
func NewFileNotFoundError(path string, cause error) *DocumentError {
	return &DocumentError{
		Path:    path,
		Type:    ErrorTypeFileAccess,
		Message: "file not found",
		Cause:   cause,
	}
}
