// Package errors provides sentinel errors for the agentstack CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known failure conditions.
var (
	// ErrManifest indicates a malformed templates manifest. Recoverable:
	// discovery degrades to a directory scan with a warning.
	ErrManifest = errors.New("manifest error")

	// ErrDiscovery indicates the templates root is missing entirely.
	ErrDiscovery = errors.New("discovery error")

	// ErrFlavor indicates no flavor could be determined for a template.
	ErrFlavor = errors.New("flavor error")

	// ErrTargetDir indicates the generation target is unusable.
	ErrTargetDir = errors.New("target directory error")

	// ErrTemplateNotFound indicates the resolved template path does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)

// DetailError captures structured error information for user-facing failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewFlavorError creates a flavor selection error with details.
func NewFlavorError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "flavor selection failed",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrFlavor,
	}
}

// NewTargetDirError creates a target directory error with details.
func NewTargetDirError(message, location, hint string) error {
	return &DetailError{
		Type:     "target directory unusable",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrTargetDir,
	}
}

// NewTemplateNotFoundError creates a template not found error with details.
func NewTemplateNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "template not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrTemplateNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
