// Package cmd provides command implementations for the agentstack CLI.
package cmd

import (
	"errors"

	oerrors "github.com/agentstack/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates bad input: unknown flavor, unusable
	// target directory, or a malformed manifest surfaced as fatal.
	ExitValidationError = 2

	// ExitDiscoveryError indicates the starters source is misconfigured.
	ExitDiscoveryError = 3

	// ExitNotFound indicates a template or flavor was not found.
	ExitNotFound = 4
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrFlavor),
		errors.Is(err, oerrors.ErrTargetDir),
		errors.Is(err, oerrors.ErrManifest):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrDiscovery):
		return ExitDiscoveryError
	case errors.Is(err, oerrors.ErrTemplateNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
