//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	assert.NotEqual(t, ErrManifest, ErrDiscovery)
	assert.NotEqual(t, ErrFlavor, ErrTargetDir)
	assert.NotEqual(t, ErrTargetDir, ErrTemplateNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "flavor selection failed",
		Message:  "invalid flavor",
		Location: "/starters/templates/agent",
		Context:  map[string]string{"Template": "agent"},
		Hint:     "Run 'agentstack templates list' to see available templates",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: flavor selection failed")
	assert.Contains(t, output, "Location: /starters/templates/agent")
	assert.Contains(t, output, "Template: agent")
	assert.Contains(t, output, "invalid flavor")
	assert.Contains(t, output, "Hint: Run 'agentstack templates list'")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrFlavor,
	}

	assert.True(t, errors.Is(detail, ErrFlavor))
	assert.Equal(t, ErrFlavor, detail.Unwrap())
}

func TestNewTargetDirError(t *testing.T) {
	err := NewTargetDirError(
		"directory is not empty",
		"/tmp/my-app",
		"Choose an empty or non-existent directory.",
	)

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrTargetDir))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "target directory unusable", detail.Type)
	assert.Equal(t, "directory is not empty", detail.Message)
	assert.Equal(t, "/tmp/my-app", detail.Location)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrDiscovery, "templates root missing")

	assert.True(t, errors.Is(wrapped, ErrDiscovery))
	assert.Contains(t, wrapped.Error(), "templates root missing")
}
