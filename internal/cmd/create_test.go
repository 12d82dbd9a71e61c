package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstack/cli/internal/discovery"
	oerrors "github.com/agentstack/cli/internal/errors"
)

func testCatalog() []discovery.TemplateInfo {
	return []discovery.TemplateInfo{
		{ID: "agent", Name: "Agent", Flavors: []string{"ts", "py"}, Aliases: []string{"bot"}},
		{ID: "web", Name: "Web", Flavors: []string{"ts"}},
	}
}

func TestChooseTemplateByID(t *testing.T) {
	tmpl, err := chooseTemplate(testCatalog(), "web")
	require.NoError(t, err)
	assert.Equal(t, "web", tmpl.ID)
}

func TestChooseTemplateByAlias(t *testing.T) {
	tmpl, err := chooseTemplate(testCatalog(), "bot")
	require.NoError(t, err)
	assert.Equal(t, "agent", tmpl.ID)
}

func TestChooseTemplateUnknown(t *testing.T) {
	_, err := chooseTemplate(testCatalog(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "agent, web")
	assert.Contains(t, err.Error(), "templates list")
}

func TestChooseTemplateAllHidden(t *testing.T) {
	catalog := []discovery.TemplateInfo{
		{ID: "internal-a", Name: "A", Flavors: []string{"ts"}, Hidden: true},
		{ID: "internal-b", Name: "B", Flavors: []string{"ts"}, Hidden: true},
	}

	_, err := chooseTemplate(catalog, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "hidden")

	// Hidden templates stay addressable by explicit id.
	tmpl, err := chooseTemplate(catalog, "internal-a")
	require.NoError(t, err)
	assert.Equal(t, "internal-a", tmpl.ID)
}

func TestChooseTemplateEmptyWithoutTerminal(t *testing.T) {
	// Test processes have no TTY on stdout, so the interactive path is
	// unavailable and an explicit template is required.
	_, err := chooseTemplate(testCatalog(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrTemplateNotFound))
	assert.Contains(t, err.Error(), "--template")
}
