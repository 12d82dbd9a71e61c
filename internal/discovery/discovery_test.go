package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/agentstack/cli/internal/errors"
)

// newStartersRoot creates a starters root with the given template/flavor
// directories and optional manifest content.
func newStartersRoot(t *testing.T, manifestContent string, flavorDirs ...string) string {
	t.Helper()
	root := t.TempDir()

	templatesDir := filepath.Join(root, "templates")
	require.NoError(t, os.MkdirAll(templatesDir, 0o755))

	for _, dir := range flavorDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(templatesDir, dir), 0o755))
	}

	if manifestContent != "" {
		path := filepath.Join(templatesDir, "manifest.json")
		require.NoError(t, os.WriteFile(path, []byte(manifestContent), 0o644))
	}

	return root
}

func TestDiscoverMissingTemplatesRoot(t *testing.T) {
	root := t.TempDir()

	_, err := Discover(root, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrDiscovery))
	assert.Contains(t, err.Error(), filepath.Join(root, "templates"))
}

func TestDiscoverDirectoryScan(t *testing.T) {
	root := newStartersRoot(t, "",
		"agent/ts",
		"agent/py",
		"web/ts",
		"empty-template", // no flavor subdirectories
	)

	catalog, err := Discover(root, nil)
	require.NoError(t, err)

	require.Len(t, catalog, 2)
	assert.Equal(t, "agent", catalog[0].ID)
	assert.Equal(t, "agent", catalog[0].Name)
	assert.Empty(t, catalog[0].Description)
	assert.ElementsMatch(t, []string{"ts", "py"}, catalog[0].Flavors)
	assert.Equal(t, "web", catalog[1].ID)
}

func TestDiscoverManifestFiltersMissingFlavors(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d", "flavors": ["ts", "py", "go"]},
    {"id": "ghost", "name": "Ghost", "description": "d", "flavors": ["ts"]}
  ]
}`
	// go flavor and the whole ghost template have no directories.
	root := newStartersRoot(t, manifestContent, "agent/ts", "agent/py")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	assert.Equal(t, "agent", catalog[0].ID)
	assert.Equal(t, []string{"ts", "py"}, catalog[0].Flavors)
}

func TestDiscoverManifestDropsTemplateWithNoSurvivingFlavor(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d", "flavors": ["go"]}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/ts")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestDiscoverFallbackOnBadManifest(t *testing.T) {
	root := newStartersRoot(t, "this is not json", "agent/ts")

	var warning string
	catalog, err := Discover(root, func(msg string) { warning = msg })
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	assert.Equal(t, "agent", catalog[0].ID)
	assert.Equal(t, "agent", catalog[0].Name)
	assert.Empty(t, catalog[0].Description)
	assert.Equal(t, []string{"ts"}, catalog[0].Flavors)

	assert.Contains(t, warning, "Warning:")
	assert.Contains(t, warning, "manifest")
}

func TestDiscoverFlavorPathOverride(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d",
     "flavors": ["ts", {"id": "py", "path": "python"}]}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/ts", "agent/python")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)

	require.Len(t, catalog, 1)
	assert.Equal(t, []string{"ts", "py"}, catalog[0].Flavors)
	// Only renamed flavors appear in FlavorPaths.
	assert.Equal(t, map[string]string{"py": "python"}, catalog[0].FlavorPaths)
}

func TestDiscoverSorting(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "zeta", "name": "Zeta", "description": "d", "flavors": ["ts"]},
    {"id": "alpha", "name": "alpha", "description": "d", "flavors": ["ts"]},
    {"id": "second", "name": "Second", "description": "d", "flavors": ["ts"], "order": 2},
    {"id": "first", "name": "First", "description": "d", "flavors": ["ts"], "order": 1}
  ]
}`
	root := newStartersRoot(t, manifestContent,
		"zeta/ts", "alpha/ts", "second/ts", "first/ts")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)

	ids := make([]string, 0, len(catalog))
	for _, tmpl := range catalog {
		ids = append(ids, tmpl.ID)
	}

	// Ordered entries first by order, unordered after, case-insensitive by name.
	assert.Equal(t, []string{"first", "second", "alpha", "zeta"}, ids)
}

func TestDiscoverCarriesManifestMetadata(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "An agent starter",
     "flavors": ["ts"], "category": "ai", "aliases": ["bot"],
     "hidden": true, "deprecated": true, "order": 5}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/ts")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	tmpl := catalog[0]
	assert.Equal(t, "An agent starter", tmpl.Description)
	assert.Equal(t, "ai", tmpl.Category)
	assert.Equal(t, []string{"bot"}, tmpl.Aliases)
	assert.True(t, tmpl.Hidden)
	assert.True(t, tmpl.Deprecated)
	require.NotNil(t, tmpl.Order)
	assert.Equal(t, float64(5), *tmpl.Order)
}

func TestResolveFlavorPath(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d",
     "flavors": ["ts", {"id": "py", "path": "python"}]}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/ts", "agent/python")
	templatesDir := filepath.Join(root, "templates")

	tests := []struct {
		name     string
		template string
		flavor   string
		want     string
	}{
		{"plain flavor", "agent", "ts", filepath.Join(templatesDir, "agent", "ts")},
		{"overridden flavor", "agent", "py", filepath.Join(templatesDir, "agent", "python")},
		{"unknown flavor falls back to naive layout", "agent", "go", filepath.Join(templatesDir, "agent", "go")},
		{"unknown template falls back to naive layout", "web", "ts", filepath.Join(templatesDir, "web", "ts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFlavorPath(root, tt.template, tt.flavor)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFlavorPathWithoutManifest(t *testing.T) {
	root := newStartersRoot(t, "", "agent/ts")

	got := ResolveFlavorPath(root, "agent", "ts")
	assert.Equal(t, filepath.Join(root, "templates", "agent", "ts"), got)
}

func TestTemplateExists(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d",
     "flavors": [{"id": "py", "path": "python"}]}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/python")

	assert.True(t, TemplateExists(root, "agent", "py"))
	assert.False(t, TemplateExists(root, "agent", "go"))
	assert.False(t, TemplateExists(root, "web", "ts"))
}

func TestResolutionMatchesDiscovery(t *testing.T) {
	manifestContent := `{
  "templates": [
    {"id": "agent", "name": "Agent", "description": "d",
     "flavors": ["ts", {"id": "py", "path": "python"}]}
  ]
}`
	root := newStartersRoot(t, manifestContent, "agent/ts", "agent/python")

	catalog, err := Discover(root, nil)
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	tmpl := catalog[0]
	for _, flavor := range tmpl.Flavors {
		sub := flavor
		if override, ok := tmpl.FlavorPaths[flavor]; ok {
			sub = override
		}
		assert.Equal(t, filepath.Join(tmpl.Path, sub), ResolveFlavorPath(root, tmpl.ID, flavor))
	}
}
