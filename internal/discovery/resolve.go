package discovery

import (
	"path/filepath"

	"github.com/agentstack/cli/internal/manifest"
)

// ResolveFlavorPath returns the on-disk directory for a template flavor,
// honoring manifest path overrides. It falls back to the naive
// templates/<id>/<flavor> layout when the manifest is absent, malformed, or
// silent about that flavor, so a resolved path always matches what Discover
// reports as the flavor's location.
func ResolveFlavorPath(startersRoot, templateID, flavor string) string {
	templatesDir := TemplatesDir(startersRoot)

	result := manifest.Load(ManifestPath(startersRoot))
	if result.Outcome == manifest.Loaded {
		if entry, ok := result.Manifest.EntryByID(templateID); ok {
			if f, ok := entry.FlavorByID(flavor); ok {
				return filepath.Join(templatesDir, templateID, f.EffectivePath())
			}
		}
	}

	return filepath.Join(templatesDir, templateID, flavor)
}

// TemplateExists reports whether a template flavor's directory exists.
func TemplateExists(startersRoot, templateID, flavor string) bool {
	return isDir(ResolveFlavorPath(startersRoot, templateID, flavor))
}
