// Package discovery reconciles the templates manifest against the starters
// filesystem and produces the template catalog.
package discovery

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/agentstack/cli/internal/errors"
	"github.com/agentstack/cli/internal/manifest"
)

// TemplatesDirName is the directory under the starters root holding templates.
const TemplatesDirName = "templates"

// TemplateInfo describes one discoverable template. Every flavor listed is
// backed by a directory that existed on disk at discovery time.
type TemplateInfo struct {
	// ID is the template identifier.
	ID string

	// Name is the display name; defaults to ID when no manifest names it.
	Name string

	// Description is the template description; empty without a manifest.
	Description string

	// Flavors are the surviving flavor ids, in manifest (or scan) order.
	Flavors []string

	// FlavorPaths maps flavor id to its on-disk subdirectory, populated only
	// for flavors whose directory name differs from their id.
	FlavorPaths map[string]string

	// Path is the template's base directory.
	Path string

	// Order is the manifest sort weight; nil sorts after all ordered entries.
	Order *float64

	// Category is the manifest category, if any.
	Category string

	// Aliases are alternate names accepted for this template.
	Aliases []string

	// Hidden marks templates excluded from default listings.
	Hidden bool

	// Deprecated marks templates kept only for compatibility.
	Deprecated bool
}

// HasFlavor reports whether the template offers the given flavor.
func (t TemplateInfo) HasFlavor(flavor string) bool {
	for _, f := range t.Flavors {
		if f == flavor {
			return true
		}
	}
	return false
}

// TemplatesDir returns the templates directory under a starters root.
func TemplatesDir(startersRoot string) string {
	return filepath.Join(startersRoot, TemplatesDirName)
}

// ManifestPath returns the manifest location under a starters root.
func ManifestPath(startersRoot string) string {
	return filepath.Join(TemplatesDir(startersRoot), manifest.FileName)
}

// Discover produces the ordered template catalog for a starters root.
//
// The manifest is preferred when present and valid; a malformed manifest is
// reported through onWarning and discovery degrades to a directory scan. A
// missing templates directory is fatal: the starters source itself is
// misconfigured, which no fallback can repair.
func Discover(startersRoot string, onWarning func(string)) ([]TemplateInfo, error) {
	templatesDir := TemplatesDir(startersRoot)

	info, err := os.Stat(templatesDir)
	if err != nil || !info.IsDir() {
		return nil, &oerrors.DetailError{
			Type:     "templates root missing",
			Message:  fmt.Sprintf("no templates directory at %s", templatesDir),
			Location: templatesDir,
			Hint:     "Check the starters path (--starters, AGENTSTACK_STARTERS_PATH, or starters.path in config).",
			Cause:    oerrors.ErrDiscovery,
		}
	}

	result := manifest.Load(ManifestPath(startersRoot))
	switch result.Outcome {
	case manifest.Loaded:
		return fromManifest(templatesDir, result.Manifest), nil
	case manifest.Invalid:
		warn(onWarning, fmt.Sprintf("Warning: %v; falling back to directory scan", result.Err))
	case manifest.IOFailure:
		warn(onWarning, fmt.Sprintf("Warning: could not read templates manifest: %v; falling back to directory scan", result.Err))
	case manifest.Absent:
		// Silent: directory layout is the authoritative fallback.
	}

	return scan(templatesDir)
}

func warn(onWarning func(string), msg string) {
	if onWarning != nil {
		onWarning(msg)
	}
}

// fromManifest cross-validates manifest entries against the filesystem.
// Declared flavors whose directories are missing are dropped; templates with
// no surviving flavor are dropped entirely.
func fromManifest(templatesDir string, m *manifest.Manifest) []TemplateInfo {
	catalog := make([]TemplateInfo, 0, len(m.Templates))

	for _, entry := range m.Templates {
		baseDir := filepath.Join(templatesDir, entry.ID)
		if !isDir(baseDir) {
			continue
		}

		var flavors []string
		var flavorPaths map[string]string

		for _, f := range entry.Flavors {
			effective := f.EffectivePath()
			if !isDir(filepath.Join(baseDir, effective)) {
				continue
			}
			flavors = append(flavors, f.ID)
			if effective != f.ID {
				if flavorPaths == nil {
					flavorPaths = make(map[string]string)
				}
				flavorPaths[f.ID] = effective
			}
		}

		if len(flavors) == 0 {
			continue
		}

		catalog = append(catalog, TemplateInfo{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			Flavors:     flavors,
			FlavorPaths: flavorPaths,
			Path:        baseDir,
			Order:       entry.Order,
			Category:    entry.Category,
			Aliases:     entry.Aliases,
			Hidden:      entry.Hidden,
			Deprecated:  entry.Deprecated,
		})
	}

	sortCatalog(catalog)
	return catalog
}

// scan enumerates templates/<id>/<flavor>/ directly from the filesystem.
func scan(templatesDir string) ([]TemplateInfo, error) {
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrDiscovery, fmt.Sprintf("reading templates directory %s: %v", templatesDir, err))
	}

	var catalog []TemplateInfo

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		baseDir := filepath.Join(templatesDir, entry.Name())
		subEntries, err := os.ReadDir(baseDir)
		if err != nil {
			continue
		}

		var flavors []string
		for _, sub := range subEntries {
			if sub.IsDir() {
				flavors = append(flavors, sub.Name())
			}
		}

		if len(flavors) == 0 {
			continue
		}

		catalog = append(catalog, TemplateInfo{
			ID:      entry.Name(),
			Name:    entry.Name(),
			Flavors: flavors,
			Path:    baseDir,
		})
	}

	sortCatalog(catalog)
	return catalog, nil
}

// sortCatalog orders templates by explicit order (absent sorts last), then
// case-insensitive name, keeping enumeration order for full ties.
func sortCatalog(catalog []TemplateInfo) {
	sort.SliceStable(catalog, func(i, j int) bool {
		oi, oj := sortOrder(catalog[i]), sortOrder(catalog[j])
		if oi != oj {
			return oi < oj
		}
		return sortName(catalog[i]) < sortName(catalog[j])
	})
}

func sortOrder(t TemplateInfo) float64 {
	if t.Order == nil {
		return math.Inf(1)
	}
	return *t.Order
}

func sortName(t TemplateInfo) string {
	if t.Name != "" {
		return strings.ToLower(t.Name)
	}
	return strings.ToLower(t.ID)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
