// Package sanitize derives machine-safe identifiers from human project names.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	pkgSeparators   = regexp.MustCompile(`[\s_]+`)
	pkgInvalidRunes = regexp.MustCompile(`[^a-z0-9\-@/]`)
	pkgBadPrefix    = regexp.MustCompile(`^[^a-z@]+`)
	pkgDashRuns     = regexp.MustCompile(`-{2,}`)

	pySeparators   = regexp.MustCompile(`[\s\-]+`)
	pyInvalidRunes = regexp.MustCompile(`[^a-z0-9_]`)
	pyBadPrefix    = regexp.MustCompile(`^[^a-z]+`)
	pyUnderscores  = regexp.MustCompile(`_{2,}`)
)

// ToPackageName converts a project name into a valid npm-style package name.
// Applying it to its own output returns the same value.
func ToPackageName(name string) string {
	s := strings.ToLower(name)
	s = pkgSeparators.ReplaceAllString(s, "-")
	s = pkgInvalidRunes.ReplaceAllString(s, "")
	s = pkgBadPrefix.ReplaceAllString(s, "")
	s = pkgDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ToPythonPackage converts a project name into a valid Python module name.
// Applying it to its own output returns the same value.
func ToPythonPackage(name string) string {
	s := strings.ToLower(name)
	s = pySeparators.ReplaceAllString(s, "_")
	s = pyInvalidRunes.ReplaceAllString(s, "")
	s = pyBadPrefix.ReplaceAllString(s, "")
	s = pyUnderscores.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
