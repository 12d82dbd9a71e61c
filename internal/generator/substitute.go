package generator

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/agentstack/cli/internal/output"
	"github.com/agentstack/cli/internal/sanitize"
)

// Substitution maps one literal placeholder token to its replacement.
// Substitutions are applied in slice order.
type Substitution struct {
	Token string
	Value string
}

// SubstitutionMap builds the placeholder substitutions for a project name.
func SubstitutionMap(projectName string) []Substitution {
	return []Substitution{
		{Token: "__PROJECT_NAME__", Value: projectName},
		{Token: "__PACKAGE_NAME__", Value: sanitize.ToPackageName(projectName)},
		{Token: "__PY_PACKAGE__", Value: sanitize.ToPythonPackage(projectName)},
	}
}

// Extensions never inspected for substitution: images, fonts, archives, and
// native binaries.
var binaryExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".ico": true,
	".webp": true, ".avif": true, ".bmp": true, ".tiff": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	".zip": true, ".tar": true, ".gz": true, ".tgz": true, ".bz2": true,
	".xz": true, ".7z": true, ".jar": true,
	".pdf": true, ".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".bin": true, ".wasm": true, ".pyc": true, ".class": true,
}

// applySubstitutions rewrites every text file under root in place, replacing
// each placeholder token with its value. Files that look binary (by extension
// or by content) are skipped; a file that cannot be read is skipped rather
// than aborting, since the tree is already copied at this point.
func applySubstitutions(root string, subs []Substitution) error {
	stack := []string{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(dir, name)

			if entry.IsDir() {
				// Defense in depth: never rewrite vendored or VCS content.
				if name == "node_modules" || name == ".git" {
					continue
				}
				stack = append(stack, path)
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}

			if binaryExtensions[strings.ToLower(filepath.Ext(name))] {
				continue
			}

			if err := substituteFile(path, subs); err != nil {
				return err
			}
		}
	}

	return nil
}

// substituteFile rewrites one file if it is decodable text containing any
// placeholder token.
func substituteFile(path string, subs []Substitution) error {
	data, err := os.ReadFile(path)
	if err != nil {
		// Better to skip than corrupt; the copy step already succeeded.
		output.Debug("skipping unreadable file during substitution", "path", path, "error", err)
		return nil
	}

	if !utf8.Valid(data) {
		return nil
	}

	content := string(data)
	replaced := content
	for _, sub := range subs {
		replaced = strings.ReplaceAll(replaced, sub.Token, sub.Value)
	}

	if replaced == content {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(replaced), info.Mode().Perm())
}
