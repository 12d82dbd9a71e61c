package generator

import (
	"os"
	"path/filepath"
	"strings"
)

// gitignoreEnvEntries are the entries every generated project must ignore.
var gitignoreEnvEntries = []string{".env.agent", ".env.client"}

// EnsureGitignoreHasEnvEntries makes sure the target's .gitignore ignores the
// bootstrapped env files. A missing .gitignore is created with exactly these
// entries; an existing one gets only the entries not already present as a
// trimmed whole-line match. Idempotent: a second application is a no-op.
func EnsureGitignoreHasEnvEntries(targetDir string) error {
	path := filepath.Join(targetDir, ".gitignore")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		content := strings.Join(gitignoreEnvEntries, "\n") + "\n"
		return os.WriteFile(path, []byte(content), 0o644)
	}

	content := string(data)
	present := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, entry := range gitignoreEnvEntries {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	for _, entry := range missing {
		b.WriteString(entry)
		b.WriteString("\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
