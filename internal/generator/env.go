package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// envFileBases are the environment files bootstrapped into every project.
var envFileBases = []string{"agent", "client"}

// bootstrapEnvFiles creates .env.<base> files in the target from the source
// template's .env.<base>.template files, verbatim, and returns how many were
// created. Existing target files are left untouched so re-running generation
// never clobbers filled-in secrets.
func bootstrapEnvFiles(srcDir, targetDir string) (int, error) {
	created := 0
	for _, base := range envFileBases {
		target := filepath.Join(targetDir, ".env."+base)
		if _, err := os.Stat(target); err == nil {
			continue
		}

		source := filepath.Join(srcDir, ".env."+base+".template")
		data, err := os.ReadFile(source)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return created, fmt.Errorf("reading %s: %w", source, err)
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return created, fmt.Errorf("writing %s: %w", target, err)
		}
		created++
	}

	return created, nil
}
