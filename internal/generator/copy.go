package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Directories skipped at any depth. Everything beneath them is skipped too.
var skipDirNames = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
}

// Files skipped at the template root only: package-manager lock files and a
// checked-in .env.
var rootOnlySkipFiles = map[string]bool{
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"bun.lock":          true,
	"bun.lockb":         true,
	"poetry.lock":       true,
	"uv.lock":           true,
	"Pipfile.lock":      true,
	".env":              true,
}

// Env-file templates are excluded everywhere; the bootstrap step materializes
// them under their real names instead.
const envTemplatePattern = ".env.*.template"

type copyItem struct {
	src  string
	dst  string
	root bool
}

// copyTree copies src into dst, applying the exclusion rules, and returns the
// number of files written. The walk uses an explicit worklist rather than
// recursion; symlinks are recreated as symlinks and never followed.
func copyTree(src, dst string) (int, error) {
	written := 0
	stack := []copyItem{{src: src, dst: dst, root: true}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := os.MkdirAll(item.dst, 0o755); err != nil {
			return written, fmt.Errorf("creating directory %s: %w", item.dst, err)
		}

		entries, err := os.ReadDir(item.src)
		if err != nil {
			return written, fmt.Errorf("reading directory %s: %w", item.src, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			srcPath := filepath.Join(item.src, name)
			dstPath := filepath.Join(item.dst, name)

			isSymlink := entry.Type()&os.ModeSymlink != 0

			// Exclusions go by name, so they apply to symlinks too; a link
			// named like a skipped artifact must not smuggle it in.
			if skipDirNames[name] && (entry.IsDir() || isSymlink) {
				continue
			}
			if !entry.IsDir() {
				if item.root && rootOnlySkipFiles[name] {
					continue
				}
				if ok, _ := doublestar.Match(envTemplatePattern, name); ok {
					continue
				}
			}

			if isSymlink {
				if err := copySymlink(srcPath, dstPath); err != nil {
					return written, err
				}
				written++
				continue
			}

			if entry.IsDir() {
				stack = append(stack, copyItem{src: srcPath, dst: dstPath})
				continue
			}

			if err := copyFile(srcPath, dstPath); err != nil {
				return written, err
			}
			written++
		}
	}

	return written, nil
}

// copyFile copies a regular file, preserving mode and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}

	// Best effort: timestamps are cosmetic.
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())

	return nil
}

func copySymlink(src, dst string) error {
	target, err := os.Readlink(src)
	if err != nil {
		return fmt.Errorf("reading symlink %s: %w", src, err)
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("creating symlink %s: %w", dst, err)
	}
	return nil
}
