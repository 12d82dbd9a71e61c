// Package generator materializes a template flavor into a project directory.
package generator

import (
	"fmt"
	"os"

	"github.com/agentstack/cli/internal/discovery"
	oerrors "github.com/agentstack/cli/internal/errors"
	"github.com/agentstack/cli/internal/output"
)

// Options configures project generation.
type Options struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// TemplateID is the template to materialize.
	TemplateID string

	// Flavor is the template variant to materialize.
	Flavor string

	// ProjectName is substituted for the placeholder tokens.
	ProjectName string

	// StartersPath is the starters root containing templates/.
	StartersPath string
}

// Result summarizes a completed generation.
type Result struct {
	// FilesWritten counts the files materialized into the target, including
	// bootstrapped env files.
	FilesWritten int
}

// Generate creates a new project from a template flavor. Each step is a hard
// gate: the target directory is validated before any write, so a failed
// invocation either leaves the filesystem untouched or fails partway through
// the copy with the partial tree left for the caller to inspect.
func Generate(opts Options) (Result, error) {
	var result Result

	srcPath := discovery.ResolveFlavorPath(opts.StartersPath, opts.TemplateID, opts.Flavor)
	if !isDir(srcPath) {
		return result, oerrors.NewTemplateNotFoundError(
			fmt.Sprintf("template %q flavor %q not found", opts.TemplateID, opts.Flavor),
			srcPath,
			"Run 'agentstack templates list' to see available templates and flavors.",
		)
	}

	if err := checkTargetDir(opts.TargetDir); err != nil {
		return result, err
	}

	output.Debug("generating project",
		"template", opts.TemplateID,
		"flavor", opts.Flavor,
		"source", srcPath,
		"target", opts.TargetDir)

	copied, err := copyTree(srcPath, opts.TargetDir)
	if err != nil {
		return result, fmt.Errorf("copying template: %w", err)
	}
	result.FilesWritten = copied

	subs := SubstitutionMap(opts.ProjectName)
	if err := applySubstitutions(opts.TargetDir, subs); err != nil {
		return result, fmt.Errorf("substituting placeholders: %w", err)
	}

	bootstrapped, err := bootstrapEnvFiles(srcPath, opts.TargetDir)
	if err != nil {
		return result, fmt.Errorf("bootstrapping env files: %w", err)
	}
	result.FilesWritten += bootstrapped

	if err := EnsureGitignoreHasEnvEntries(opts.TargetDir); err != nil {
		return result, fmt.Errorf("updating .gitignore: %w", err)
	}

	return result, nil
}

// checkTargetDir validates the target directory before any mutation.
func checkTargetDir(targetDir string) error {
	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		// Directory doesn't exist, will be created by the copy.
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return oerrors.NewTargetDirError(
			fmt.Sprintf("%s exists and is not a directory", targetDir),
			targetDir,
			"Choose a different target path.",
		)
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 {
		return oerrors.NewTargetDirError(
			fmt.Sprintf("directory %s is not empty", targetDir),
			targetDir,
			"Choose an empty or non-existent directory.",
		)
	}

	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
