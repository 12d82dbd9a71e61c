package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/agentstack/cli/internal/discovery"
	oerrors "github.com/agentstack/cli/internal/errors"
	"github.com/agentstack/cli/internal/flavor"
	"github.com/agentstack/cli/internal/generator"
	"github.com/agentstack/cli/internal/output"
)

var (
	createTemplate string
	createFlavor   string
	createDir      string
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <project-name>",
		Short: "Create a new project from a starter template",
		Long: `Create a new project from a starter template.

The project name is substituted into the generated files; a package-safe and
a Python-module-safe form are derived from it automatically.

Examples:
  # Create a project, choosing template and flavor interactively
  agentstack create my-agent

  # Create a project from a specific template and flavor
  agentstack create my-agent --template agent --flavor py

  # Create into a specific directory
  agentstack create my-agent --template agent --dir ./projects/my-agent`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template to use (see 'agentstack templates list')")
	cmd.Flags().StringVarP(&createFlavor, "flavor", "f", "", "Template flavor to use")
	cmd.Flags().StringVarP(&createDir, "dir", "d", "", "Directory to create the project in (defaults to project name)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	projectName := args[0]

	catalog, err := discovery.Discover(StartersPath(), func(msg string) {
		output.Warn(msg)
	})
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		return &oerrors.DetailError{
			Type:     "no templates available",
			Message:  "the starters root contains no usable templates",
			Location: StartersPath(),
			Hint:     "Check the starters path (--starters, AGENTSTACK_STARTERS_PATH, or starters.path in config).",
			Cause:    oerrors.ErrDiscovery,
		}
	}

	tmpl, err := chooseTemplate(catalog, createTemplate)
	if err != nil {
		return err
	}

	selection, err := flavor.Select(tmpl, flavor.Options{
		CLIFlavor:     createFlavor,
		DefaultFlavor: DefaultFlavor(),
		Prompt:        flavorPrompt(),
	})
	if err != nil {
		return err
	}

	output.Debug("flavor selected",
		"template", tmpl.ID,
		"flavor", selection.Flavor,
		"reason", string(selection.Reason),
	)

	targetDir := createDir
	if targetDir == "" {
		targetDir = projectName
	}

	var result generator.Result
	genErr := output.RunWithSpinner(cmd.Context(), func() error {
		var err error
		result, err = generator.Generate(generator.Options{
			TargetDir:    targetDir,
			TemplateID:   tmpl.ID,
			Flavor:       selection.Flavor,
			ProjectName:  projectName,
			StartersPath: StartersPath(),
		})
		return err
	}, output.WithTitle(fmt.Sprintf("Creating %s...", projectName)))
	if genErr != nil {
		return genErr
	}

	output.Println(output.StyleSummary.Render("Created ") + output.StyleNoun.Render(targetDir))
	output.Println(output.StyleDim.Render(fmt.Sprintf("  template: %s, flavor: %s (%s), %d files",
		tmpl.ID, selection.Flavor, selection.Reason, result.FilesWritten)))
	output.Println("")
	output.Println("Next steps:")
	output.Println(fmt.Sprintf("  cd %s", targetDir))
	output.Println("  fill in .env.agent and .env.client")

	return nil
}

// chooseTemplate resolves the requested template by id or alias, prompting
// when no template was named and a terminal is attached.
func chooseTemplate(catalog []discovery.TemplateInfo, requested string) (discovery.TemplateInfo, error) {
	if requested != "" {
		for _, tmpl := range catalog {
			if tmpl.ID == requested {
				return tmpl, nil
			}
			for _, alias := range tmpl.Aliases {
				if alias == requested {
					return tmpl, nil
				}
			}
		}

		ids := make([]string, 0, len(catalog))
		for _, tmpl := range catalog {
			ids = append(ids, tmpl.ID)
		}
		return discovery.TemplateInfo{}, &oerrors.DetailError{
			Type:    "template not found",
			Message: fmt.Sprintf("unknown template %q (valid templates: %s)", requested, strings.Join(ids, ", ")),
			Hint:    "Run 'agentstack templates list' to see available templates.",
			Cause:   oerrors.ErrTemplateNotFound,
		}
	}

	options := make([]huh.Option[string], 0, len(catalog))
	byID := make(map[string]discovery.TemplateInfo, len(catalog))
	for _, tmpl := range catalog {
		if tmpl.Hidden {
			continue
		}
		label := tmpl.ID
		if tmpl.Description != "" {
			label = fmt.Sprintf("%s - %s", tmpl.Name, tmpl.Description)
		}
		options = append(options, huh.NewOption(label, tmpl.ID))
		byID[tmpl.ID] = tmpl
	}

	if len(options) == 0 {
		return discovery.TemplateInfo{}, &oerrors.DetailError{
			Type:    "template required",
			Message: "no template was specified and every template is hidden",
			Hint:    "Pass --template with the template id.",
			Cause:   oerrors.ErrTemplateNotFound,
		}
	}

	if !output.IsTTY() {
		return discovery.TemplateInfo{}, &oerrors.DetailError{
			Type:    "template required",
			Message: "no template was specified and no terminal is attached",
			Hint:    "Pass --template, or run interactively.",
			Cause:   oerrors.ErrTemplateNotFound,
		}
	}

	var choice string
	if err := huh.NewSelect[string]().
		Title("Choose a template").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return discovery.TemplateInfo{}, fmt.Errorf("template prompt: %w", err)
	}

	return byID[choice], nil
}
