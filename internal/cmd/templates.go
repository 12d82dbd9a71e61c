package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstack/cli/internal/discovery"
	"github.com/agentstack/cli/internal/output"
)

var templatesListAll bool

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Work with starter templates",
	}

	cmd.AddCommand(newTemplatesListCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available starter templates",
		Long: `List the starter templates available in the configured starters root.

Each template is offered in one or more flavors (language/stack variants).`,
		Args: cobra.NoArgs,
		RunE: runTemplatesList,
	}

	cmd.Flags().BoolVarP(&templatesListAll, "all", "a", false, "Include hidden templates")

	return cmd
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	catalog, err := discovery.Discover(StartersPath(), func(msg string) {
		output.Warn(msg)
	})
	if err != nil {
		return err
	}

	table := output.NewTable("ID", "NAME", "FLAVORS", "DESCRIPTION")
	shown := 0

	for _, tmpl := range catalog {
		if tmpl.Hidden && !templatesListAll {
			continue
		}

		name := tmpl.Name
		if tmpl.Deprecated {
			name += " " + output.StyleDeprecated.Render("(deprecated)")
		}

		table.Row(tmpl.ID, name, strings.Join(tmpl.Flavors, ", "), tmpl.Description)
		shown++
	}

	if shown == 0 {
		output.Println("No templates found.")
		return nil
	}

	output.Println(table.String())
	return nil
}
