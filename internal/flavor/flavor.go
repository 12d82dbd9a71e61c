// Package flavor picks one variant of a template from caller intent.
package flavor

import (
	"fmt"
	"strings"

	"github.com/agentstack/cli/internal/discovery"
	oerrors "github.com/agentstack/cli/internal/errors"
)

// Reason records why a particular flavor was chosen.
type Reason string

const (
	// ReasonCLI means the caller requested the flavor explicitly.
	ReasonCLI Reason = "cli"

	// ReasonDefault means the configured default flavor was available.
	ReasonDefault Reason = "default"

	// ReasonOnly means the template offers exactly one flavor.
	ReasonOnly Reason = "only"

	// ReasonPrompt means the user chose interactively.
	ReasonPrompt Reason = "prompt"
)

// PromptFunc asks the user to choose among flavors. An empty return value
// means the selection was cancelled.
type PromptFunc func(flavors []string) (string, error)

// Options configures flavor selection.
type Options struct {
	// CLIFlavor is the explicit flavor requested by the caller, if any.
	CLIFlavor string

	// DefaultFlavor is the preferred flavor when the caller did not choose.
	DefaultFlavor string

	// Prompt is invoked when the choice is ambiguous; nil means
	// non-interactive, in which case ambiguity is an error.
	Prompt PromptFunc
}

// Selection is the chosen flavor and the audit-trail reason for choosing it.
type Selection struct {
	Flavor string
	Reason Reason
}

const listHint = "Run 'agentstack templates list' to see available templates and flavors."

// Select picks one flavor of the template, in strict precedence order:
// explicit CLI choice, configured default, sole available flavor, interactive
// prompt. An explicit CLI choice is validated but never overridden.
func Select(template discovery.TemplateInfo, opts Options) (Selection, error) {
	if len(template.Flavors) == 0 {
		return Selection{}, oerrors.NewFlavorError(
			fmt.Sprintf("template %q has no flavors", template.ID),
			map[string]string{"Template": template.ID},
			listHint,
		)
	}

	if opts.CLIFlavor != "" {
		if !template.HasFlavor(opts.CLIFlavor) {
			return Selection{}, oerrors.NewFlavorError(
				fmt.Sprintf("flavor %q is not available for template %q (valid flavors: %s)",
					opts.CLIFlavor, template.ID, strings.Join(template.Flavors, ", ")),
				map[string]string{"Template": template.ID, "Flavor": opts.CLIFlavor},
				listHint,
			)
		}
		return Selection{Flavor: opts.CLIFlavor, Reason: ReasonCLI}, nil
	}

	if opts.DefaultFlavor != "" && template.HasFlavor(opts.DefaultFlavor) {
		return Selection{Flavor: opts.DefaultFlavor, Reason: ReasonDefault}, nil
	}

	if len(template.Flavors) == 1 {
		return Selection{Flavor: template.Flavors[0], Reason: ReasonOnly}, nil
	}

	if opts.Prompt == nil {
		return Selection{}, oerrors.NewFlavorError(
			fmt.Sprintf("template %q offers several flavors (%s) and none was chosen; pass --flavor",
				template.ID, strings.Join(template.Flavors, ", ")),
			map[string]string{"Template": template.ID},
			listHint,
		)
	}

	choice, err := opts.Prompt(template.Flavors)
	if err != nil {
		return Selection{}, oerrors.NewFlavorError(
			fmt.Sprintf("flavor prompt failed: %v", err),
			map[string]string{"Template": template.ID},
			listHint,
		)
	}
	if choice == "" {
		return Selection{}, oerrors.NewFlavorError(
			"flavor selection cancelled",
			map[string]string{"Template": template.ID},
			listHint,
		)
	}
	if !template.HasFlavor(choice) {
		return Selection{}, oerrors.NewFlavorError(
			fmt.Sprintf("prompt returned unknown flavor %q (valid flavors: %s)",
				choice, strings.Join(template.Flavors, ", ")),
			map[string]string{"Template": template.ID},
			listHint,
		)
	}

	return Selection{Flavor: choice, Reason: ReasonPrompt}, nil
}
