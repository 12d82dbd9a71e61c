package cmd

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/agentstack/cli/internal/flavor"
	"github.com/agentstack/cli/internal/output"
)

// flavorPrompt returns the interactive flavor prompt, or nil when stdout is
// not a terminal (non-interactive callers must pass --flavor instead).
func flavorPrompt() flavor.PromptFunc {
	if !output.IsTTY() {
		return nil
	}

	return func(flavors []string) (string, error) {
		options := make([]huh.Option[string], 0, len(flavors))
		for _, f := range flavors {
			options = append(options, huh.NewOption(f, f))
		}

		var choice string
		err := huh.NewSelect[string]().
			Title("Choose a flavor").
			Options(options...).
			Value(&choice).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				// Empty choice models "selection cancelled".
				return "", nil
			}
			return "", err
		}

		return choice, nil
	}
}
