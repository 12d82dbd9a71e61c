package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstack/cli/internal/config"
	"github.com/agentstack/cli/internal/output"
)

var (
	// Global flags
	configFlag   string
	startersFlag string
	verboseFlag  bool

	// Resolved during PersistentPreRunE
	cliConfig      *config.Config
	startersPath   string
	startersSource config.Source
)

// NewRootCmd creates the root command for the agentstack CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agentstack",
		Short: "Agent project starter CLI",
		Long: `agentstack creates new agent projects from starter templates.

It provides commands to:
  - List available starter templates and their flavors
  - Create a new project from a template, with project-specific values filled in`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: AGENTSTACK_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&startersFlag, "starters", "", "Path to the starters root (env: AGENTSTACK_STARTERS_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Defaults still let starter-path resolution proceed.
		cfg = (&config.Config{}).WithDefaults()
	}
	cliConfig = cfg

	var defaultPath string
	if paths, err := config.DefaultPaths(); err == nil {
		defaultPath = paths.StartersDir
	}

	resolved := config.ResolveStartersPath(config.ResolveStartersPathOptions{
		FlagValue:    startersFlag,
		ConfigValue:  cfg.Starters.Path,
		DefaultValue: defaultPath,
	})
	startersPath = resolved.Path
	startersSource = resolved.Source

	output.Debug("initializing CLI",
		"starters", startersPath,
		"starters_source", string(startersSource),
		"default_flavor", cfg.DefaultFlavor,
	)

	return nil
}

// StartersPath returns the resolved starters root.
func StartersPath() string {
	return startersPath
}

// DefaultFlavor returns the configured default flavor.
func DefaultFlavor() string {
	if cliConfig != nil {
		return cliConfig.DefaultFlavor
	}
	return config.DefaultFlavorName
}
