// Package config provides configuration loading and management.
package config

// StartersConfig describes where starter templates come from.
type StartersConfig struct {
	// Path is the local starters root (a directory containing templates/).
	// Env: AGENTSTACK_STARTERS_PATH, Default: ~/.agentstack/starters
	Path string `mapstructure:"path"`

	// Repo is the remote starters repository, consumed by the fetch layer.
	// Env: AGENTSTACK_STARTERS_REPO
	Repo string `mapstructure:"repo"`

	// Ref is the git ref to fetch from Repo.
	// Env: AGENTSTACK_STARTERS_REF, Default: "main"
	Ref string `mapstructure:"ref"`
}

// Config represents the agentstack CLI configuration.
// Loaded from ~/.agentstack/config.yaml.
type Config struct {
	// Starters configures the starter template source.
	Starters StartersConfig `mapstructure:"starters"`

	// DefaultFlavor is the flavor preferred when a template offers several.
	// Default: "ts"
	DefaultFlavor string `mapstructure:"defaultFlavor"`
}

// DefaultFlavorName is the built-in default flavor preference.
const DefaultFlavorName = "ts"

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Starters.Ref == "" {
		out.Starters.Ref = "main"
	}
	if out.Starters.Path == "" {
		if paths, err := DefaultPaths(); err == nil {
			out.Starters.Path = paths.StartersDir
		}
	}
	if out.DefaultFlavor == "" {
		out.DefaultFlavor = DefaultFlavorName
	}

	return &out
}
