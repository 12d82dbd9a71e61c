package config

import (
	"os"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// ResolveStartersPathOptions contains options for starters path resolution.
type ResolveStartersPathOptions struct {
	// FlagValue is the --starters flag value (empty if not set).
	FlagValue string
	// ConfigValue is the starters.path value from config file (empty if not set).
	ConfigValue string
	// DefaultValue is the built-in default (~/.agentstack/starters).
	DefaultValue string
}

// ResolveStartersPathResult contains the resolved path and its source.
type ResolveStartersPathResult struct {
	// Path is the resolved starters root.
	Path string
	// Source indicates where the path came from.
	Source Source
}

// ResolveStartersPath resolves the starters root using precedence:
// (1) --starters flag, (2) AGENTSTACK_STARTERS_PATH env, (3) config
// starters.path, (4) built-in default. Core packages receive the resolved
// value; they never consult the environment themselves.
func ResolveStartersPath(opts ResolveStartersPathOptions) ResolveStartersPathResult {
	envValue := os.Getenv("AGENTSTACK_STARTERS_PATH")

	switch {
	case opts.FlagValue != "":
		return ResolveStartersPathResult{Path: opts.FlagValue, Source: SourceFlag}
	case envValue != "":
		return ResolveStartersPathResult{Path: envValue, Source: SourceEnv}
	case opts.ConfigValue != "":
		return ResolveStartersPathResult{Path: opts.ConfigValue, Source: SourceConfig}
	default:
		return ResolveStartersPathResult{Path: opts.DefaultValue, Source: SourceDefault}
	}
}
