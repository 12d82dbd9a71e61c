package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveStartersPath(t *testing.T) {
	tests := []struct {
		name       string
		flagValue  string
		envValue   string
		cfgValue   string
		wantPath   string
		wantSource Source
	}{
		{
			name:       "flag beats everything",
			flagValue:  "/from/flag",
			envValue:   "/from/env",
			cfgValue:   "/from/config",
			wantPath:   "/from/flag",
			wantSource: SourceFlag,
		},
		{
			name:       "env beats config",
			envValue:   "/from/env",
			cfgValue:   "/from/config",
			wantPath:   "/from/env",
			wantSource: SourceEnv,
		},
		{
			name:       "config beats default",
			cfgValue:   "/from/config",
			wantPath:   "/from/config",
			wantSource: SourceConfig,
		},
		{
			name:       "default when nothing set",
			wantPath:   "/default/starters",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv("AGENTSTACK_STARTERS_PATH", tt.envValue)
			} else {
				t.Setenv("AGENTSTACK_STARTERS_PATH", "")
			}

			result := ResolveStartersPath(ResolveStartersPathOptions{
				FlagValue:    tt.flagValue,
				ConfigValue:  tt.cfgValue,
				DefaultValue: "/default/starters",
			})

			assert.Equal(t, tt.wantPath, result.Path)
			assert.Equal(t, tt.wantSource, result.Source)
		})
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()

	assert.Equal(t, "main", cfg.Starters.Ref)
	assert.Equal(t, DefaultFlavorName, cfg.DefaultFlavor)
	assert.NotEmpty(t, cfg.Starters.Path)
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := (&Config{
		Starters:      StartersConfig{Path: "/custom", Repo: "org/starters", Ref: "v2"},
		DefaultFlavor: "py",
	}).WithDefaults()

	assert.Equal(t, "/custom", cfg.Starters.Path)
	assert.Equal(t, "org/starters", cfg.Starters.Repo)
	assert.Equal(t, "v2", cfg.Starters.Ref)
	assert.Equal(t, "py", cfg.DefaultFlavor)
}

func TestLoaderEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := dir + "/config.yaml"
	writeFile(t, cfgFile, "starters:\n  path: /from/file\n")

	t.Setenv("AGENTSTACK_STARTERS_PATH", "/from/env")

	cfg, err := NewLoader().LoadWithDefaults(cfgFile)
	assert.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Starters.Path)
}

func TestLoaderFileValues(t *testing.T) {
	dir := t.TempDir()
	cfgFile := dir + "/config.yaml"
	writeFile(t, cfgFile, "starters:\n  path: /from/file\n  repo: org/starters\ndefaultFlavor: py\n")

	t.Setenv("AGENTSTACK_STARTERS_PATH", "")

	cfg, err := NewLoader().LoadWithDefaults(cfgFile)
	assert.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.Starters.Path)
	assert.Equal(t, "org/starters", cfg.Starters.Repo)
	assert.Equal(t, "py", cfg.DefaultFlavor)
}
