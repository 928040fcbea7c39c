package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilhq/cli/internal/testutil"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	cfg, err := NewLoader().Load(filepath.Join(dir, "no-such-config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.OutputDir)
	assert.False(t, cfg.Verbose)
	assert.Nil(t, cfg.Defaults)
}

func TestLoadFromFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := testutil.WriteFile(t, dir, "config.yaml", `outputDir: /srv/projects
verbose: true
defaults:
  react:
    typescript: false
    styling: tailwind
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/projects", cfg.OutputDir)
	assert.True(t, cfg.Verbose)

	defaults := cfg.FamilyDefaults("react")
	require.NotNil(t, defaults)
	assert.Equal(t, false, defaults["typescript"])
	assert.Equal(t, "tailwind", defaults["styling"])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := testutil.WriteFile(t, dir, "config.yaml", "outputDir: /from/file\n")
	t.Setenv("STENCIL_OUTPUT_DIR", "/from/env")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.OutputDir)
}

func TestLoadMalformedFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	path := testutil.WriteFile(t, dir, "config.yaml", "outputDir: [unclosed\n")

	_, err := NewLoader().Load(path)
	assert.Error(t, err)
}

func TestGetConfigFileEnvPrecedence(t *testing.T) {
	t.Setenv("STENCIL_CONFIG", "/custom/config.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/custom/config.yaml", path)
}

func TestGetConfigFileDefault(t *testing.T) {
	t.Setenv("STENCIL_CONFIG", "")

	path, err := GetConfigFile()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".stencil", "config.yaml"), path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "/etc/stencil.yaml", "/etc/stencil.yaml"},
		{"bare tilde", "~", home},
		{"tilde prefix", "~/cfg.yaml", filepath.Join(home, "cfg.yaml")},
		{"tilde user unsupported", "~other/cfg.yaml", "~other/cfg.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
