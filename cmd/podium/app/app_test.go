package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium/pkg/errors"
)

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_WithOptions(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &Config{OutputDir: "out", Format: "yaml", LegacyDir: ".", NewDir: "paris", NewEditionID: "63"}

	app, err := New("dev", "", "", "", WithConfig(cfg), WithLogger(&logger))
	require.NoError(t, err)
	assert.Equal(t, "out", app.OutputDir())
	assert.Equal(t, "yaml", app.OutputFormat())
	assert.Same(t, &logger, app.Logger())
}

func TestApp_Pipeline(t *testing.T) {
	cfg := &Config{LegacyDir: ".", NewDir: "paris", NewEditionID: "63"}
	app, err := New("dev", "", "", "", WithConfig(cfg))
	require.NoError(t, err)

	p, err := app.Pipeline()
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestApp_PipelineBadEventMap(t *testing.T) {
	cfg := &Config{
		LegacyDir:    ".",
		NewDir:       "paris",
		NewEditionID: "63",
		EventMap:     filepath.Join(t.TempDir(), "missing.yaml"),
	}
	app, err := New("dev", "", "", "", WithConfig(cfg))
	require.NoError(t, err)

	_, err = app.Pipeline()
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestApp_ExecuteVersion(t *testing.T) {
	app, err := New("9.9.9", "deadbeef", "today", "make")
	require.NoError(t, err)

	var buf bytes.Buffer
	root := app.createRootCommand()
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, buf.String(), "podium version 9.9.9")
	assert.Contains(t, buf.String(), "commit: deadbeef")
}

func TestApp_ExecuteConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "podium.yaml")
	require.NoError(t, os.WriteFile(path, []byte("legacy_dir: /data/legacy\nnew_edition_id: \"70\"\nuse_name_permutations: true\n"), 0o600))

	app, err := New("dev", "", "", "")
	require.NoError(t, err)

	root := app.createRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--config", path, "--new-dir", "/data/new"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	cfg := app.Config()
	assert.Equal(t, "/data/legacy", cfg.LegacyDir)
	assert.Equal(t, "/data/new", cfg.NewDir, "flags win over the config file")
	assert.Equal(t, "70", cfg.NewEditionID)
	assert.True(t, cfg.UseNamePermutations)
}

func TestApp_ExecuteMissingConfigFile(t *testing.T) {
	app, err := New("dev", "", "", "")
	require.NoError(t, err)

	root := app.createRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"version", "--config", filepath.Join(t.TempDir(), "nope.yaml")})
	err = root.ExecuteContext(context.Background())
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}
