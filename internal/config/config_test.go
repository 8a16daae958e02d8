package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `presentations_dir: talks
slides_file: deck.md
manifest_file: package.json
tool:
  command: node
  args: [node_modules/@slidev/cli/bin/slidev.mjs]
package_manager: npm
export:
  timeout: 2m
  wait_until: networkidle
  extra_args: [--dark]
dev:
  open: false
scan:
  workers: 4
log_file: .deckpick/deckpick.log
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "talks", cfg.PresentationsDir)
	assert.Equal(t, "deck.md", cfg.SlidesFile)
	assert.Equal(t, "package.json", cfg.ManifestFile)
	assert.Equal(t, "node", cfg.Tool.Command)
	assert.Equal(t, []string{"node_modules/@slidev/cli/bin/slidev.mjs"}, cfg.Tool.Args)
	assert.Equal(t, "npm", cfg.PackageManager)
	assert.Equal(t, "2m", cfg.Export.Timeout)
	assert.Equal(t, "networkidle", cfg.Export.WaitUntil)
	assert.Equal(t, []string{"--dark"}, cfg.Export.ExtraArgs)
	require.NotNil(t, cfg.Dev.Open)
	assert.False(t, *cfg.Dev.Open)
	assert.Equal(t, 4, cfg.Scan.Workers)
	assert.Equal(t, ".deckpick/deckpick.log", cfg.LogFile)

	cfg.ApplyDefaults()
	assert.False(t, cfg.OpenBrowser(), "explicit open: false must survive defaults")
	assert.Equal(t, []string{"node_modules/@slidev/cli/bin/slidev.mjs"}, cfg.Tool.Args)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("package_manager: yarn\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "yarn", cfg.PackageManager)
	assert.Equal(t, "", cfg.PresentationsDir)
	assert.Nil(t, cfg.Dev.Open)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, deckpick.DefaultPresentationsDir, cfg.PresentationsDir)
	assert.Equal(t, deckpick.DefaultSlidesFile, cfg.SlidesFile)
	assert.Equal(t, deckpick.DefaultManifestFile, cfg.ManifestFile)
	assert.Equal(t, "npx", cfg.Tool.Command)
	assert.Equal(t, []string{"slidev"}, cfg.Tool.Args)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, "domcontentloaded", cfg.Export.WaitUntil)
	assert.True(t, cfg.OpenBrowser())
	assert.Equal(t, deckpick.DefaultScanWorkers, cfg.Scan.Workers)

	timeout, err := cfg.ExportTimeout()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, timeout)
	assert.NoError(t, cfg.Validate())
}

func TestApplyDefaults_CustomCommandKeepsEmptyArgs(t *testing.T) {
	cfg := &ProjectConfig{Tool: ToolConfig{Command: "slidev"}}
	cfg.ApplyDefaults()

	assert.Equal(t, "slidev", cfg.Tool.Command)
	assert.Empty(t, cfg.Tool.Args)
}

func TestApplyEnv(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvPresentationsDir: "decks",
		EnvPackageManager:   "bun",
		EnvScanWorkers:      "2",
		EnvLogFile:          "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "decks", cfg.PresentationsDir)
	assert.Equal(t, "bun", cfg.PackageManager)
	assert.Equal(t, 2, cfg.Scan.Workers)
	assert.Equal(t, "", cfg.LogFile, "empty values are ignored")
}

func TestApplyEnv_InvalidWorkers(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(envMap(map[string]string{EnvScanWorkers: "many"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, deckpick.ErrInvalidConfig)
	assert.Equal(t, deckpick.ExitConfigError, deckpick.ExitCodeForError(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ProjectConfig)
		wantErr string
	}{
		{"bad timeout", func(c *ProjectConfig) { c.Export.Timeout = "soon" }, "invalid export.timeout"},
		{"zero timeout", func(c *ProjectConfig) { c.Export.Timeout = "0s" }, "must be positive"},
		{"negative workers", func(c *ProjectConfig) { c.Scan.Workers = -1 }, "scan.workers"},
		{"empty command", func(c *ProjectConfig) { c.Tool.Command = "" }, "tool.command"},
		{"empty package manager", func(c *ProjectConfig) { c.PackageManager = "" }, "package_manager"},
		{"slides file with directory", func(c *ProjectConfig) { c.SlidesFile = "src/slides.md" }, "plain file names"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, deckpick.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
