package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override deckpick.yaml.
const (
	EnvPresentationsDir = "DECKPICK_PRESENTATIONS_DIR"
	EnvPackageManager   = "DECKPICK_PACKAGE_MANAGER"
	EnvScanWorkers      = "DECKPICK_SCAN_WORKERS"
	EnvLogFile          = "DECKPICK_LOG_FILE"
)

type ToolConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

type ExportConfig struct {
	Timeout   string   `yaml:"timeout,omitempty"`
	WaitUntil string   `yaml:"wait_until,omitempty"`
	ExtraArgs []string `yaml:"extra_args,omitempty"`
}

type DevConfig struct {
	// Open is a pointer so an explicit "open: false" survives defaulting.
	Open *bool `yaml:"open,omitempty"`
}

type ScanConfig struct {
	Workers int `yaml:"workers,omitempty"`
}

type ProjectConfig struct {
	PresentationsDir string       `yaml:"presentations_dir,omitempty"`
	SlidesFile       string       `yaml:"slides_file,omitempty"`
	ManifestFile     string       `yaml:"manifest_file,omitempty"`
	Tool             ToolConfig   `yaml:"tool"`
	PackageManager   string       `yaml:"package_manager,omitempty"`
	Export           ExportConfig `yaml:"export"`
	Dev              DevConfig    `yaml:"dev"`
	Scan             ScanConfig   `yaml:"scan"`
	LogFile          string       `yaml:"log_file,omitempty"`
}

const ConfigFileName = "deckpick.yaml"

func Load(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns a config with every field set to its built-in value.
func Defaults() *ProjectConfig {
	cfg := &ProjectConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields. Explicit values are kept.
func (c *ProjectConfig) ApplyDefaults() {
	if c.PresentationsDir == "" {
		c.PresentationsDir = deckpick.DefaultPresentationsDir
	}
	if c.SlidesFile == "" {
		c.SlidesFile = deckpick.DefaultSlidesFile
	}
	if c.ManifestFile == "" {
		c.ManifestFile = deckpick.DefaultManifestFile
	}
	if c.Tool.Command == "" {
		c.Tool.Command = deckpick.DefaultToolCommand
		if len(c.Tool.Args) == 0 {
			c.Tool.Args = deckpick.DefaultToolArgs()
		}
	}
	if c.PackageManager == "" {
		c.PackageManager = deckpick.DefaultPackageManager
	}
	if c.Export.Timeout == "" {
		c.Export.Timeout = deckpick.DefaultExportTimeout.String()
	}
	if c.Export.WaitUntil == "" {
		c.Export.WaitUntil = deckpick.DefaultExportWaitUntil
	}
	if c.Dev.Open == nil {
		open := true
		c.Dev.Open = &open
	}
	if c.Scan.Workers == 0 {
		c.Scan.Workers = deckpick.DefaultScanWorkers
	}
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv. Empty values are ignored.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPresentationsDir); ok && v != "" {
		c.PresentationsDir = v
	}
	if v, ok := lookup(EnvPackageManager); ok && v != "" {
		c.PackageManager = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvScanWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", deckpick.ErrInvalidConfig, EnvScanWorkers, v)
		}
		c.Scan.Workers = n
	}
	return nil
}

// Validate reports the first invalid field, wrapped in deckpick.ErrInvalidConfig.
func (c *ProjectConfig) Validate() error {
	if _, err := c.ExportTimeout(); err != nil {
		return err
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("%w: scan.workers must not be negative, got %d", deckpick.ErrInvalidConfig, c.Scan.Workers)
	}
	if c.Tool.Command == "" {
		return fmt.Errorf("%w: tool.command is required", deckpick.ErrInvalidConfig)
	}
	if c.PackageManager == "" {
		return fmt.Errorf("%w: package_manager is required", deckpick.ErrInvalidConfig)
	}
	if filepath.Base(c.SlidesFile) != c.SlidesFile || filepath.Base(c.ManifestFile) != c.ManifestFile {
		return fmt.Errorf("%w: slides_file and manifest_file must be plain file names", deckpick.ErrInvalidConfig)
	}
	return nil
}

// ExportTimeout parses export.timeout. An unset timeout yields the default.
func (c *ProjectConfig) ExportTimeout() (time.Duration, error) {
	if c.Export.Timeout == "" {
		return deckpick.DefaultExportTimeout, nil
	}
	d, err := time.ParseDuration(c.Export.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid export.timeout %q: %v", deckpick.ErrInvalidConfig, c.Export.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: export.timeout must be positive, got %s", deckpick.ErrInvalidConfig, c.Export.Timeout)
	}
	return d, nil
}

// OpenBrowser reports whether dev runs should pass --open.
func (c *ProjectConfig) OpenBrowser() bool {
	return c.Dev.Open == nil || *c.Dev.Open
}
