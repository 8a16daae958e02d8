package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vvka-141/deckpick/internal/config"
	"github.com/vvka-141/deckpick/internal/files/scanner"
	"github.com/vvka-141/deckpick/internal/logging"
	"github.com/vvka-141/deckpick/internal/resolver"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// session is the resolved state shared by every command: workspace root,
// effective configuration and the logger built from it.
type session struct {
	root       string
	cfg        *config.ProjectConfig
	logger     deckpick.Logger
	fileLogger *logging.FileLogger
	scanner    deckpick.MetadataScanner
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if deckpick.yaml does not exist (not an error).
func loadProjectConfig(root string) (*config.ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(root, ".env"))

	projectCfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("%w: failed to load %s: %v", deckpick.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// newSession resolves configuration with precedence
// flag > environment > deckpick.yaml > defaults.
func newSession(flags rootFlagValues, stderr io.Writer) (*session, error) {
	root, err := filepath.Abs(flags.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", flags.root, err)
	}

	cfg, err := loadProjectConfig(root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &config.ProjectConfig{}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if flags.presentationsDir != "" {
		cfg.PresentationsDir = flags.presentationsDir
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{root: root, cfg: cfg}

	console := logging.NewConsoleLoggerTo(stderr, flags.verbose)
	if cfg.LogFile != "" {
		logPath := cfg.LogFile
		if !filepath.IsAbs(logPath) {
			logPath = filepath.Join(root, logPath)
		}
		s.fileLogger = logging.NewFileLogger(logPath)
		s.logger = logging.NewMultiLogger(console, s.fileLogger)
	} else {
		s.logger = console
	}

	s.scanner = scanner.NewScanner(s.logger,
		scanner.WithManifestFile(cfg.ManifestFile),
		scanner.WithSlidesFile(cfg.SlidesFile),
		scanner.WithWorkers(cfg.Scan.Workers),
	)

	s.logger.Verbose("Workspace root: %s", root)
	s.logger.Verbose("Presentations directory: %s", cfg.PresentationsDir)
	return s, nil
}

func (s *session) Close() error {
	return s.fileLogger.Close()
}

func (s *session) scan() ([]deckpick.PresentationMetadata, error) {
	return s.scanner.Scan(s.root, s.cfg.PresentationsDir)
}

// options scans and resolves the runnable options for action.
func (s *session) options(action deckpick.Action) ([]deckpick.PresentationOption, error) {
	metas, err := s.scan()
	if err != nil {
		return nil, err
	}
	options := resolver.ResolveAll(metas, action)
	s.logger.Verbose("%d of %d presentation(s) can %s", len(options), len(metas), action)
	return options, nil
}
