package launcher

import (
	"context"
	"fmt"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// Launcher runs presentation options.
type Launcher struct {
	settings Settings
	runner   Runner
	logger   deckpick.Logger
}

// Option customizes a Launcher.
type Option func(*Launcher)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(l *Launcher) {
		if r != nil {
			l.runner = r
		}
	}
}

// New creates a launcher that runs child processes with the terminal attached.
// Panics if logger is nil.
func New(settings Settings, logger deckpick.Logger, opts ...Option) *Launcher {
	if logger == nil {
		panic("logger cannot be nil")
	}
	l := &Launcher{
		settings: settings,
		runner:   ExecRunner{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run launches option for action and blocks until the child exits.
//
// It returns the child's exit code. Build and start failures return a non-zero
// code and an error wrapping deckpick.ErrLaunchFailed; a child that exits
// non-zero returns its code and a *deckpick.ExitStatusError.
func (l *Launcher) Run(ctx context.Context, option deckpick.PresentationOption, action deckpick.Action) (int, error) {
	cmd, err := BuildCommand(option, action, l.settings)
	if err != nil {
		return deckpick.ExitLaunchFailed, err
	}

	l.logger.Verbose("Launching %s for %s in %s: %s", action, option.Folder, cmd.Dir, cmd)

	code, err := l.runner.Run(ctx, cmd)
	if err != nil {
		return deckpick.ExitLaunchFailed, fmt.Errorf("%w: failed to run %s: %w", deckpick.ErrLaunchFailed, action, err)
	}
	if code != 0 {
		return code, &deckpick.ExitStatusError{
			Code: code,
			Err:  fmt.Errorf("%w: %s exited with status %d", deckpick.ErrLaunchFailed, cmd.Name, code),
		}
	}

	l.logger.Verbose("%s for %s finished", action, option.Folder)
	return 0, nil
}
