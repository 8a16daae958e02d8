package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/internal/launcher"
	"github.com/vvka-141/deckpick/internal/resolver"
	"github.com/vvka-141/deckpick/internal/tui"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// Seams replaced in tests.
var (
	detectTerminal     = tui.CurrentTerminal
	selectPresentation = tui.SelectPresentation
	newRunner          = func() launcher.Runner { return launcher.ExecRunner{} }
)

// runFlagValues are the flags shared by dev and export.
type runFlagValues struct {
	presentation string
}

// messageError shows a user-facing message while still matching a sentinel.
type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.msg }
func (e *messageError) Unwrap() error { return e.err }

func noPresentationsError(action deckpick.Action) error {
	return &messageError{
		msg: fmt.Sprintf("No Slidev presentations with a %s entrypoint were found.", action),
		err: deckpick.ErrNoPresentations,
	}
}

func registerRunFlags(cmd *cobra.Command, flags *runFlagValues) {
	cmd.Flags().StringVarP(&flags.presentation, "presentation", "p", "",
		"Folder name of the presentation to launch, skipping the selector\n"+
			"Required when no terminal is attached")
	_ = cmd.RegisterFlagCompletionFunc("presentation", completePresentationFolders)
}

// runPresentation discovers, selects and launches a presentation for action.
func runPresentation(cmd *cobra.Command, action deckpick.Action, flags runFlagValues) error {
	s, err := newSession(rootFlags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	options, err := s.options(action)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return noPresentationsError(action)
	}

	option, ok, err := choosePresentation(s, options, action, flags.presentation)
	if err != nil || !ok {
		return err
	}

	settings, err := launcher.SettingsFromConfig(s.root, s.cfg)
	if err != nil {
		return err
	}
	l := launcher.New(settings, s.logger, launcher.WithRunner(newRunner()))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// The child shares the terminal and receives Ctrl+C itself.
	// Only SIGTERM is forwarded by cancelling the context.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			if sig == syscall.SIGTERM {
				cancel()
			}
		case <-ctx.Done():
		}
	}()

	s.logger.Info("Launching %s", resolver.FormatLabel(option))
	_, err = l.Run(ctx, option, action)
	return err
}

// choosePresentation picks by folder when one is given and prompts otherwise.
// ok is false when the user cancelled.
func choosePresentation(s *session, options []deckpick.PresentationOption, action deckpick.Action, folder string) (deckpick.PresentationOption, bool, error) {
	if folder != "" {
		option, found := resolver.FindByFolder(options, folder)
		if !found {
			return deckpick.PresentationOption{}, false, fmt.Errorf("%w: %q has no %s entrypoint (available: %v)",
				deckpick.ErrPresentationNotFound, folder, action, resolver.Folders(options))
		}
		return option, true, nil
	}

	if mode, reason := detectTerminal().Detect(); mode != tui.ModeInteractive {
		return deckpick.PresentationOption{}, false, fmt.Errorf("%w (%s): pass --presentation with one of %v",
			deckpick.ErrNonInteractive, reason, resolver.Folders(options))
	}

	selection, err := selectPresentation(options, tui.DefaultRequest(action))
	if err != nil {
		return deckpick.PresentationOption{}, false, err
	}
	if selection.Cancelled {
		s.logger.Verbose("Selection cancelled")
		return deckpick.PresentationOption{}, false, nil
	}
	return selection.Option, true, nil
}
