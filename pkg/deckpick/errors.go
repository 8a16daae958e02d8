package deckpick

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := l.Run(ctx, option, action)
//	if errors.Is(err, deckpick.ErrLaunchFailed) {
//	    // Handle the presentation tool failing
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidAction indicates an action other than dev or export was requested.
	ErrInvalidAction = errors.New("invalid action")

	// ErrScanRoot indicates the presentations directory exists but could not be listed.
	ErrScanRoot = errors.New("failed to list presentations directory")

	// ErrNoPresentations indicates no presentation is runnable for the requested action.
	ErrNoPresentations = errors.New("no presentations found")

	// ErrPresentationNotFound indicates a requested folder has no runnable option.
	ErrPresentationNotFound = errors.New("presentation not found")

	// ErrNonInteractive indicates a selection was needed but no terminal is attached.
	ErrNonInteractive = errors.New("interactive selection unavailable")

	// ErrLaunchFailed indicates the presentation tool could not be started or failed.
	ErrLaunchFailed = errors.New("launch failed")
)

// ExitStatusError carries the non-zero exit status of the launched tool so
// the process can exit with the same code.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	return e.Err.Error()
}

func (e *ExitStatusError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, the tool's own status for
// ExitStatusError, semantic codes for known errors, and ExitGeneralError (1)
// for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var statusErr *ExitStatusError
	if errors.As(err, &statusErr) && statusErr.Code > 0 {
		return statusErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidAction):
		return ExitUsageError
	case errors.Is(err, ErrNoPresentations):
		return ExitNoPresentations
	case errors.Is(err, ErrPresentationNotFound):
		return ExitPresentationNotFound
	case errors.Is(err, ErrLaunchFailed):
		return ExitLaunchFailed
	case errors.Is(err, ErrNonInteractive):
		return ExitNonInteractive
	}

	// cobra reports flag and argument problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
