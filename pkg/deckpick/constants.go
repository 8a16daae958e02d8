package deckpick

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess              = 0  // Presentation launched and exited cleanly, or selection cancelled
	ExitGeneralError         = 1  // Unknown or unclassified error
	ExitUsageError           = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic                = 3  // Internal panic (unexpected crash)
	ExitConfigError          = 10 // Invalid configuration
	ExitNoPresentations      = 11 // Nothing runnable for the requested action
	ExitPresentationNotFound = 12 // --presentation names an unknown folder
	ExitLaunchFailed         = 13 // Presentation tool failed to start or exited non-zero
	ExitNonInteractive       = 14 // No terminal and no --presentation given
)

const (
	// DefaultPresentationsDir is the directory, relative to the workspace root,
	// that holds one folder per presentation.
	DefaultPresentationsDir = "presentations"

	// DefaultManifestFile is the per-presentation manifest.
	DefaultManifestFile = "package.json"

	// DefaultSlidesFile is the per-presentation content file.
	DefaultSlidesFile = "slides.md"

	// DefaultScanWorkers bounds how many presentation folders are inspected at once.
	DefaultScanWorkers = 8

	// DefaultExportTimeout is handed to the presentation tool's export command.
	DefaultExportTimeout = 60 * time.Second

	// DefaultExportWaitUntil is the page lifecycle event export waits for.
	DefaultExportWaitUntil = "domcontentloaded"

	// DefaultPackageManager runs workspace scripts.
	DefaultPackageManager = "pnpm"

	// DefaultToolCommand invokes the presentation tool directly.
	DefaultToolCommand = "npx"

	// WarningPrefix tags every diagnostic warning emitted during discovery.
	WarningPrefix = "[selector]"
)

// DefaultToolArgs are the arguments placed before the tool's own arguments.
func DefaultToolArgs() []string {
	return []string{"slidev"}
}
