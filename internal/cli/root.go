package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deckpick",
	Short: "Pick a Slidev presentation and run or export it",
	Long: `deckpick discovers Slidev presentations in a monorepo and launches the
one you pick.

Every folder under presentations/ that holds a package.json or a slides.md is a
candidate. A folder whose package.json names a workspace with a matching
"dev" or "export" script runs that script through the package manager;
otherwise the slides file is handed to the Slidev CLI directly.

Configuration is read from deckpick.yaml in the workspace root, then from the
environment (DECKPICK_*), then from flags.

Exit Codes:
  0  - Success, or selection cancelled
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - No presentation has an entrypoint for the action
  12 - --presentation names an unknown folder
  13 - Presentation tool failed to start
  14 - Selection needed but no terminal is attached
  *  - Any other non-zero code is the presentation tool's own exit status`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	root             string
	presentationsDir string
	logFile          string
	verbose          bool
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.root, "root", ".",
		"Workspace root holding deckpick.yaml and the presentations directory")
	rootCmd.PersistentFlags().StringVar(&rootFlags.presentationsDir, "presentations-dir", "",
		"Directory with one folder per presentation, relative to --root\n"+
			"Precedence: --presentations-dir > $DECKPICK_PRESENTATIONS_DIR > deckpick.yaml > presentations")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFile, "log-file", "",
		"Also write diagnostics to this file (rotated)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")

	_ = rootCmd.MarkPersistentFlagDirname("root")
	_ = rootCmd.MarkPersistentFlagDirname("presentations-dir")
}
