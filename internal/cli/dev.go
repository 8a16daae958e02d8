package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Pick a presentation and start its dev server",
	Long: `Dev lists every presentation that can be served, lets you pick one and
starts it.

A presentation whose package.json has a workspace name and a "dev" script runs
that script through the package manager from the workspace root. Otherwise its
slides file is served by the Slidev CLI from the presentation folder.

Examples:
  # Pick interactively
  deckpick dev

  # Skip the selector
  deckpick dev --presentation intro`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresentation(cmd, deckpick.ActionDev, devFlags)
	},
}

var devFlags runFlagValues

func init() {
	rootCmd.AddCommand(devCmd)
	registerRunFlags(devCmd, &devFlags)
}
