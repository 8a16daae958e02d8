package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"build"},
	Short:   "Pick a presentation and export it",
	Long: `Export lists every presentation that can be exported, lets you pick one
and exports it.

A presentation whose package.json has a workspace name and an "export" script
runs that script through the package manager. Otherwise the Slidev CLI exports
the slides file with the timeout and wait condition from deckpick.yaml
(export.timeout, export.wait_until).

Examples:
  # Pick interactively
  deckpick export

  # Export one presentation in CI
  deckpick export --presentation intro`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresentation(cmd, deckpick.ActionExport, exportFlags)
	},
}

var exportFlags runFlagValues

func init() {
	rootCmd.AddCommand(exportCmd)
	registerRunFlags(exportCmd, &exportFlags)
}
