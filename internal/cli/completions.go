package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/internal/resolver"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// actions contains the valid --action values for shell completion.
var actions = []string{string(deckpick.ActionDev), string(deckpick.ActionExport)}

// completeActions provides shell completion for the --action flag.
func completeActions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, action := range actions {
		if strings.HasPrefix(action, toComplete) {
			matches = append(matches, action)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completePresentationFolders completes --presentation with the folders that
// are runnable for the command's action, described by their selector label.
func completePresentationFolders(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	action, err := deckpick.ParseAction(cmd.Name())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	// Completion output must stay clean, so diagnostics are discarded.
	s, err := newSession(rootFlags, io.Discard)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer s.Close()

	options, err := s.options(action)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var matches []string
	for _, option := range options {
		if strings.HasPrefix(option.Folder, toComplete) {
			matches = append(matches, option.Folder+"\t"+resolver.FormatLabel(option))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
