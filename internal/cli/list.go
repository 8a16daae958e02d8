package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/internal/resolver"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered presentations",
	Long: `List prints every presentation found under the presentations directory.

Without --action it shows the discovered metadata of each folder. With
--action it shows the options the selector would offer for that action, in the
same order and with the same labels.

Examples:
  deckpick list
  deckpick list --action export
  deckpick list --action dev --json | jq -r '.[].folder'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

type listFlagValues struct {
	action string
	json   bool
}

var listFlags listFlagValues

// listEntry is one selector option as printed by list --action --json.
type listEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	deckpick.PresentationOption
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFlags.action, "action", "a", "",
		"Show selector options for this action: dev|export")
	listCmd.Flags().BoolVar(&listFlags.json, "json", false, "Output as JSON")

	_ = listCmd.RegisterFlagCompletionFunc("action", completeActions)
}

func runList(cmd *cobra.Command, args []string) error {
	var action deckpick.Action
	if listFlags.action != "" {
		parsed, err := deckpick.ParseAction(listFlags.action)
		if err != nil {
			return err
		}
		action = parsed
	}

	s, err := newSession(rootFlags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()

	if action == "" {
		metas, err := s.scan()
		if err != nil {
			return err
		}
		if listFlags.json {
			return writeJSON(out, metas)
		}
		if len(metas) == 0 {
			s.logger.Info("No presentations found in %s", s.cfg.PresentationsDir)
			return nil
		}
		fmt.Fprintln(out, renderMetadataTable(metas))
		return nil
	}

	options, err := s.options(action)
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(options))
	for _, option := range options {
		entries = append(entries, listEntry{
			Key:                resolver.CreateKey(option, action),
			Label:              resolver.FormatLabel(option),
			PresentationOption: option,
		})
	}

	if listFlags.json {
		return writeJSON(out, entries)
	}
	if len(entries) == 0 {
		s.logger.Info("No Slidev presentations with a %s entrypoint were found.", action)
		return nil
	}
	fmt.Fprintln(out, renderOptionTable(entries))
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func renderMetadataTable(metas []deckpick.PresentationMetadata) string {
	t := newTable("FOLDER", "WORKSPACE", "TITLE", "SCRIPTS", "SLIDES")
	for _, meta := range metas {
		scripts := make([]string, 0, len(meta.Scripts))
		for name := range meta.Scripts {
			scripts = append(scripts, name)
		}
		sort.Strings(scripts)

		t.Row(
			meta.Folder,
			orDash(meta.Workspace),
			orDash(meta.Title),
			orDash(strings.Join(scripts, ",")),
			orDash(meta.RelativeSlidesPath),
		)
	}
	return t.String()
}

func renderOptionTable(entries []listEntry) string {
	t := newTable("FOLDER", "RUN", "LABEL")
	for _, entry := range entries {
		t.Row(entry.Folder, string(entry.Run.Kind), entry.Label)
	}
	return t.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
