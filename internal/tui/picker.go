package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/deckpick/internal/resolver"
	"github.com/vvka-141/deckpick/internal/tui/components"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// SelectRequest configures one selection prompt.
type SelectRequest struct {
	Action   deckpick.Action
	Heading  string
	HelpText string
	// Run drives the model. Nil means RunProgram.
	Run ProgramRunner
}

// DefaultRequest returns the heading and help text for action.
func DefaultRequest(action deckpick.Action) SelectRequest {
	verb, target := "launch", "run"
	if action == deckpick.ActionExport {
		verb, target = "export", "export"
	}
	return SelectRequest{
		Action:   action,
		Heading:  "Select a Slidev presentation to " + target,
		HelpText: fmt.Sprintf("Use arrow keys to pick a presentation, press Enter to %s, or Q to cancel.", verb),
	}
}

// Selection is the outcome of a prompt: either an option or a cancellation.
type Selection struct {
	Option    deckpick.PresentationOption
	Cancelled bool
}

// Selected wraps a chosen option.
func Selected(option deckpick.PresentationOption) Selection {
	return Selection{Option: option}
}

// Cancelled reports that the user dismissed the prompt.
func Cancelled() Selection {
	return Selection{Cancelled: true}
}

// pickerModel frames a Selector with the request's heading and help text.
type pickerModel struct {
	heading  string
	help     string
	selector components.Selector
}

func newPickerModel(options []deckpick.PresentationOption, req SelectRequest) pickerModel {
	items := make([]components.Option, 0, len(options))
	for _, option := range options {
		items = append(items, components.Option{
			Key:   resolver.CreateKey(option, req.Action),
			Label: resolver.FormatLabel(option),
		})
	}
	return pickerModel{
		heading:  req.Heading,
		help:     req.HelpText,
		selector: components.NewSelector("", items).WithShowHelp(false),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return m.selector.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.selector.Update(msg)
	if s, ok := updated.(components.Selector); ok {
		m.selector = s
	}
	return m, cmd
}

func (m pickerModel) View() string {
	// Clear the frame once a choice is made so the launched tool starts on a clean line.
	if m.selector.Submitted() || m.selector.Cancelled() {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeadingStyle.Render(m.heading))
	b.WriteString("\n")
	if m.help != "" {
		b.WriteString(HelpStyle.Render(m.help))
		b.WriteString("\n")
	}
	b.WriteString(ListStyle.Render(m.selector.View()))
	return b.String()
}

// SelectPresentation shows options and blocks until the user picks one or cancels.
// Options are displayed in the given order. An empty list is an error wrapping
// deckpick.ErrNoPresentations.
func SelectPresentation(options []deckpick.PresentationOption, req SelectRequest) (Selection, error) {
	if len(options) == 0 {
		return Selection{}, fmt.Errorf("%w: nothing to select for %s", deckpick.ErrNoPresentations, req.Action)
	}

	run := req.Run
	if run == nil {
		run = RunProgram
	}

	final, err := run(newPickerModel(options, req))
	if err != nil {
		return Selection{}, err
	}

	m, ok := final.(pickerModel)
	if !ok {
		return Selection{}, fmt.Errorf("selector returned unexpected model %T", final)
	}

	idx := m.selector.Selected()
	if m.selector.Cancelled() || idx < 0 || idx >= len(options) {
		return Cancelled(), nil
	}
	return Selected(options[idx]), nil
}
