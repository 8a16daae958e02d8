package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramRunner runs a bubbletea model to completion and returns its final state.
type ProgramRunner func(model tea.Model) (tea.Model, error)

// RunProgram is the default ProgramRunner. The picker renders inline so the
// launched tool's output follows it in the same scrollback.
func RunProgram(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("selector failed: %w", err)
	}
	return final, nil
}
