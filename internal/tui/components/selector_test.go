package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func press(t *testing.T, s Selector, msgs ...tea.Msg) (Selector, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = s.Update(msg)
		var ok bool
		s, ok = model.(Selector)
		require.True(t, ok, "Update must return a Selector")
	}
	return s, cmd
}

func sampleOptions() []Option {
	return []Option{
		{Key: "dev::alpha::slides::presentations/alpha/slides.md", Label: "[slides] Alpha (presentations/alpha/slides.md)"},
		{Key: "dev::beta::workspace::@talks/beta", Label: "[workspace] Beta (beta)"},
		{Key: "dev::gamma::slides::presentations/gamma/slides.md", Label: "[slides] gamma (presentations/gamma/slides.md)"},
	}
}

func TestSelector_Navigation(t *testing.T) {
	s := NewSelector("", sampleOptions())

	s, _ = press(t, s, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, s.Cursor())

	s, _ = press(t, s, runeKey("j"), runeKey("j"))
	assert.Equal(t, 2, s.Cursor(), "cursor stops at the last option")

	s, _ = press(t, s, runeKey("k"))
	assert.Equal(t, 1, s.Cursor())

	s, _ = press(t, s, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, s.Cursor(), "cursor stops at the first option")

	s, _ = press(t, s, runeKey("G"))
	assert.Equal(t, 2, s.Cursor())

	s, _ = press(t, s, runeKey("g"))
	assert.Equal(t, 0, s.Cursor())
}

func TestSelector_EnterSelects(t *testing.T) {
	s := NewSelector("", sampleOptions())

	s, cmd := press(t, s, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, s.Submitted())
	assert.False(t, s.Cancelled())
	assert.Equal(t, 1, s.Selected())
	assert.Equal(t, "dev::beta::workspace::@talks/beta", s.SelectedKey())
	require.NotNil(t, s.SelectedOption())
	assert.Equal(t, "[workspace] Beta (beta)", s.SelectedOption().Label)
}

func TestSelector_CancelKeys(t *testing.T) {
	tests := map[string]tea.KeyMsg{
		"q":      runeKey("q"),
		"esc":    {Type: tea.KeyEsc},
		"ctrl+c": {Type: tea.KeyCtrlC},
	}

	for name, msg := range tests {
		t.Run(name, func(t *testing.T) {
			s, cmd := press(t, NewSelector("", sampleOptions()), msg)

			require.NotNil(t, cmd)
			assert.True(t, s.Cancelled())
			assert.False(t, s.Submitted())
			assert.Equal(t, -1, s.Selected())
			assert.Nil(t, s.SelectedOption())
			assert.Equal(t, "", s.SelectedKey())
		})
	}
}

func TestSelector_EnterWithoutOptionsIsIgnored(t *testing.T) {
	s, cmd := press(t, NewSelector("", nil), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, s.Submitted())
	assert.Nil(t, s.SelectedOption())
}

func TestSelector_WindowSize(t *testing.T) {
	s, cmd := press(t, NewSelector("", sampleOptions()), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, s.width)
}

func TestSelector_View(t *testing.T) {
	s := NewSelector("Pick one", sampleOptions())
	view := s.View()

	assert.Contains(t, view, "Pick one")
	assert.Contains(t, view, "[slides] Alpha (presentations/alpha/slides.md)")
	assert.Contains(t, view, "[workspace] Beta (beta)")
	assert.Contains(t, view, "enter select")

	quiet := NewSelector("", sampleOptions()).WithShowHelp(false).View()
	assert.NotContains(t, quiet, "enter select")
	assert.NotContains(t, quiet, "Pick one")
}
