package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// scripted returns a ProgramRunner that feeds msgs to the model until it quits.
func scripted(msgs ...tea.Msg) ProgramRunner {
	return func(model tea.Model) (tea.Model, error) {
		for _, msg := range msgs {
			var cmd tea.Cmd
			model, cmd = model.Update(msg)
			if cmd != nil {
				if _, quit := cmd().(tea.QuitMsg); quit {
					break
				}
			}
		}
		return model, nil
	}
}

func testOptions() []deckpick.PresentationOption {
	return []deckpick.PresentationOption{
		{
			Folder:    "intro",
			Workspace: "@talks/intro",
			Title:     "Intro",
			Run:       deckpick.RunTarget{Kind: deckpick.RunWorkspace, Workspace: "@talks/intro", Action: deckpick.ActionDev},
		},
		{
			Folder:             "outro",
			Title:              "Outro",
			SlidesPath:         "/ws/presentations/outro/slides.md",
			RelativeSlidesPath: "presentations/outro/slides.md",
			Run: deckpick.RunTarget{
				Kind:               deckpick.RunSlides,
				SlidesPath:         "/ws/presentations/outro/slides.md",
				RelativeSlidesPath: "presentations/outro/slides.md",
				Action:             deckpick.ActionDev,
			},
		},
	}
}

func TestDefaultRequest(t *testing.T) {
	dev := DefaultRequest(deckpick.ActionDev)
	assert.Equal(t, "Select a Slidev presentation to run", dev.Heading)
	assert.Equal(t, "Use arrow keys to pick a presentation, press Enter to launch, or Q to cancel.", dev.HelpText)

	export := DefaultRequest(deckpick.ActionExport)
	assert.Equal(t, "Select a Slidev presentation to export", export.Heading)
	assert.Equal(t, "Use arrow keys to pick a presentation, press Enter to export, or Q to cancel.", export.HelpText)
}

func TestSelectPresentation_PicksHighlightedOption(t *testing.T) {
	req := DefaultRequest(deckpick.ActionDev)
	req.Run = scripted(tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	sel, err := SelectPresentation(testOptions(), req)
	require.NoError(t, err)

	assert.False(t, sel.Cancelled)
	assert.Equal(t, "outro", sel.Option.Folder)
	assert.Equal(t, deckpick.RunSlides, sel.Option.Run.Kind)
}

func TestSelectPresentation_FirstOptionByDefault(t *testing.T) {
	req := DefaultRequest(deckpick.ActionDev)
	req.Run = scripted(tea.KeyMsg{Type: tea.KeyEnter})

	sel, err := SelectPresentation(testOptions(), req)
	require.NoError(t, err)
	assert.Equal(t, Selected(testOptions()[0]), sel)
}

func TestSelectPresentation_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(msg.String(), func(t *testing.T) {
			req := DefaultRequest(deckpick.ActionExport)
			req.Run = scripted(tea.KeyMsg{Type: tea.KeyDown}, msg, tea.KeyMsg{Type: tea.KeyEnter})

			sel, err := SelectPresentation(testOptions(), req)
			require.NoError(t, err)
			assert.Equal(t, Cancelled(), sel)
		})
	}
}

func TestSelectPresentation_NoInputMeansCancelled(t *testing.T) {
	req := DefaultRequest(deckpick.ActionDev)
	req.Run = scripted()

	sel, err := SelectPresentation(testOptions(), req)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled)
}

func TestSelectPresentation_EmptyOptions(t *testing.T) {
	req := DefaultRequest(deckpick.ActionDev)
	req.Run = func(tea.Model) (tea.Model, error) {
		t.Fatal("runner must not be called without options")
		return nil, nil
	}

	_, err := SelectPresentation(nil, req)
	assert.ErrorIs(t, err, deckpick.ErrNoPresentations)
}

func TestSelectPresentation_RunnerError(t *testing.T) {
	boom := errors.New("no tty")
	req := DefaultRequest(deckpick.ActionDev)
	req.Run = func(tea.Model) (tea.Model, error) { return nil, boom }

	_, err := SelectPresentation(testOptions(), req)
	assert.ErrorIs(t, err, boom)
}

func TestPickerModel_View(t *testing.T) {
	m := newPickerModel(testOptions(), DefaultRequest(deckpick.ActionDev))
	view := m.View()

	assert.Contains(t, view, "Select a Slidev presentation to run")
	assert.Contains(t, view, "press Enter to launch")
	assert.Contains(t, view, "[workspace] Intro (intro)")
	assert.Contains(t, view, "[slides] Outro (presentations/outro/slides.md)")

	done, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, done.View(), "view is cleared after a choice")
}

func TestPickerModel_KeysFollowAction(t *testing.T) {
	m := newPickerModel(testOptions(), DefaultRequest(deckpick.ActionExport))
	done, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picked := done.(pickerModel).selector.SelectedKey()
	assert.Equal(t, "export::intro::workspace::@talks/intro", picked)
}
