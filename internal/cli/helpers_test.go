package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/deckpick/internal/launcher"
	"github.com/vvka-141/deckpick/internal/tui"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// createTestProject writes files (slash-separated paths) under a temp root.
func createTestProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
	return dir
}

// resetFlags points every command at root and clears the environment overrides.
func resetFlags(t *testing.T, root string) {
	t.Helper()
	rootFlags = rootFlagValues{root: root}
	devFlags = runFlagValues{}
	exportFlags = runFlagValues{}
	listFlags = listFlagValues{}

	for _, key := range []string{
		"DECKPICK_PRESENTATIONS_DIR",
		"DECKPICK_PACKAGE_MANAGER",
		"DECKPICK_SCAN_WORKERS",
		"DECKPICK_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

// captureOutput redirects cmd's stdout and stderr for the duration of the test.
func captureOutput(t *testing.T, cmd *cobra.Command) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	return &out, &errOut
}

type recordingRunner struct {
	code  int
	err   error
	calls []launcher.Command
}

func (r *recordingRunner) Run(_ context.Context, cmd launcher.Command) (int, error) {
	r.calls = append(r.calls, cmd)
	return r.code, r.err
}

// stubRunner replaces process execution with r.
func stubRunner(t *testing.T, r *recordingRunner) {
	t.Helper()
	orig := newRunner
	newRunner = func() launcher.Runner { return r }
	t.Cleanup(func() { newRunner = orig })
}

// stubTerminal forces the detected interaction mode.
func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := detectTerminal
	detectTerminal = func() tui.Terminal {
		return tui.Terminal{
			Getenv:      func(string) string { return "" },
			StdinIsTTY:  interactive,
			StdoutIsTTY: interactive,
		}
	}
	t.Cleanup(func() { detectTerminal = orig })
}

// stubSelect replaces the interactive selector.
func stubSelect(t *testing.T, fn func(options []deckpick.PresentationOption, req tui.SelectRequest) (tui.Selection, error)) {
	t.Helper()
	orig := selectPresentation
	selectPresentation = fn
	t.Cleanup(func() { selectPresentation = orig })
}
