package launcher

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/deckpick/internal/config"
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// Command is a fully resolved process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env holds KEY=VALUE pairs added to the inherited environment.
	Env []string
}

// String renders the command line for logs.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			arg = strconv.Quote(arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Settings are the launch parameters derived from configuration.
type Settings struct {
	Root            string
	PackageManager  string
	ToolCommand     string
	ToolArgs        []string
	ExportTimeout   time.Duration
	ExportWaitUntil string
	ExportExtraArgs []string
	Open            bool
}

// SettingsFromConfig resolves Settings for a workspace rooted at root.
func SettingsFromConfig(root string, cfg *config.ProjectConfig) (Settings, error) {
	timeout, err := cfg.ExportTimeout()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Root:            root,
		PackageManager:  cfg.PackageManager,
		ToolCommand:     cfg.Tool.Command,
		ToolArgs:        cfg.Tool.Args,
		ExportTimeout:   timeout,
		ExportWaitUntil: cfg.Export.WaitUntil,
		ExportExtraArgs: cfg.Export.ExtraArgs,
		Open:            cfg.OpenBrowser(),
	}, nil
}

// BuildCommand maps an option and action to the process that runs it.
func BuildCommand(option deckpick.PresentationOption, action deckpick.Action, s Settings) (Command, error) {
	switch option.Run.Kind {
	case deckpick.RunWorkspace:
		return workspaceCommand(option, action, s)
	case deckpick.RunSlides:
		return slidesCommand(option, action, s)
	default:
		return Command{}, fmt.Errorf("%w: unknown run type %q for %s", deckpick.ErrLaunchFailed, option.Run.Kind, option.Folder)
	}
}

func workspaceCommand(option deckpick.PresentationOption, action deckpick.Action, s Settings) (Command, error) {
	workspace := option.Run.Workspace
	if workspace == "" {
		return Command{}, fmt.Errorf("%w: could not determine workspace for %s", deckpick.ErrLaunchFailed, option.Folder)
	}

	pm := s.PackageManager
	if pm == "" {
		pm = deckpick.DefaultPackageManager
	}

	var args []string
	switch filepath.Base(pm) {
	case "npm":
		args = []string{"--workspace", workspace, "run", string(action)}
	case "yarn":
		args = []string{"workspace", workspace, "run", string(action)}
	default:
		// pnpm and bun share the --filter syntax.
		args = []string{"--filter", workspace, "run", string(action)}
	}

	return Command{
		Name: pm,
		Args: args,
		Dir:  s.Root,
		Env:  []string{"NODE_ENV=development"},
	}, nil
}

func slidesCommand(option deckpick.PresentationOption, action deckpick.Action, s Settings) (Command, error) {
	slidesPath := option.Run.SlidesPath
	if slidesPath == "" {
		slidesPath = option.SlidesPath
	}
	if slidesPath == "" {
		return Command{}, fmt.Errorf("%w: could not determine slides path for %s", deckpick.ErrLaunchFailed, option.Folder)
	}

	name := s.ToolCommand
	toolArgs := s.ToolArgs
	if name == "" {
		name = deckpick.DefaultToolCommand
		toolArgs = deckpick.DefaultToolArgs()
	}

	args := append([]string{}, toolArgs...)
	switch action {
	case deckpick.ActionExport:
		timeout := s.ExportTimeout
		if timeout <= 0 {
			timeout = deckpick.DefaultExportTimeout
		}
		waitUntil := s.ExportWaitUntil
		if waitUntil == "" {
			waitUntil = deckpick.DefaultExportWaitUntil
		}
		args = append(args,
			"export",
			"--timeout", strconv.FormatInt(timeout.Milliseconds(), 10),
			"--wait-until", waitUntil,
		)
		args = append(args, s.ExportExtraArgs...)
		args = append(args, filepath.Base(slidesPath))
	case deckpick.ActionDev:
		args = append(args, filepath.Base(slidesPath))
		if s.Open {
			args = append(args, "--open")
		}
	default:
		return Command{}, fmt.Errorf("%w: %q", deckpick.ErrInvalidAction, action)
	}

	return Command{
		Name: name,
		Args: args,
		Dir:  filepath.Dir(slidesPath),
		Env:  []string{"NODE_ENV=development"},
	}, nil
}
