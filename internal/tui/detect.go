package tui

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// EnvNonInteractive forces non-interactive mode when set to a true value.
const EnvNonInteractive = "DECKPICK_NON_INTERACTIVE"

// Mode represents whether the selector may take over the terminal.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

func (m Mode) String() string {
	if m == ModeInteractive {
		return "interactive"
	}
	return "non-interactive"
}

// Terminal describes the process environment DetectMode inspects.
type Terminal struct {
	Getenv      func(string) string
	StdinIsTTY  bool
	StdoutIsTTY bool
}

// CurrentTerminal probes the real stdin, stdout and environment.
func CurrentTerminal() Terminal {
	return Terminal{
		Getenv:      os.Getenv,
		StdinIsTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutIsTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Detect returns the mode for t and a short reason when it is non-interactive.
//
// The selector needs both a keyboard and a screen, so either stream being
// redirected disables it. DECKPICK_NON_INTERACTIVE, CI and NO_COLOR force
// non-interactive mode regardless of the streams.
func (t Terminal) Detect() (Mode, string) {
	getenv := t.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	if v, err := strconv.ParseBool(getenv(EnvNonInteractive)); err == nil && v {
		return ModeNonInteractive, EnvNonInteractive + " is set"
	}
	if getenv("CI") != "" {
		return ModeNonInteractive, "CI is set"
	}
	if getenv("NO_COLOR") != "" {
		return ModeNonInteractive, "NO_COLOR is set"
	}
	if !t.StdinIsTTY {
		return ModeNonInteractive, "stdin is not a terminal"
	}
	if !t.StdoutIsTTY {
		return ModeNonInteractive, "stdout is not a terminal"
	}
	return ModeInteractive, ""
}

// DetectMode determines the mode of the current process.
func DetectMode() Mode {
	mode, _ := CurrentTerminal().Detect()
	return mode
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
