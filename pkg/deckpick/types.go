package deckpick

import (
	"fmt"
)

// Action names the presentation tool operation a selection is made for.
type Action string

const (
	// ActionDev starts the presentation dev server.
	ActionDev Action = "dev"

	// ActionExport renders the presentation to a static artifact.
	ActionExport Action = "export"
)

// ParseAction converts a user-supplied string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionDev, ActionExport:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%q (expected dev or export): %w", s, ErrInvalidAction)
	}
}

// String implements fmt.Stringer.
func (a Action) String() string {
	return string(a)
}

// PresentationMetadata describes one discovered presentation folder.
// Empty strings mean "absent". Records are immutable once returned by a scan.
type PresentationMetadata struct {
	// Folder is the directory name; unique within one scan.
	Folder string `json:"folder" yaml:"folder"`

	// Workspace is the package name declared in the manifest.
	Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`

	// Scripts maps script names to commands from the manifest. Never nil.
	Scripts map[string]string `json:"scripts" yaml:"scripts"`

	// SlidesPath is the absolute path of the slides file, when present.
	SlidesPath string `json:"slidesPath,omitempty" yaml:"slides_path,omitempty"`

	// RelativeSlidesPath is SlidesPath relative to the scan root.
	RelativeSlidesPath string `json:"relativeSlidesPath,omitempty" yaml:"relative_slides_path,omitempty"`

	// Title is the human-readable title resolved from manifest or slides.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

func (m PresentationMetadata) HasWorkspace() bool { return m.Workspace != "" }
func (m PresentationMetadata) HasSlides() bool    { return m.SlidesPath != "" }
func (m PresentationMetadata) HasTitle() bool     { return m.Title != "" }

// HasScript reports whether the manifest declares a script named exactly action.
func (m PresentationMetadata) HasScript(action Action) bool {
	_, ok := m.Scripts[string(action)]
	return ok
}

// RunKind discriminates the two ways a presentation can be launched.
type RunKind string

const (
	// RunWorkspace invokes the action through the workspace's declared script.
	RunWorkspace RunKind = "workspace"

	// RunSlides invokes the presentation tool directly against the slides file.
	RunSlides RunKind = "slides"
)

// RunTarget is the launch contract of an option. Only the fields belonging
// to Kind are populated.
type RunTarget struct {
	Kind RunKind `json:"type" yaml:"type"`

	// Workspace is set when Kind is RunWorkspace.
	Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`

	// SlidesPath and RelativeSlidesPath are set when Kind is RunSlides.
	SlidesPath         string `json:"slidesPath,omitempty" yaml:"slides_path,omitempty"`
	RelativeSlidesPath string `json:"relativeSlidesPath,omitempty" yaml:"relative_slides_path,omitempty"`

	Action Action `json:"action" yaml:"action"`
}

// PresentationOption is a runnable choice derived from one metadata record
// for one action.
type PresentationOption struct {
	Folder    string    `json:"folder" yaml:"folder"`
	Workspace string    `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	Title     string    `json:"title,omitempty" yaml:"title,omitempty"`
	Run       RunTarget `json:"run" yaml:"run"`

	// Carried for display and as a launch fallback even for workspace runs.
	SlidesPath         string `json:"slidesPath,omitempty" yaml:"slides_path,omitempty"`
	RelativeSlidesPath string `json:"relativeSlidesPath,omitempty" yaml:"relative_slides_path,omitempty"`
}

// IsWorkspace reports whether the option runs through a workspace script.
func (o PresentationOption) IsWorkspace() bool {
	return o.Run.Kind == RunWorkspace
}
