package resolver

import (
	"fmt"
	"strings"

	"github.com/vvka-141/deckpick/pkg/deckpick"
)

const (
	workspaceTag = "[workspace]"
	slidesTag    = "[slides]"
	keySeparator = "::"
)

// WorkspaceSlug returns the last "/" segment of a workspace name,
// e.g. "@org/deck" → "deck". An empty workspace yields "".
func WorkspaceSlug(workspace string) string {
	if i := strings.LastIndex(workspace, "/"); i >= 0 {
		return workspace[i+1:]
	}
	return workspace
}

// FormatLabel renders the display label of an option.
//
// Workspace runs prefer "title (slug)" when the title differs from the slug,
// then "folder (workspace)" when the slug differs from the folder. Everything
// else, including every slides run, renders "title-or-folder (detail)".
// Comparisons are exact and case-sensitive.
func FormatLabel(option deckpick.PresentationOption) string {
	workspace := option.Workspace
	slug := WorkspaceSlug(workspace)

	baseTitle := option.Title
	if baseTitle == "" {
		baseTitle = option.Folder
	}

	isWorkspace := option.Run.Kind == deckpick.RunWorkspace

	prefix := slidesTag
	detail := option.Run.RelativeSlidesPath
	if isWorkspace {
		prefix = workspaceTag
		detail = workspace
	}

	if isWorkspace && option.Title != "" && slug != "" && option.Title != slug {
		return fmt.Sprintf("%s %s (%s)", prefix, baseTitle, slug)
	}

	if isWorkspace && slug != "" && slug != option.Folder {
		return fmt.Sprintf("%s %s (%s)", prefix, option.Folder, workspace)
	}

	return fmt.Sprintf("%s %s (%s)", prefix, baseTitle, detail)
}

// CreateKey returns the selection identity "action::folder::kind::detail".
// Detail is the run's workspace (or the folder when unset) for workspace runs,
// and the relative slides path for slides runs.
func CreateKey(option deckpick.PresentationOption, action deckpick.Action) string {
	var detail string
	if option.Run.Kind == deckpick.RunWorkspace {
		detail = option.Run.Workspace
		if detail == "" {
			detail = option.Folder
		}
	} else {
		detail = option.Run.RelativeSlidesPath
	}

	return strings.Join([]string{
		string(action),
		option.Folder,
		string(option.Run.Kind),
		detail,
	}, keySeparator)
}
