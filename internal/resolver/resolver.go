package resolver

import (
	"github.com/vvka-141/deckpick/pkg/deckpick"
)

// Resolve derives the option for meta and action. The boolean is false when
// the record is not runnable for that action.
func Resolve(meta deckpick.PresentationMetadata, action deckpick.Action) (deckpick.PresentationOption, bool) {
	option := deckpick.PresentationOption{
		Folder:             meta.Folder,
		Workspace:          meta.Workspace,
		Title:              meta.Title,
		SlidesPath:         meta.SlidesPath,
		RelativeSlidesPath: meta.RelativeSlidesPath,
	}

	switch {
	case meta.HasWorkspace() && meta.HasScript(action):
		option.Run = deckpick.RunTarget{
			Kind:      deckpick.RunWorkspace,
			Workspace: meta.Workspace,
			Action:    action,
		}
	case meta.HasSlides():
		option.Run = deckpick.RunTarget{
			Kind:               deckpick.RunSlides,
			SlidesPath:         meta.SlidesPath,
			RelativeSlidesPath: meta.RelativeSlidesPath,
			Action:             action,
		}
	default:
		return deckpick.PresentationOption{}, false
	}

	return option, true
}

// ResolveAll maps and filters metas, preserving their order.
func ResolveAll(metas []deckpick.PresentationMetadata, action deckpick.Action) []deckpick.PresentationOption {
	options := make([]deckpick.PresentationOption, 0, len(metas))
	for _, meta := range metas {
		if option, ok := Resolve(meta, action); ok {
			options = append(options, option)
		}
	}
	return options
}

// FindByFolder returns the option whose folder matches exactly.
func FindByFolder(options []deckpick.PresentationOption, folder string) (deckpick.PresentationOption, bool) {
	for _, option := range options {
		if option.Folder == folder {
			return option, true
		}
	}
	return deckpick.PresentationOption{}, false
}

// Folders lists the folder names of options in order.
func Folders(options []deckpick.PresentationOption) []string {
	names := make([]string, 0, len(options))
	for _, option := range options {
		names = append(names, option.Folder)
	}
	return names
}
