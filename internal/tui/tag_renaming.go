package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// tagRenamingState prompts for a replacement name for the selected tag.
type tagRenamingState struct {
	parent *tagsManagingState
	prompt prompt
}

func newTagRenaming(parent *tagsManagingState) *tagRenamingState {
	return &tagRenamingState{
		parent: parent,
		prompt: newPrompt("Rename tag", parent.tags[parent.sel].Name),
	}
}

func (s *tagRenamingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.parent, nil, nil
	case "enter":
		if !s.prompt.valid {
			return s, nil, nil
		}
		err := app.API.RenameTag(s.parent.tags[s.parent.sel].ID, s.prompt.Value())
		if core.IsDomain(err) {
			s.prompt.valid = false
			return s, nil, nil
		}
		if err != nil {
			return s, nil, err
		}
		if err := s.parent.search(app); err != nil {
			return s, nil, err
		}
		return s.parent, nil, nil
	}

	cmd := s.prompt.Update(msg)
	derr, err := app.API.ValidateTagName(s.prompt.Value())
	if err != nil {
		return s, nil, err
	}
	s.prompt.valid = derr == nil
	return s, cmd, nil
}

func (s *tagRenamingState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.prompt.View())
}
