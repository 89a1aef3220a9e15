package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// noteTagAdditionState prompts for a tag to attach. The name is valid only
// when the tag exists and the note does not already carry it.
type noteTagAdditionState struct {
	parent *noteTagsManagingState
	prompt prompt
	tagID  int64
}

func newNoteTagAddition(parent *noteTagsManagingState) *noteTagAdditionState {
	return &noteTagAdditionState{parent: parent, prompt: newPrompt("Attach tag", "")}
}

func (s *noteTagAdditionState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
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
		if err := app.API.AddNoteTag(s.parent.viewing.note.ID, s.tagID); err != nil {
			return s, nil, err
		}
		if err := s.parent.refresh(app); err != nil {
			return s, nil, err
		}
		return s.parent, nil, nil
	}

	cmd := s.prompt.Update(msg)
	if err := s.validate(app); err != nil {
		return s, nil, err
	}
	return s, cmd, nil
}

func (s *noteTagAdditionState) validate(app *App) error {
	s.prompt.valid = false
	tag, err := app.API.LoadTagByName(s.prompt.Value())
	if err != nil {
		return err
	}
	if tag == nil {
		return nil
	}
	derr, err := app.API.ValidateNewTag(s.parent.viewing.note.ID, tag.ID)
	if err != nil {
		return err
	}
	if derr == nil {
		s.prompt.valid = true
		s.tagID = tag.ID
	}
	return nil
}

func (s *noteTagAdditionState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.prompt.View())
}
