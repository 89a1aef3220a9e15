package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// tagCreationState prompts for a new tag name. The server assigns the color.
type tagCreationState struct {
	parent *tagsManagingState
	prompt prompt
}

func newTagCreation(parent *tagsManagingState) *tagCreationState {
	return &tagCreationState{parent: parent, prompt: newPrompt("New tag", "")}
}

func (s *tagCreationState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
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
		if _, err := app.API.CreateTag(s.prompt.Value()); err != nil {
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

func (s *tagCreationState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.prompt.View())
}
