package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// noteCreationState prompts for a new note name with live validation.
type noteCreationState struct {
	parent State
	prompt prompt
}

func newNoteCreation(parent State, app *App) *noteCreationState {
	return &noteCreationState{parent: parent, prompt: newPrompt("New note", "")}
}

func (s *noteCreationState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
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
		id, err := app.API.CreateNote(s.prompt.Value(), "")
		if err != nil {
			return s, nil, err
		}
		next, err := openNote(app, s.parent, id)
		return orSelf(s, next, err)
	}

	cmd := s.prompt.Update(msg)
	derr, err := app.API.ValidateNoteName(s.prompt.Value())
	if err != nil {
		return s, nil, err
	}
	s.prompt.valid = derr == nil
	return s, cmd, nil
}

func (s *noteCreationState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.prompt.View())
}
