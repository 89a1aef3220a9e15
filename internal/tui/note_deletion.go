package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// noteDeletionState confirms deletion of the note being viewed.
type noteDeletionState struct {
	viewing *noteViewingState
	dialog  confirm
}

func (s *noteDeletionState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.viewing, nil, nil
	case "enter":
		if !s.dialog.yes {
			return s.viewing, nil, nil
		}
		if err := app.API.DeleteNote(s.viewing.note.ID); err != nil {
			return s, nil, err
		}
		return s.viewing.parent, nil, nil
	}
	s.dialog.Update(key)
	return s, nil, nil
}

func (s *noteDeletionState) View(app *App) string {
	return overlay(app, s.viewing.View(app), s.dialog.View())
}
