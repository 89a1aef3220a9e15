package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// noteTagDeletionState confirms detaching the selected tag from a note.
type noteTagDeletionState struct {
	parent *noteTagsManagingState
	dialog confirm
}

func (s *noteTagDeletionState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.parent, nil, nil
	case "enter":
		if !s.dialog.yes {
			return s.parent, nil, nil
		}
		tag := s.parent.tags[s.parent.sel]
		if err := app.API.RemoveNoteTag(s.parent.viewing.note.ID, tag.ID); err != nil {
			return s, nil, err
		}
		if err := s.parent.refresh(app); err != nil {
			return s, nil, err
		}
		return s.parent, nil, nil
	}
	s.dialog.Update(key)
	return s, nil, nil
}

func (s *noteTagDeletionState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.dialog.View())
}
