package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// tagDeletionState confirms deleting a tag, which detaches it from every
// note.
type tagDeletionState struct {
	parent *tagsManagingState
	dialog confirm
}

func (s *tagDeletionState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
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
		if err := app.API.DeleteTag(s.parent.tags[s.parent.sel].ID); err != nil {
			return s, nil, err
		}
		if err := s.parent.search(app); err != nil {
			return s, nil, err
		}
		return s.parent, nil, nil
	}
	s.dialog.Update(key)
	return s, nil, nil
}

func (s *tagDeletionState) View(app *App) string {
	return overlay(app, s.parent.View(app), s.dialog.View())
}
