package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// noteRenamingState prompts for a replacement note name over the viewing
// screen.
type noteRenamingState struct {
	viewing *noteViewingState
	prompt  prompt
}

func newNoteRenaming(app *App, viewing *noteViewingState) *noteRenamingState {
	return &noteRenamingState{
		viewing: viewing,
		prompt:  newPrompt("Rename note", viewing.note.Name),
	}
}

func (s *noteRenamingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.viewing, nil, nil
	case "enter":
		if !s.prompt.valid {
			return s, nil, nil
		}
		err := app.API.RenameNote(s.viewing.note.ID, s.prompt.Value())
		if core.IsDomain(err) {
			s.prompt.valid = false
			return s, nil, nil
		}
		if err != nil {
			return s, nil, err
		}
		s.viewing.note.Name = s.prompt.Value()
		return s.viewing, nil, nil
	}

	cmd := s.prompt.Update(msg)
	derr, err := app.API.ValidateNoteName(s.prompt.Value())
	if err != nil {
		return s, nil, err
	}
	s.prompt.valid = derr == nil
	return s, cmd, nil
}

func (s *noteRenamingState) View(app *App) string {
	return overlay(app, s.viewing.View(app), s.prompt.View())
}
