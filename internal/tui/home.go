package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homeState is the notebook landing screen.
type homeState struct{}

func (s *homeState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}
	switch key.String() {
	case "c":
		if app.Writable() {
			return newNoteCreation(s, app), nil, nil
		}
	case "s":
		next, err := newNotesManaging(s, app, "")
		return orSelf(s, next, err)
	case "t":
		next, err := newTagsManaging(s, app, "")
		return orSelf(s, next, err)
	case "q", "esc":
		return exitState{}, nil, nil
	}
	return s, nil, nil
}

func orSelf(s State, next State, err error) (State, tea.Cmd, error) {
	if err != nil {
		return s, nil, err
	}
	return next, nil, nil
}

func (s *homeState) View(app *App) string {
	mode := ""
	if !app.Writable() {
		mode = invalidStyle.Render(" (read-only)")
	}
	lines := []string{
		"",
		titleStyle.Render("quill"),
		subtleStyle.Render(app.Notebook) + mode,
		"",
	}
	body := lipgloss.PlaceHorizontal(app.Width, lipgloss.Center, strings.Join(lines, "\n"))
	footer := helpBar(app, []helpEntry{
		{key: "s", label: "search notes"},
		{key: "t", label: "tags"},
		{key: "c", label: "new note", writes: true},
		{key: "q", label: "quit"},
	})
	return frame(app, body, footer)
}
