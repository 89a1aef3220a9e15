package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// errorState is the recovery popup. It keeps the interrupted state intact so
// dismissal lands the user exactly where they were.
type errorState struct {
	inner   State
	message string
}

func (s *errorState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}
	switch key.String() {
	case "enter", "esc":
		return s.inner, nil, nil
	case "q":
		return exitState{}, nil, nil
	}
	return s, nil, nil
}

func (s *errorState) View(app *App) string {
	popup := errorPopupStyle.Render(
		invalidStyle.Render("Error") + "\n\n" +
			s.message + "\n\n" +
			subtleStyle.Render("enter dismiss · q quit"),
	)
	return overlay(app, s.inner.View(app), popup)
}
