package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// overlay centers a popup box over an already-rendered frame. Popup rows
// replace whole frame rows, which keeps the compositing independent of any
// escape sequences inside the underlying frame.
func overlay(app *App, base, popup string) string {
	width, height := app.Width, app.Height
	if width < 1 || height < 1 {
		return popup
	}

	rows := strings.Split(base, "\n")
	for len(rows) < height {
		rows = append(rows, "")
	}
	rows = rows[:height]

	popupRows := strings.Split(popup, "\n")
	top := (height - len(popupRows)) / 2
	if top < 0 {
		top = 0
	}
	for i, pr := range popupRows {
		if top+i >= height {
			break
		}
		rows[top+i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, pr)
	}
	return strings.Join(rows, "\n")
}

// frame lays a body out over the full terminal with a footer pinned to the
// bottom row.
func frame(app *App, body, footer string) string {
	height := app.Height
	if height < 2 {
		return body
	}
	rows := strings.Split(body, "\n")
	if len(rows) > height-1 {
		rows = rows[:height-1]
	}
	for len(rows) < height-1 {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n") + "\n" + footer
}
