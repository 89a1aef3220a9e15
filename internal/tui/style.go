package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillbook/quill/internal/core"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().Reverse(true)

	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	errorPopupStyle = popupStyle.Copy().
			BorderForeground(lipgloss.Color("9"))

	helpKeyStyle  = lipgloss.NewStyle().Bold(true)
	helpDimStyle  = lipgloss.NewStyle().Faint(true)
	helpGreyStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

func tagLabel(tag core.Tag) string {
	color := lipgloss.Color(fmt.Sprintf("#%06X", tag.Color&0xFFFFFF))
	return lipgloss.NewStyle().Foreground(color).Render("#" + tag.Name)
}

func tagLabels(tags []core.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, tagLabel(t))
	}
	return strings.Join(parts, " ")
}

// helpEntry is one key binding in the help bar. Destructive entries grey out
// under a read-only notebook.
type helpEntry struct {
	key    string
	label  string
	writes bool
}

func helpBar(app *App, entries []helpEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		text := helpKeyStyle.Render(e.key) + helpDimStyle.Render(" "+e.label)
		if e.writes && !app.Writable() {
			text = helpGreyStyle.Render(e.key + " " + e.label)
		}
		parts = append(parts, text)
	}
	return subtleStyle.Render(strings.Join(parts, "  "))
}
