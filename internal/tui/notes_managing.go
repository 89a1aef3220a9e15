package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillbook/quill/internal/core"
)

// notesManagingState is the incremental note search screen. Typing narrows
// the result list live; Tab toggles a rendered preview of the selected note.
type notesManagingState struct {
	parent  State
	input   textinput.Model
	results []core.NoteSummary
	sel     int
	help    bool

	preview     bool
	previewText string
}

func newNotesManaging(parent State, app *App, pattern string) (*notesManagingState, error) {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "note name"
	input.SetValue(pattern)
	input.CursorEnd()
	input.Focus()

	s := &notesManagingState{parent: parent, input: input}
	if err := s.search(app); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *notesManagingState) search(app *App) error {
	results, err := app.API.SearchNotesByName(s.input.Value())
	if err != nil {
		return err
	}
	s.results = results
	s.sel = clamp(s.sel, len(results))
	return nil
}

func (s *notesManagingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.parent, nil, nil
	case "up":
		s.sel = clamp(s.sel-1, len(s.results))
		s.refreshPreview(app)
		return s, nil, nil
	case "down":
		s.sel = clamp(s.sel+1, len(s.results))
		s.refreshPreview(app)
		return s, nil, nil
	case "tab":
		s.preview = !s.preview
		s.previewText = ""
		s.refreshPreview(app)
		return s, nil, nil
	case "ctrl+n":
		if app.Writable() {
			return newNoteCreation(s, app), nil, nil
		}
		return s, nil, nil
	case "ctrl+h":
		s.help = !s.help
		return s, nil, nil
	case "enter":
		if len(s.results) == 0 {
			return s, nil, nil
		}
		next, err := openNote(app, s, s.results[s.sel].ID)
		return orSelf(s, next, err)
	}

	before := s.input.Value()
	cmd := s.updateInput(msg)
	if s.input.Value() != before {
		s.sel = 0
	}
	if err := s.search(app); err != nil {
		return s, nil, err
	}
	s.refreshPreview(app)
	return s, cmd, nil
}

func (s *notesManagingState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// refreshPreview re-renders the preview pane for the current selection. A
// preview failure is cosmetic and never interrupts the search flow.
func (s *notesManagingState) refreshPreview(app *App) {
	if !s.preview || len(s.results) == 0 {
		s.previewText = ""
		return
	}
	note, err := app.API.LoadNoteByID(s.results[s.sel].ID)
	if err != nil || note == nil {
		s.previewText = ""
		return
	}
	rendered, err := glamour.Render(note.Content, "dark")
	if err != nil {
		s.previewText = note.Content
		return
	}
	s.previewText = rendered
}

func (s *notesManagingState) View(app *App) string {
	var b strings.Builder
	b.WriteString(s.input.View() + "\n\n")

	for i, summary := range s.results {
		line := " " + highlightName(summary.Name, s.input.Value(), i == s.sel)
		if len(summary.Tags) > 0 {
			line += "  " + tagLabels(summary.Tags)
		}
		b.WriteString(line + "\n")
	}
	if len(s.results) == 0 {
		b.WriteString(subtleStyle.Render(" no notes match") + "\n")
	}

	body := b.String()
	if s.preview {
		listWidth := app.Width / 2
		list := lipgloss.NewStyle().Width(listWidth).Render(body)
		pane := lipgloss.NewStyle().Width(app.Width - listWidth).Render(s.previewText)
		body = lipgloss.JoinHorizontal(lipgloss.Top, list, pane)
	}

	entries := []helpEntry{
		{key: "enter", label: "open"},
		{key: "tab", label: "preview"},
		{key: "ctrl+n", label: "new note", writes: true},
		{key: "esc", label: "back"},
	}
	if s.help {
		entries = append(entries,
			helpEntry{key: "up/down", label: "select"},
			helpEntry{key: "ctrl+h", label: "less help"},
		)
	}
	return frame(app, body, helpBar(app, entries))
}

// highlightName underlines the first occurrence of the search pattern inside
// a result name. The selected row is additionally reversed.
func highlightName(name, pattern string, selected bool) string {
	base := lipgloss.NewStyle().Reverse(selected)
	idx := -1
	if pattern != "" {
		idx = strings.Index(strings.ToLower(name), strings.ToLower(pattern))
	}
	if idx < 0 {
		return base.Render(name)
	}
	match := base.Copy().Underline(true)
	end := idx + len(pattern)
	return base.Render(name[:idx]) + match.Render(name[idx:end]) + base.Render(name[end:])
}

// clamp confines an index to [0, n), collapsing to 0 for empty lists.
func clamp(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// openNote loads a note with its tags and enters the viewing screen with the
// selection on the first element.
func openNote(app *App, parent State, id int64) (State, error) {
	note, err := app.API.LoadNoteByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note %d no longer exists", id)
	}
	return newNoteViewing(app, parent, *note)
}
