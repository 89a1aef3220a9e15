package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// tagNotesListingState lists the notes carrying one tag, narrowed further by
// a name pattern.
type tagNotesListingState struct {
	parent State
	tag    core.Tag
	input  textinput.Model
	notes  []core.NoteSummary
	sel    int
}

func newTagNotesListing(app *App, parent State, tag core.Tag) (*tagNotesListingState, error) {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "narrow by name"
	input.Focus()

	s := &tagNotesListingState{parent: parent, tag: tag, input: input}
	if err := s.search(app); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *tagNotesListingState) search(app *App) error {
	notes, err := app.API.SearchNotesByTag(s.tag.ID, s.input.Value())
	if err != nil {
		return err
	}
	s.notes = notes
	s.sel = clamp(s.sel, len(notes))
	return nil
}

func (s *tagNotesListingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.parent, nil, nil
	case "up":
		s.sel = clamp(s.sel-1, len(s.notes))
		return s, nil, nil
	case "down":
		s.sel = clamp(s.sel+1, len(s.notes))
		return s, nil, nil
	case "enter":
		if len(s.notes) == 0 {
			return s, nil, nil
		}
		next, err := openNote(app, s, s.notes[s.sel].ID)
		return orSelf(s, next, err)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if err := s.search(app); err != nil {
		return s, nil, err
	}
	return s, cmd, nil
}

func (s *tagNotesListingState) View(app *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes tagged ") + tagLabel(s.tag) + "\n")
	b.WriteString(s.input.View() + "\n\n")
	for i, summary := range s.notes {
		line := " " + summary.Name
		if i == s.sel {
			line = selectedStyle.Render(" " + summary.Name + " ")
		}
		b.WriteString(line + "\n")
	}
	if len(s.notes) == 0 {
		b.WriteString(subtleStyle.Render(" no notes carry this tag") + "\n")
	}

	footer := helpBar(app, []helpEntry{
		{key: "enter", label: "open"},
		{key: "up/down", label: "select"},
		{key: "esc", label: "back"},
	})
	return frame(app, b.String(), footer)
}
