package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// noteTagsManagingState lists the tags attached to one note and supports
// attach and detach.
type noteTagsManagingState struct {
	viewing *noteViewingState
	tags    []core.Tag
	sel     int
	help    bool
}

func newNoteTagsManaging(app *App, viewing *noteViewingState) (*noteTagsManagingState, error) {
	s := &noteTagsManagingState{viewing: viewing}
	if err := s.refresh(app); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *noteTagsManagingState) refresh(app *App) error {
	tags, err := app.API.ListNoteTags(s.viewing.note.ID)
	if err != nil {
		return err
	}
	s.tags = tags
	s.sel = clamp(s.sel, len(tags))
	s.viewing.tags = tags
	return nil
}

func (s *noteTagsManagingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc", "q":
		return s.viewing, nil, nil
	case "up", "k":
		s.sel = clamp(s.sel-1, len(s.tags))
	case "down", "j":
		s.sel = clamp(s.sel+1, len(s.tags))
	case "a":
		if app.Writable() {
			return newNoteTagAddition(s), nil, nil
		}
	case "d":
		if app.Writable() && len(s.tags) > 0 {
			return &noteTagDeletionState{parent: s, dialog: confirm{
				question: fmt.Sprintf("Detach tag %q?", s.tags[s.sel].Name),
			}}, nil, nil
		}
	case "enter":
		if len(s.tags) == 0 {
			return s, nil, nil
		}
		next, err := newTagNotesListing(app, s, s.tags[s.sel])
		return orSelf(s, next, err)
	case "ctrl+h":
		s.help = !s.help
	}
	return s, nil, nil
}

func (s *noteTagsManagingState) View(app *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tags of "+s.viewing.note.Name) + "\n\n")
	for i, tag := range s.tags {
		line := " " + tagLabel(tag)
		if i == s.sel {
			line = selectedStyle.Render(" "+tag.Name+" ")
		}
		b.WriteString(line + "\n")
	}
	if len(s.tags) == 0 {
		b.WriteString(subtleStyle.Render(" no tags attached") + "\n")
	}

	entries := []helpEntry{
		{key: "a", label: "attach", writes: true},
		{key: "d", label: "detach", writes: true},
		{key: "enter", label: "notes with tag"},
		{key: "esc", label: "back"},
	}
	if s.help {
		entries = append(entries, helpEntry{key: "j/k", label: "select"})
	}
	return frame(app, b.String(), helpBar(app, entries))
}
