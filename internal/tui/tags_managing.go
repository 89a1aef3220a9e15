package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// tagsManagingState is the incremental tag search screen with create, rename
// and delete commands.
type tagsManagingState struct {
	parent State
	input  textinput.Model
	tags   []core.Tag
	sel    int
	help   bool
}

func newTagsManaging(parent State, app *App, pattern string) (*tagsManagingState, error) {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "tag name"
	input.SetValue(pattern)
	input.CursorEnd()
	input.Focus()

	s := &tagsManagingState{parent: parent, input: input}
	if err := s.search(app); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *tagsManagingState) search(app *App) error {
	tags, err := app.API.SearchTagsByName(s.input.Value())
	if err != nil {
		return err
	}
	s.tags = tags
	s.sel = clamp(s.sel, len(tags))
	return nil
}

func (s *tagsManagingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "esc":
		return s.parent, nil, nil
	case "up":
		s.sel = clamp(s.sel-1, len(s.tags))
		return s, nil, nil
	case "down":
		s.sel = clamp(s.sel+1, len(s.tags))
		return s, nil, nil
	case "ctrl+n":
		if app.Writable() {
			return newTagCreation(s), nil, nil
		}
		return s, nil, nil
	case "ctrl+r":
		if app.Writable() && len(s.tags) > 0 {
			return newTagRenaming(s), nil, nil
		}
		return s, nil, nil
	case "ctrl+d":
		if app.Writable() && len(s.tags) > 0 {
			return &tagDeletionState{parent: s, dialog: confirm{
				question: fmt.Sprintf("Delete tag %q everywhere?", s.tags[s.sel].Name),
			}}, nil, nil
		}
		return s, nil, nil
	case "ctrl+h":
		s.help = !s.help
		return s, nil, nil
	case "enter":
		if len(s.tags) == 0 {
			return s, nil, nil
		}
		next, err := newTagNotesListing(app, s, s.tags[s.sel])
		return orSelf(s, next, err)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if err := s.search(app); err != nil {
		return s, nil, err
	}
	return s, cmd, nil
}

func (s *tagsManagingState) View(app *App) string {
	var b strings.Builder
	b.WriteString(s.input.View() + "\n\n")
	for i, tag := range s.tags {
		line := " " + tagLabel(tag)
		if i == s.sel {
			line = selectedStyle.Render(" " + tag.Name + " ")
		}
		b.WriteString(line + "\n")
	}
	if len(s.tags) == 0 {
		b.WriteString(subtleStyle.Render(" no tags match") + "\n")
	}

	entries := []helpEntry{
		{key: "enter", label: "notes with tag"},
		{key: "ctrl+n", label: "new tag", writes: true},
		{key: "esc", label: "back"},
	}
	if s.help {
		entries = append(entries,
			helpEntry{key: "ctrl+r", label: "rename", writes: true},
			helpEntry{key: "ctrl+d", label: "delete", writes: true},
			helpEntry{key: "up/down", label: "select"},
		)
	} else {
		entries = append(entries, helpEntry{key: "ctrl+h", label: "more"})
	}
	return frame(app, b.String(), helpBar(app, entries))
}
