package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/markdown"
)

// noteViewingState renders one note as wrapped styled blocks and lets the
// user walk its inline elements. Enter follows the selected element, e hands
// the content to the external editor.
type noteViewingState struct {
	parent State
	note   core.Note
	tags   []core.Tag
	doc    *markdown.Document
	x, y   int
	help   bool
}

// editorDoneMsg arrives when the external editor process exits.
type editorDoneMsg struct {
	err error
}

func newNoteViewing(app *App, parent State, note core.Note) (*noteViewingState, error) {
	tags, err := app.API.ListNoteTags(note.ID)
	if err != nil {
		return nil, err
	}
	doc := markdown.Parse(note.Content)
	doc.Select(0, 0, true)
	return &noteViewingState{parent: parent, note: note, tags: tags, doc: doc}, nil
}

func (s *noteViewingState) Update(msg tea.Msg, app *App) (State, tea.Cmd, error) {
	if done, ok := msg.(editorDoneMsg); ok {
		return s.finishEdit(app, done)
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, nil
	}

	switch key.String() {
	case "up", "k":
		s.moveTo(s.x, s.y-1)
	case "down", "j":
		s.moveTo(s.x, s.y+1)
	case "left", "h":
		s.moveTo(s.x-1, s.y)
	case "right", "l":
		s.moveTo(s.x+1, s.y)
	case "g":
		s.moveTo(0, 0)
	case "E":
		last := s.doc.BlockCount() - 1
		s.moveTo(s.doc.BlockLength(last)-1, last)
	case "enter":
		return s.follow(app)
	case "e":
		if app.Writable() {
			return s.launchEditor(app)
		}
	case "y":
		if err := clipboard.WriteAll(s.note.Name); err != nil {
			return s, nil, fmt.Errorf("copying note to clipboard: %w", err)
		}
	case "d":
		if app.Writable() {
			return &noteDeletionState{viewing: s, dialog: confirm{
				question: fmt.Sprintf("Delete note %q?", s.note.Name),
			}}, nil, nil
		}
	case "r":
		if app.Writable() {
			return newNoteRenaming(app, s), nil, nil
		}
	case "t":
		next, err := newNoteTagsManaging(app, s)
		return orSelf(s, next, err)
	case "s":
		next, err := newNotesManaging(s.parent, app, "")
		return orSelf(s, next, err)
	case "ctrl+h":
		s.help = !s.help
	case "esc", "q":
		return s.parent, nil, nil
	}
	return s, nil, nil
}

// moveTo clamps the requested coordinate and moves the selection flag.
func (s *noteViewingState) moveTo(x, y int) {
	s.doc.Select(s.x, s.y, false)
	y = clamp(y, s.doc.BlockCount())
	x = clamp(x, s.doc.BlockLength(y))
	s.x, s.y = x, y
	s.doc.Select(x, y, true)
}

// follow acts on the selected element: hyperlinks open in the OS browser,
// cross-references swap the screen to the target note when it exists.
func (s *noteViewingState) follow(app *App) (State, tea.Cmd, error) {
	el := s.doc.Get(s.x, s.y)
	if el == nil || !el.Navigable() {
		return s, nil, nil
	}
	switch el.Kind {
	case markdown.HyperLink:
		if err := openURL(el.Dest); err != nil {
			return s, nil, fmt.Errorf("opening %s: %w", el.Dest, err)
		}
		return s, nil, nil
	case markdown.CrossRef:
		target, err := app.API.LoadNoteByName(el.Dest)
		if err != nil {
			return s, nil, err
		}
		if target == nil {
			return s, nil, nil
		}
		next, err := newNoteViewing(app, s.parent, *target)
		return orSelf(s, next, err)
	}
	return s, nil, nil
}

// tempPath is where the note body sits while the external editor runs. Note
// names are free-form and may contain path separators, so they are flattened
// to keep the buffer directly inside the data directory.
func (s *noteViewingState) tempPath(app *App) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == filepath.Separator {
			return '-'
		}
		return r
	}, s.note.Name)
	return filepath.Join(app.DataDir, name+".tmp.md")
}

func (s *noteViewingState) launchEditor(app *App) (State, tea.Cmd, error) {
	if app.Editor == "" {
		return s, nil, errors.New("no editor configured, set EDITOR")
	}
	path := s.tempPath(app)
	if err := os.WriteFile(path, []byte(s.note.Content), 0o600); err != nil {
		return s, nil, fmt.Errorf("writing editor buffer: %w", err)
	}
	cmd := exec.Command(app.Editor, path)
	cmd.Dir = app.DataDir
	return s, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorDoneMsg{err: err}
	}), nil
}

// finishEdit re-imports the edited buffer: persist content, reparse,
// reconcile the outgoing link set and reset the selection.
func (s *noteViewingState) finishEdit(app *App, done editorDoneMsg) (State, tea.Cmd, error) {
	path := s.tempPath(app)
	defer os.Remove(path)

	if done.err != nil {
		return s, nil, fmt.Errorf("editor failed: %w", done.err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return s, nil, fmt.Errorf("reading editor buffer: %w", err)
	}
	if err := app.API.UpdateNoteContent(s.note.ID, string(content)); err != nil {
		return s, nil, err
	}

	s.note.Content = string(content)
	s.doc = markdown.Parse(s.note.Content)
	s.x, s.y = 0, 0
	s.doc.Select(0, 0, true)

	links := make([]core.Link, 0)
	for _, name := range s.doc.Links() {
		links = append(links, core.Link{From: s.note.ID, To: name})
	}
	if err := app.API.UpdateNoteLinks(s.note.ID, links); err != nil {
		return s, nil, err
	}
	return s, nil, nil
}

func (s *noteViewingState) View(app *App) string {
	header := titleStyle.Render(s.note.Name)
	if len(s.tags) > 0 {
		header += "  " + tagLabels(s.tags)
	}
	position := subtleStyle.Render(fmt.Sprintf("%d/%d", s.y+1, s.doc.BlockCount()))
	if gap := app.Width - lipgloss.Width(header) - lipgloss.Width(position); gap > 0 {
		header += strings.Repeat(" ", gap) + position
	}

	var lines []string
	selStart := 0
	for i, rb := range s.doc.RenderBlocks(app.Width) {
		if i == s.y {
			selStart = len(lines)
		}
		lines = append(lines, rb.Lines...)
	}

	viewHeight := app.Height - 3
	if viewHeight < 1 {
		viewHeight = 1
	}
	offset := 0
	if selStart >= viewHeight {
		offset = selStart - viewHeight/2
	}
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + viewHeight
	if end > len(lines) {
		end = len(lines)
	}

	body := header + "\n\n" + strings.Join(lines[offset:end], "\n")
	entries := []helpEntry{
		{key: "enter", label: "follow"},
		{key: "e", label: "edit", writes: true},
		{key: "t", label: "tags"},
		{key: "esc", label: "back"},
	}
	if s.help {
		entries = append(entries,
			helpEntry{key: "hjkl", label: "move"},
			helpEntry{key: "y", label: "copy"},
			helpEntry{key: "r", label: "rename", writes: true},
			helpEntry{key: "d", label: "delete", writes: true},
			helpEntry{key: "s", label: "search"},
		)
	} else {
		entries = append(entries, helpEntry{key: "ctrl+h", label: "more"})
	}
	return frame(app, body, helpBar(app, entries))
}

// openURL hands a hyperlink to the platform opener.
func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
