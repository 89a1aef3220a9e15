package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/markdown"
)

// fakeAPI is an in-memory notebook backend for state tests.
type fakeAPI struct {
	notes    map[int64]*core.Note
	noteTags map[int64][]core.Tag
	tags     []core.Tag
	nextID   int64
	failAll  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		notes:    map[int64]*core.Note{},
		noteTags: map[int64][]core.Tag{},
		nextID:   1,
	}
}

var errBackend = errors.New("backend unreachable")

func (f *fakeAPI) check() error {
	if f.failAll {
		return errBackend
	}
	return nil
}

func (f *fakeAPI) addNote(name, content string) int64 {
	id := f.nextID
	f.nextID++
	f.notes[id] = &core.Note{ID: id, Name: name, Content: content}
	return id
}

func (f *fakeAPI) Name() (string, error) { return "test", f.check() }
func (f *fakeAPI) Info() (core.Info, error) {
	return core.Info{Name: "test", Permissions: core.ReadWrite}, f.check()
}

func (f *fakeAPI) CreateNote(name, content string) (int64, error) {
	if err := f.check(); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, core.ErrNoteEmptyName
	}
	return f.addNote(name, content), nil
}

func (f *fakeAPI) ValidateNoteName(name string) (error, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if name == "" {
		return core.ErrNoteEmptyName, nil
	}
	for _, n := range f.notes {
		if n.Name == name {
			return core.ErrNoteAlreadyExists, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) LoadNoteByID(id int64) (*core.Note, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	if n, ok := f.notes[id]; ok {
		copied := *n
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAPI) LoadNoteByName(name string) (*core.Note, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	for _, n := range f.notes {
		if n.Name == name {
			copied := *n
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAPI) RenameNote(id int64, name string) error {
	if err := f.check(); err != nil {
		return err
	}
	f.notes[id].Name = name
	return nil
}

func (f *fakeAPI) UpdateNoteContent(id int64, content string) error {
	if err := f.check(); err != nil {
		return err
	}
	f.notes[id].Content = content
	return nil
}

func (f *fakeAPI) UpdateNoteLinks(int64, []core.Link) error { return f.check() }

func (f *fakeAPI) DeleteNote(id int64) error {
	if err := f.check(); err != nil {
		return err
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeAPI) SearchNotesByName(string) ([]core.NoteSummary, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	var out []core.NoteSummary
	for _, n := range f.notes {
		out = append(out, core.NoteSummary{ID: n.ID, Name: n.Name})
	}
	return out, nil
}

func (f *fakeAPI) SearchNotesByTag(int64, string) ([]core.NoteSummary, error) {
	return nil, f.check()
}

func (f *fakeAPI) ListNoteTags(id int64) ([]core.Tag, error) {
	return f.noteTags[id], f.check()
}

func (f *fakeAPI) ValidateNewTag(int64, int64) (error, error) { return nil, f.check() }
func (f *fakeAPI) AddNoteTag(int64, int64) error              { return f.check() }
func (f *fakeAPI) RemoveNoteTag(int64, int64) error           { return f.check() }

func (f *fakeAPI) CreateTag(name string) (core.Tag, error) {
	tag := core.Tag{ID: int64(len(f.tags) + 1), Name: name, Color: 0xAABBCC}
	f.tags = append(f.tags, tag)
	return tag, f.check()
}

func (f *fakeAPI) ValidateTagName(string) (error, error)     { return nil, f.check() }
func (f *fakeAPI) LoadTagByName(string) (*core.Tag, error)   { return nil, f.check() }
func (f *fakeAPI) SearchTagsByName(string) ([]core.Tag, error) {
	return f.tags, f.check()
}
func (f *fakeAPI) RenameTag(int64, string) error { return f.check() }
func (f *fakeAPI) DeleteTag(int64) error         { return f.check() }

func newTestApp(fake *fakeAPI) *App {
	return &App{
		API:      fake,
		Notebook: "test",
		Perms:    core.ReadWrite,
		Width:    80,
		Height:   24,
	}
}

func press(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func step(t *testing.T, s State, app *App, key string) State {
	t.Helper()
	next, _, err := s.Update(press(key), app)
	require.NoError(t, err)
	return next
}

func TestViewingMovementStaysInBounds(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	id := fake.addNote("A", "one [[two]] three\n\nsecond block")

	state, err := openNote(app, &homeState{}, id)
	require.NoError(t, err)
	viewing := state.(*noteViewingState)

	require.Equal(t, 2, viewing.doc.BlockCount())
	require.Equal(t, 3, viewing.doc.BlockLength(0))

	keys := []string{"right", "right", "right", "right", "down", "down", "left", "up", "k", "l", "l", "l", "j", "h"}
	for _, key := range keys {
		step(t, viewing, app, key)
		require.GreaterOrEqual(t, viewing.y, 0)
		require.Less(t, viewing.y, viewing.doc.BlockCount())
		require.GreaterOrEqual(t, viewing.x, 0)
		require.Less(t, viewing.x, maxInt(viewing.doc.BlockLength(viewing.y), 1))

		selected := 0
		for y := 0; y < viewing.doc.BlockCount(); y++ {
			for x := 0; x < viewing.doc.BlockLength(y); x++ {
				if viewing.doc.Get(x, y).Selected {
					selected++
					require.Equal(t, viewing.x, x)
					require.Equal(t, viewing.y, y)
				}
			}
		}
		require.Equal(t, 1, selected)
	}
}

func TestViewingJumpKeys(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	id := fake.addNote("A", "alpha [[x]]\n\nbeta [[y]] end")

	state, err := openNote(app, &homeState{}, id)
	require.NoError(t, err)
	viewing := state.(*noteViewingState)

	step(t, viewing, app, "E")
	require.Equal(t, viewing.doc.BlockCount()-1, viewing.y)
	require.Equal(t, viewing.doc.BlockLength(viewing.y)-1, viewing.x)

	step(t, viewing, app, "g")
	require.Equal(t, 0, viewing.y)
	require.Equal(t, 0, viewing.x)
}

func TestCrossRefNavigationSwapsNote(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	aID := fake.addNote("A", "see [[B]]")
	fake.addNote("B", "")

	state, err := openNote(app, &homeState{}, aID)
	require.NoError(t, err)
	viewing := state.(*noteViewingState)
	require.Equal(t, []string{"B"}, viewing.doc.Links())

	step(t, viewing, app, "right")
	require.Equal(t, markdown.CrossRef, viewing.doc.Get(viewing.x, viewing.y).Kind)

	next := step(t, viewing, app, "enter")
	target, ok := next.(*noteViewingState)
	require.True(t, ok)
	require.Equal(t, "B", target.note.Name)
}

func TestCrossRefToMissingNoteStays(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	id := fake.addNote("A", "see [[ghost]]")

	state, err := openNote(app, &homeState{}, id)
	require.NoError(t, err)
	viewing := state.(*noteViewingState)

	step(t, viewing, app, "right")
	next := step(t, viewing, app, "enter")
	require.Same(t, State(viewing), next)
}

func TestPromptEscReturnsExactParent(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	home := &homeState{}

	creation := newNoteCreation(home, app)
	next := step(t, creation, app, "esc")
	require.Same(t, State(home), next)

	search, err := newNotesManaging(home, app, "")
	require.NoError(t, err)
	next = step(t, search, app, "esc")
	require.Same(t, State(home), next)
}

func TestErrorDismissalRestoresInterruptedState(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	home := &homeState{}
	fail := &errorState{inner: home, message: "boom"}

	next := step(t, fail, app, "enter")
	require.Same(t, State(home), next)
}

func TestRootModelDivertsFailuresToErrorScreen(t *testing.T) {
	fake := newFakeAPI()
	fake.failAll = true
	app := newTestApp(fake)

	m := NewModel(app)
	updated, _ := m.Update(press("s"))
	model := updated.(Model)

	errScreen, ok := model.state.(*errorState)
	require.True(t, ok)
	require.IsType(t, &homeState{}, errScreen.inner)

	updated, _ = model.Update(press("enter"))
	model = updated.(Model)
	require.IsType(t, &homeState{}, model.state)
}

func TestHomeQuits(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)

	next, _, err := (&homeState{}).Update(press("q"), app)
	require.NoError(t, err)
	require.IsType(t, exitState{}, next)
}

func TestReadOnlyIgnoresDestructiveKeys(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	app.Perms = core.ReadOnly
	id := fake.addNote("A", "body")

	next := step(t, &homeState{}, app, "c")
	require.IsType(t, &homeState{}, next)

	state, err := openNote(app, &homeState{}, id)
	require.NoError(t, err)
	viewing := state.(*noteViewingState)
	require.Same(t, State(viewing), step(t, viewing, app, "d"))
	require.Same(t, State(viewing), step(t, viewing, app, "r"))
}

func TestSearchPreviewFollowsSelection(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	fake.addNote("alpha", "alpha body")

	state, err := newNotesManaging(&homeState{}, app, "")
	require.NoError(t, err)

	require.Same(t, State(state), step(t, state, app, "tab"))
	require.True(t, state.preview)
	require.Contains(t, state.previewText, "alpha")

	step(t, state, app, "down")
	step(t, state, app, "up")
	require.Contains(t, state.previewText, "alpha")

	step(t, state, app, "tab")
	require.False(t, state.preview)
	require.Empty(t, state.previewText)
}

func TestEditorBufferStaysInDataDir(t *testing.T) {
	fake := newFakeAPI()
	app := newTestApp(fake)
	app.DataDir = t.TempDir()

	s := &noteViewingState{note: core.Note{Name: "projects/go ideas"}}
	path := s.tempPath(app)
	require.Equal(t, app.DataDir, filepath.Dir(path))
	require.Equal(t, "projects-go ideas.tmp.md", filepath.Base(path))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
