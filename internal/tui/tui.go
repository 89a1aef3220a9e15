// Package tui is the full-screen notebook frontend: a state machine of screen
// states driven by bubbletea. Each state consumes one message and returns its
// successor; failed steps divert to an error popup that preserves the state
// it interrupted.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillbook/quill/internal/core"
)

// API is what the screens need from the notebook server. *client.API
// implements it; tests substitute a fake.
type API interface {
	Name() (string, error)
	Info() (core.Info, error)

	CreateNote(name, content string) (int64, error)
	ValidateNoteName(name string) (error, error)
	LoadNoteByID(id int64) (*core.Note, error)
	LoadNoteByName(name string) (*core.Note, error)
	RenameNote(id int64, name string) error
	UpdateNoteContent(id int64, content string) error
	UpdateNoteLinks(id int64, links []core.Link) error
	DeleteNote(id int64) error
	SearchNotesByName(pattern string) ([]core.NoteSummary, error)
	SearchNotesByTag(tagID int64, pattern string) ([]core.NoteSummary, error)

	ListNoteTags(id int64) ([]core.Tag, error)
	ValidateNewTag(id, tagID int64) (error, error)
	AddNoteTag(id, tagID int64) error
	RemoveNoteTag(id, tagID int64) error

	CreateTag(name string) (core.Tag, error)
	ValidateTagName(name string) (error, error)
	LoadTagByName(name string) (*core.Tag, error)
	SearchTagsByName(pattern string) ([]core.Tag, error)
	RenameTag(id int64, name string) error
	DeleteTag(id int64) error
}

// App carries the session-wide context every state can reach: the server
// facade, notebook identity, terminal size and the editor configuration.
type App struct {
	API      API
	Notebook string
	Perms    core.Permissions
	Editor   string
	DataDir  string

	Width  int
	Height int
}

// Writable reports whether destructive operations are allowed this session.
func (a *App) Writable() bool {
	return a.Perms.Writable()
}

// State is one screen. Update consumes a message and returns the next state;
// a non-nil error diverts the session to an error popup over the current
// state. View draws the full frame.
type State interface {
	Update(msg tea.Msg, app *App) (State, tea.Cmd, error)
	View(app *App) string
}

// exitState ends the program loop.
type exitState struct{}

func (exitState) Update(tea.Msg, *App) (State, tea.Cmd, error) { return exitState{}, nil, nil }
func (exitState) View(*App) string                             { return "" }

// Model is the bubbletea root. It owns the current state, tracks the
// terminal size and converts step errors into the error screen.
type Model struct {
	app   *App
	state State
}

func NewModel(app *App) Model {
	return Model{app: app, state: &homeState{}}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.app.Width = size.Width
		m.app.Height = size.Height
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	next, cmd, err := m.state.Update(msg, m.app)
	if err != nil {
		m.state = &errorState{inner: m.state, message: err.Error()}
		return m, nil
	}
	if _, done := next.(exitState); done {
		return m, tea.Quit
	}
	m.state = next
	return m, cmd
}

func (m Model) View() string {
	return m.state.View(m.app)
}

// Run drives the state machine until exit, holding the alternate screen for
// the whole session.
func Run(app *App) error {
	program := tea.NewProgram(NewModel(app), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
