// Package selector is the notebook picker shown when quill starts without a
// subcommand.
package selector

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type item struct {
	name string
}

func (i item) Title() string       { return i.name }
func (i item) Description() string { return i.name + ".book" }
func (i item) FilterValue() string { return i.name }

type model struct {
	list   list.Model
	choice string
}

func newModel(names []string) model {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, item{name: name})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notebooks"
	l.SetShowStatusBar(false)
	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if selected, ok := m.list.SelectedItem().(item); ok {
				m.choice = selected.name
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Choose shows the picker and returns the chosen notebook name, or the empty
// string when the user backs out.
func Choose(names []string) (string, error) {
	program := tea.NewProgram(newModel(names), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", err
	}
	return final.(model).choice, nil
}
