package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// prompt is a one-line text entry popup. The border tracks validity so the
// user sees whether Enter will be accepted while typing.
type prompt struct {
	title string
	input textinput.Model
	valid bool
}

func newPrompt(title, initial string) prompt {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 120
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()
	return prompt{title: title, input: input}
}

func (p *prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *prompt) Value() string {
	return p.input.Value()
}

func (p *prompt) View() string {
	border := invalidStyle
	if p.valid {
		border = validStyle
	}
	box := popupStyle.Copy().
		BorderForeground(border.GetForeground()).
		Width(44)
	return box.Render(titleStyle.Render(p.title) + "\n" + p.input.View())
}

// confirm is a yes/no popup defaulting to no.
type confirm struct {
	question string
	yes      bool
}

func (c *confirm) Update(key tea.KeyMsg) {
	switch key.String() {
	case "left", "h", "right", "l", "tab":
		c.yes = !c.yes
	case "y":
		c.yes = true
	case "n":
		c.yes = false
	}
}

func (c *confirm) View() string {
	yes, no := "  yes  ", "  no  "
	if c.yes {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	choices := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
	return popupStyle.Render(c.question + "\n\n" + choices)
}
