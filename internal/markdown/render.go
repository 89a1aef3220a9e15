package markdown

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var listPrefix = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("  - ")

const listIndent = "    "

// RenderedBlock is one block laid out to a width: styled, aligned terminal
// lines ready to print.
type RenderedBlock struct {
	Kind  BlockKind
	Lines []string
}

func (rb RenderedBlock) LineCount() int {
	return len(rb.Lines)
}

// RenderBlocks lays the whole document out at the given width.
func (d *Document) RenderBlocks(width int) []RenderedBlock {
	if width < 1 {
		width = 1
	}
	out := make([]RenderedBlock, 0, len(d.Blocks))
	for i := range d.Blocks {
		out = append(out, renderBlock(&d.Blocks[i], width))
	}
	return out
}

// RenderedLineCount is the total line count of the laid-out document.
func (d *Document) RenderedLineCount(width int) int {
	total := 0
	for _, rb := range d.RenderBlocks(width) {
		total += rb.LineCount()
	}
	return total
}

func renderBlock(b *Block, width int) RenderedBlock {
	wrapWidth := width
	if b.Kind == ListItem && width > len(listIndent) {
		wrapWidth = width - len(listIndent)
	}

	var lines []string
	for i, line := range b.Layout(wrapWidth) {
		text := renderLine(line)
		switch {
		case b.Kind == ListItem && i == 0:
			text = listPrefix + text
		case b.Kind == ListItem:
			text = listIndent + text
		case b.Kind == Blockquote:
			text = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
		case b.Kind == Heading && b.Level <= 2:
			text = lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
		}
		lines = append(lines, text)
	}

	if b.Kind == Paragraph || b.Kind == Blockquote {
		lines = append(lines, "")
	}
	return RenderedBlock{Kind: b.Kind, Lines: lines}
}

func renderLine(line Line) string {
	var out string
	for _, seg := range line {
		out += terminalStyle(seg.Style, seg.Selected).Render(seg.Text)
	}
	return out
}

func terminalStyle(s Style, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	if s.HasFg {
		st = st.Foreground(lipgloss.Color(fmt.Sprintf("#%06X", s.Fg&0xFFFFFF)))
	}
	if selected {
		st = st.Reverse(true)
	}
	return st
}
