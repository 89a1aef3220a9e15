package markdown

import "github.com/rivo/uniseg"

// Segment is a styled fragment of one visual line.
type Segment struct {
	Text     string
	Style    Style
	Selected bool
}

// Line is one visual line of a laid-out block.
type Line []Segment

// Layout wraps the block's inline spans to width by grapheme cluster count.
// A line flushes when it reaches width graphemes or on an explicit line
// separator; style and selection survive the split.
func (b *Block) Layout(width int) []Line {
	if width < 1 {
		width = 1
	}

	var lines []Line
	var line Line
	count := 0
	flushLine := func() {
		lines = append(lines, line)
		line = nil
		count = 0
	}

	for _, in := range b.Inlines {
		var run []byte
		flushRun := func() {
			if len(run) == 0 {
				return
			}
			line = append(line, Segment{Text: string(run), Style: in.Style, Selected: in.Selected})
			run = nil
		}

		gr := uniseg.NewGraphemes(in.Text)
		for gr.Next() {
			cluster := gr.Str()
			if cluster == "\n" || cluster == "\r\n" {
				flushRun()
				flushLine()
				continue
			}
			run = append(run, cluster...)
			count++
			if count == width {
				flushRun()
				flushLine()
			}
		}
		flushRun()
	}
	if len(line) > 0 || len(lines) == 0 {
		flushLine()
	}
	return lines
}

// GraphemeLen counts grapheme clusters in a line.
func (l Line) GraphemeLen() int {
	n := 0
	for _, seg := range l {
		n += uniseg.GraphemeClusterCount(seg.Text)
	}
	return n
}

func (l Line) String() string {
	var out []byte
	for _, seg := range l {
		out = append(out, seg.Text...)
	}
	return string(out)
}
