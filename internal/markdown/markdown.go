// Package markdown parses note bodies into a block/inline document that the
// viewing screens can lay out at a given width and address by stable
// (inline, block) coordinates.
package markdown

// BlockKind classifies a top-level block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	Blockquote
	ListItem
	Preformatted
)

// InlineKind classifies one inline element inside a block.
type InlineKind int

const (
	RawText InlineKind = iota
	RichText
	HyperLink
	CrossRef
)

// Style is a terminal text style. Patch merges another style on top: boolean
// modifiers union, foreground overrides.
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Dim       bool
	Fg        uint32
	HasFg     bool
}

func (s Style) Patch(p Style) Style {
	out := Style{
		Bold:      s.Bold || p.Bold,
		Italic:    s.Italic || p.Italic,
		Underline: s.Underline || p.Underline,
		Dim:       s.Dim || p.Dim,
		Fg:        s.Fg,
		HasFg:     s.HasFg,
	}
	if p.HasFg {
		out.Fg = p.Fg
		out.HasFg = true
	}
	return out
}

// Inline is one addressable element. Text is the display form; for HyperLink
// and CrossRef, Dest holds the destination URL or note name.
type Inline struct {
	Kind     InlineKind
	Text     string
	Style    Style
	Dest     string
	Selected bool
}

// Navigable reports whether Enter means something on this element.
func (i *Inline) Navigable() bool {
	return i.Kind == HyperLink || i.Kind == CrossRef
}

// Block is an ordered run of inline elements with a kind. Level is only
// meaningful for headings.
type Block struct {
	Kind    BlockKind
	Level   int
	Inlines []Inline
}

// Document is the parsed form of one note body.
type Document struct {
	Blocks []Block
}

func (d *Document) BlockCount() int {
	return len(d.Blocks)
}

// BlockLength returns the number of inline elements in block y, or 0 when y
// is out of range.
func (d *Document) BlockLength(y int) int {
	if y < 0 || y >= len(d.Blocks) {
		return 0
	}
	return len(d.Blocks[y].Inlines)
}

// Get returns the inline element at (x, y), or nil when out of range.
func (d *Document) Get(x, y int) *Inline {
	if y < 0 || y >= len(d.Blocks) {
		return nil
	}
	b := &d.Blocks[y]
	if x < 0 || x >= len(b.Inlines) {
		return nil
	}
	return &b.Inlines[x]
}

// Select sets the selected flag at (x, y). Out-of-range coordinates are
// ignored.
func (d *Document) Select(x, y int, selected bool) {
	if el := d.Get(x, y); el != nil {
		el.Selected = selected
	}
}

// Links returns every cross-reference destination in document order,
// duplicates kept.
func (d *Document) Links() []string {
	var names []string
	for _, b := range d.Blocks {
		for _, in := range b.Inlines {
			if in.Kind == CrossRef {
				names = append(names, in.Dest)
			}
		}
	}
	return names
}
