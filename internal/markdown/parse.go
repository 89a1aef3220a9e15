package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	headingStyle  = Style{Bold: true, Underline: true}
	quoteStyle    = Style{Italic: true, Fg: 0xB58900, HasFg: true}
	codeStyle     = Style{Dim: true}
	linkStyle     = Style{Underline: true, Fg: 0x268bd2, HasFg: true}
	crossRefStyle = Style{Underline: true, Fg: 0x2aa198, HasFg: true}
)

var engine = goldmark.New()

// Parse turns a note body into a document. Malformed markdown never fails,
// whatever goldmark recognizes is what gets rendered.
func Parse(content string) *Document {
	source := []byte(content)
	root := engine.Parser().Parse(text.NewReader(source))

	doc := &Document{}
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		appendBlock(doc, node, source)
	}
	return doc
}

func appendBlock(doc *Document, node ast.Node, source []byte) {
	switch n := node.(type) {
	case *ast.Heading:
		doc.Blocks = append(doc.Blocks, Block{
			Kind:    Heading,
			Level:   n.Level,
			Inlines: collectInlines(n, source, headingStyle),
		})
	case *ast.Paragraph, *ast.TextBlock:
		doc.Blocks = append(doc.Blocks, Block{
			Kind:    Paragraph,
			Inlines: collectInlines(n, source, Style{}),
		})
	case *ast.Blockquote:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			doc.Blocks = append(doc.Blocks, Block{
				Kind:    Blockquote,
				Inlines: collectInlines(child, source, quoteStyle),
			})
		}
	case *ast.List:
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			appendListItem(doc, item, source)
		}
	case *ast.FencedCodeBlock:
		doc.Blocks = append(doc.Blocks, preformatted(n, source))
	case *ast.CodeBlock:
		doc.Blocks = append(doc.Blocks, preformatted(n, source))
	}
}

// appendListItem emits one ListItem block per item; nested sublists flatten
// into further ListItem blocks.
func appendListItem(doc *Document, item ast.Node, source []byte) {
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if nested, ok := child.(*ast.List); ok {
			for sub := nested.FirstChild(); sub != nil; sub = sub.NextSibling() {
				appendListItem(doc, sub, source)
			}
			continue
		}
		doc.Blocks = append(doc.Blocks, Block{
			Kind:    ListItem,
			Inlines: collectInlines(child, source, Style{}),
		})
	}
}

func preformatted(node interface {
	ast.Node
	Lines() *text.Segments
}, source []byte) Block {
	var lines []string
	segs := node.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return Block{
		Kind: Preformatted,
		Inlines: []Inline{{
			Kind:  RawText,
			Text:  strings.Join(lines, "\n"),
			Style: codeStyle,
		}},
	}
}

// collectInlines walks a block's inline children. Adjacent text nodes are
// buffered into one run before cross-reference scanning, since the parser
// splits text at bracket candidates.
func collectInlines(parent ast.Node, source []byte, base Style) []Inline {
	var out []Inline
	var buf strings.Builder
	styled := base != Style{}

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, scanText(buf.String(), base, styled)...)
		buf.Reset()
	}

	for node := parent.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				buf.WriteString("\n")
			}
		case *ast.String:
			buf.Write(n.Value)
		case *ast.Emphasis:
			flush()
			patch := Style{Italic: true}
			if n.Level >= 2 {
				patch = Style{Bold: true}
			}
			for _, in := range collectInlines(n, source, base.Patch(patch)) {
				if in.Kind == RawText {
					in.Kind = RichText
				}
				out = append(out, in)
			}
		case *ast.CodeSpan:
			flush()
			out = append(out, Inline{
				Kind:  RichText,
				Text:  rawText(n, source),
				Style: base.Patch(codeStyle),
			})
		case *ast.Link:
			flush()
			out = append(out, Inline{
				Kind:  HyperLink,
				Text:  rawText(n, source),
				Style: base.Patch(linkStyle),
				Dest:  string(n.Destination),
			})
		case *ast.AutoLink:
			flush()
			url := string(n.URL(source))
			out = append(out, Inline{
				Kind:  HyperLink,
				Text:  url,
				Style: base.Patch(linkStyle),
				Dest:  url,
			})
		default:
			buf.WriteString(rawText(n, source))
		}
	}
	flush()
	return out
}

func rawText(node ast.Node, source []byte) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
		case *ast.String:
			sb.Write(n.Value)
		default:
			sb.WriteString(rawText(c, source))
		}
	}
	return sb.String()
}

// scanText splits a text run on [[name]] cross-references. A backslash
// escapes the following bracket, producing a literal one.
func scanText(s string, base Style, styled bool) []Inline {
	kind := RawText
	if styled {
		kind = RichText
	}

	var out []Inline
	var pending strings.Builder

	flushPending := func() {
		if pending.Len() == 0 {
			return
		}
		out = append(out, Inline{Kind: kind, Text: pending.String(), Style: base})
		pending.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '[' || s[i+1] == ']') {
			pending.WriteByte(s[i+1])
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], "[[") {
			if end := strings.Index(s[i+2:], "]]"); end >= 0 {
				name := s[i+2 : i+2+end]
				flushPending()
				out = append(out, Inline{
					Kind:  CrossRef,
					Text:  "[" + name + "]",
					Style: base.Patch(crossRefStyle),
					Dest:  name,
				})
				i += 2 + end + 2
				continue
			}
		}
		pending.WriteByte(s[i])
		i++
	}
	flushPending()
	return out
}
