package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapTenGraphemesAtFour(t *testing.T) {
	doc := Parse("abcdefghij")
	require.Equal(t, 1, doc.BlockCount())

	lines := doc.Blocks[0].Layout(4)
	require.Len(t, lines, 3)
	require.Equal(t, "abcd", lines[0].String())
	require.Equal(t, "efgh", lines[1].String())
	require.Equal(t, "ij", lines[2].String())
}

func TestWrapRespectsWidthBound(t *testing.T) {
	doc := Parse("the quick brown fox jumps over the lazy dog, twice around the block")
	for _, width := range []int{1, 3, 7, 80} {
		for _, line := range doc.Blocks[0].Layout(width) {
			require.LessOrEqual(t, line.GraphemeLen(), width)
		}
	}
}

func TestWrapSplitsOnLineSeparators(t *testing.T) {
	doc := Parse("foo\nbar")
	require.Equal(t, 1, doc.BlockCount())

	lines := doc.Blocks[0].Layout(80)
	require.Len(t, lines, 2)
	require.Equal(t, "foo", lines[0].String())
	require.Equal(t, "bar", lines[1].String())
}

func TestWrapCountsGraphemesNotBytes(t *testing.T) {
	doc := Parse("héllo wörld")
	lines := doc.Blocks[0].Layout(5)
	require.Equal(t, "héllo", lines[0].String())
}

func TestRenderedLineCountMatchesBlockSum(t *testing.T) {
	doc := Parse("# Title\n\npara one\n\n> quoted\n\n- item\n\n```\ncode\nhere\n```\n")
	for _, width := range []int{4, 20, 80} {
		total := 0
		for _, rb := range doc.RenderBlocks(width) {
			total += rb.LineCount()
		}
		require.Equal(t, doc.RenderedLineCount(width), total)
	}
}

func TestBlockKinds(t *testing.T) {
	doc := Parse("# One\n\n## Two\n\n### Three\n\npara\n\n> quote\n\n- a\n- b\n\n```\nx\n```\n")

	kinds := make([]BlockKind, 0, doc.BlockCount())
	for _, b := range doc.Blocks {
		kinds = append(kinds, b.Kind)
	}
	require.Equal(t, []BlockKind{
		Heading, Heading, Heading, Paragraph, Blockquote, ListItem, ListItem, Preformatted,
	}, kinds)
	require.Equal(t, 1, doc.Blocks[0].Level)
	require.Equal(t, 3, doc.Blocks[2].Level)
}

func TestPreformattedKeepsOneLinePerSourceLine(t *testing.T) {
	doc := Parse("```\nfirst\nsecond\nthird\n```\n")
	require.Equal(t, 1, doc.BlockCount())
	require.Equal(t, Preformatted, doc.Blocks[0].Kind)

	lines := doc.Blocks[0].Layout(80)
	require.Len(t, lines, 3)
	require.Equal(t, "second", lines[1].String())
}

func TestCrossRefExtraction(t *testing.T) {
	doc := Parse(`see [[B]] and [[C]], plus \[[not one]]`)
	require.Equal(t, []string{"B", "C"}, doc.Links())
}

func TestCrossRefOrderAndDuplicates(t *testing.T) {
	doc := Parse("[[B]] then [[A]] then [[B]] again")
	require.Equal(t, []string{"B", "A", "B"}, doc.Links())
}

func TestCrossRefDisplayForm(t *testing.T) {
	doc := Parse("go to [[target note]] now")

	var ref *Inline
	for i := range doc.Blocks[0].Inlines {
		if doc.Blocks[0].Inlines[i].Kind == CrossRef {
			ref = &doc.Blocks[0].Inlines[i]
		}
	}
	require.NotNil(t, ref)
	require.Equal(t, "[target note]", ref.Text)
	require.Equal(t, "target note", ref.Dest)
	require.True(t, ref.Navigable())
}

func TestHyperLinkInline(t *testing.T) {
	doc := Parse("read [the docs](https://example.com) first")

	var link *Inline
	for i := range doc.Blocks[0].Inlines {
		if doc.Blocks[0].Inlines[i].Kind == HyperLink {
			link = &doc.Blocks[0].Inlines[i]
		}
	}
	require.NotNil(t, link)
	require.Equal(t, "the docs", link.Text)
	require.Equal(t, "https://example.com", link.Dest)
}

func TestEmphasisFlattensWithPatchedStyle(t *testing.T) {
	doc := Parse("a *b* **c**")
	inlines := doc.Blocks[0].Inlines
	require.Len(t, inlines, 4)

	require.Equal(t, RawText, inlines[0].Kind)
	require.Equal(t, "a ", inlines[0].Text)

	require.Equal(t, RichText, inlines[1].Kind)
	require.Equal(t, "b", inlines[1].Text)
	require.True(t, inlines[1].Style.Italic)
	require.False(t, inlines[1].Style.Bold)

	require.Equal(t, RichText, inlines[3].Kind)
	require.Equal(t, "c", inlines[3].Text)
	require.True(t, inlines[3].Style.Bold)
}

func TestStylePatchComposes(t *testing.T) {
	base := Style{Italic: true, Fg: 0x111111, HasFg: true}
	patched := base.Patch(Style{Bold: true, Fg: 0x222222, HasFg: true})

	require.True(t, patched.Italic)
	require.True(t, patched.Bold)
	require.Equal(t, uint32(0x222222), patched.Fg)

	unchanged := base.Patch(Style{Underline: true})
	require.Equal(t, uint32(0x111111), unchanged.Fg)
	require.True(t, unchanged.Underline)
	require.True(t, unchanged.Italic)
}

func TestSelectionCoordinates(t *testing.T) {
	doc := Parse("first [[ref]] last\n\nsecond block")
	require.Equal(t, 2, doc.BlockCount())
	require.Equal(t, 3, doc.BlockLength(0))
	require.Equal(t, 1, doc.BlockLength(1))
	require.Equal(t, 0, doc.BlockLength(5))

	doc.Select(1, 0, true)
	require.True(t, doc.Get(1, 0).Selected)
	doc.Select(1, 0, false)
	require.False(t, doc.Get(1, 0).Selected)

	require.Nil(t, doc.Get(7, 0))
	require.Nil(t, doc.Get(0, 9))
	doc.Select(7, 9, true)
}
