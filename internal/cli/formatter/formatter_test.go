package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneStyle_MapsTonesToPalette(t *testing.T) {
	assert.Equal(t, StyleAmber.GetForeground(), ToneStyle(domain.ToneNormal).GetForeground())
	assert.Equal(t, StyleGreen.GetForeground(), ToneStyle(domain.ToneGood).GetForeground())
	assert.Equal(t, StyleRed.GetForeground(), ToneStyle(domain.ToneBad).GetForeground())
	assert.Equal(t, StyleFg.GetForeground(), ToneStyle(domain.Tone("other")).GetForeground())
}

func TestPriorityIcon(t *testing.T) {
	for _, p := range domain.PriorityOrder {
		assert.NotEqual(t, "?", PriorityIcon(p), p)
	}
	assert.Equal(t, "?", PriorityIcon(domain.Priority("blocker")))
}

func TestRenderTree_AlignsDetails(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "a", Level: 1, Detail: "[1h]", Tone: domain.ToneNormal},
		{Title: "longer", Level: 1, IsLast: true, Detail: "[2h]", Tone: domain.ToneGood},
	}))
	assert.Equal(t, "├─ a       [1h]\n└─ longer  [2h]\n", out)
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func TestRenderTableAligned_RightAlignsAndSkipsTrailingPad(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"N", "NAME"},
		[][]string{{"7", "x"}, {"12", "yy"}},
		[]Align{AlignRight},
	))
	assert.Equal(t, " N  NAME\n──  ────\n 7  x\n12  yy\n", out)
}

func TestRenderTableAligned_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTableAligned(nil, [][]string{{"x"}}, nil))
}

func TestSummaryLine_AppendsBadges(t *testing.T) {
	s := contract.Summary{
		Headline: "[-] Backlog: 1 issues",
		Tone:     domain.ToneBad,
		Badges:   []contract.Badge{{Text: "1 unestimated", Tone: domain.ToneBad}},
	}
	assert.Equal(t, "[-] Backlog: 1 issues (1 unestimated)", stripANSI(SummaryLine(s)))
}

func TestFormatParseResults(t *testing.T) {
	out := stripANSI(FormatParseResults([]ParseResult{
		{Text: "1 day, 4 hours", Hours: domain.IntPtr(12)},
		{Text: "soon"},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `"1 day, 4 hours"     12  1d 4h`, lines[2])
	assert.Equal(t, `"soon"                -  -`, lines[3])
}

func TestFormatMarkdown_IconBaseURL(t *testing.T) {
	out := FormatMarkdown(testutil.SampleResponse(t), MarkdownOptions{IconBaseURL: "https://cdn.example.com/p"})
	assert.Contains(t, out, "| ![high](https://cdn.example.com/p/high.svg) | high |")
	assert.Contains(t, out, "![flagged](https://cdn.example.com/p/flagged.svg)")
	assert.NotContains(t, out, "| ↑ |")
}

func TestFormatMarkdown_CollapsedOmitsItemTables(t *testing.T) {
	out := FormatMarkdown(testutil.SampleResponse(t), MarkdownOptions{Collapsed: true})
	assert.NotContains(t, out, "Checkout flow")
	assert.Contains(t, out, "| ! | flagged |")
}

func TestMdEscape(t *testing.T) {
	assert.Equal(t, `a \| b \*c\* \[d\]`, mdEscape("a | b *c* [d]"))
}

func TestRenderMarkdown_Plain(t *testing.T) {
	md := FormatMarkdown(testutil.SampleResponse(t), MarkdownOptions{})
	out, err := RenderMarkdown(md, 100, true)
	require.NoError(t, err)
	assert.Contains(t, out, "Sprint report")
	assert.Contains(t, out, "Checkout flow")
}
