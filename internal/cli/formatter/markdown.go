package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/charmbracelet/glamour"
)

// MarkdownOptions controls markdown rendering.
type MarkdownOptions struct {
	// IconBaseURL, when set, renders tier icons as images at
	// {IconBaseURL}/{icon_key}.svg instead of glyphs.
	IconBaseURL string
	Collapsed   bool
}

// FormatMarkdown renders a report as a markdown document.
func FormatMarkdown(resp *contract.ReportResponse, opts MarkdownOptions) string {
	var b strings.Builder

	b.WriteString("# Sprint report\n\n")
	fmt.Fprintf(&b, "_Source: %s, generated %s_\n", mdEscape(resp.Source), resp.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))

	for _, s := range resp.Sections {
		b.WriteString("\n## " + mdEscape(s.Summary.Headline) + "\n")
		writeBadges(&b, s.Summary.Badges)
		if opts.Collapsed || len(s.Items) == 0 {
			continue
		}
		b.WriteString("\n| | Title | Priority | Estimate |\n|---|---|---|---|\n")
		for _, it := range s.Items {
			fmt.Fprintf(&b, "| %s | %s | %s | `%s` |\n",
				markdownIcon(it.Priority, string(it.Priority), opts.IconBaseURL),
				mdEscape(it.Title),
				mdEscape(string(it.Priority)),
				it.Cell.Text)
		}
	}

	b.WriteString("\n## " + mdEscape(resp.Overall.Headline) + "\n")
	writeBadges(&b, resp.Overall.Badges)

	if len(resp.Priorities) > 0 {
		b.WriteString("\n| | Tier | Estimate | Issues | Notes |\n|---|---|---|---|---|\n")
		for _, p := range resp.Priorities {
			notes := make([]string, 0, len(p.Summary.Badges))
			for _, badge := range p.Summary.Badges {
				notes = append(notes, badge.Text)
			}
			fmt.Fprintf(&b, "| %s | %s | `%s` | %s | %s |\n",
				markdownIcon(p.Tier, p.IconKey, opts.IconBaseURL),
				mdEscape(string(p.Tier)),
				p.Summary.Cell.Text,
				strconv.Itoa(p.Summary.Count),
				strings.Join(notes, ", "))
		}
	}

	return b.String()
}

func writeBadges(b *strings.Builder, badges []contract.Badge) {
	if len(badges) == 0 {
		return
	}
	parts := make([]string, 0, len(badges))
	for _, badge := range badges {
		parts = append(parts, "**"+badge.Text+"**")
	}
	b.WriteString("\n" + strings.Join(parts, " · ") + "\n")
}

func markdownIcon(p domain.Priority, iconKey, baseURL string) string {
	if baseURL == "" {
		return PriorityIcon(p)
	}
	return fmt.Sprintf("![%s](%s/%s.svg)", iconKey, baseURL, iconKey)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

// mdEscape escapes characters that markdown would otherwise interpret.
func mdEscape(s string) string {
	return mdEscaper.Replace(s)
}

// RenderMarkdown renders markdown for the terminal with glamour. Plain
// selects the colorless style for pipes and NO_COLOR.
func RenderMarkdown(md string, width int, plain bool) (string, error) {
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if plain {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
