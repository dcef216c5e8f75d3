package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reportLoadedMsg carries a freshly generated report.
type reportLoadedMsg struct {
	resp *contract.ReportResponse
	err  error
}

// boardChangedMsg signals that the watched board file changed.
type boardChangedMsg struct{}

type reportKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Tiers       key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newReportKeyMap() reportKeyMap {
	return reportKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "fold")),
		ExpandAll:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand all")),
		CollapseAll: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse all")),
		Tiers:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priorities")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k reportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Tiers, k.Help, k.Quit}
}

func (k reportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.ExpandAll, k.CollapseAll, k.Tiers},
		{k.Reload, k.Help, k.Quit},
	}
}

// reportView is an interactive report with foldable sections.
type reportView struct {
	ctx       context.Context
	generate  func(context.Context) (*contract.ReportResponse, error)
	changes   <-chan struct{}
	collapsed bool

	resp      *contract.ReportResponse
	err       error
	loading   bool
	cursor    int
	expanded  []bool
	showTiers bool

	keys reportKeyMap
	help help.Model
}

// newReportView builds the view; ctx is passed to every generate call.
func newReportView(ctx context.Context, generate func(context.Context) (*contract.ReportResponse, error), changes <-chan struct{}, collapsed bool) *reportView {
	return &reportView{
		ctx:       ctx,
		generate:  generate,
		changes:   changes,
		collapsed: collapsed,
		loading:   true,
		showTiers: true,
		keys:      newReportKeyMap(),
		help:      help.New(),
	}
}

func (v *reportView) Init() tea.Cmd {
	return tea.Batch(v.load(), v.waitForChange())
}

func (v *reportView) load() tea.Cmd {
	ctx, generate := v.ctx, v.generate
	return func() tea.Msg {
		resp, err := generate(ctx)
		return reportLoadedMsg{resp: resp, err: err}
	}
}

func (v *reportView) waitForChange() tea.Cmd {
	if v.changes == nil {
		return nil
	}
	changes := v.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

func (v *reportView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		return v, nil

	case reportLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.setReport(msg.resp)
		return v, nil

	case boardChangedMsg:
		return v, tea.Batch(v.load(), v.waitForChange())

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

// setReport installs resp, keeping fold state when the section count is
// unchanged.
func (v *reportView) setReport(resp *contract.ReportResponse) {
	v.resp = resp
	if len(v.expanded) != len(resp.Sections) {
		v.expanded = make([]bool, len(resp.Sections))
		for i := range v.expanded {
			v.expanded[i] = !v.collapsed
		}
	}
	if v.cursor >= len(resp.Sections) {
		v.cursor = max(len(resp.Sections)-1, 0)
	}
}

func (v *reportView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.expanded)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.Toggle):
		if v.cursor < len(v.expanded) {
			v.expanded[v.cursor] = !v.expanded[v.cursor]
		}
	case key.Matches(msg, v.keys.ExpandAll):
		v.setAll(true)
	case key.Matches(msg, v.keys.CollapseAll):
		v.setAll(false)
	case key.Matches(msg, v.keys.Tiers):
		v.showTiers = !v.showTiers
	case key.Matches(msg, v.keys.Reload):
		return v, v.load()
	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	}
	return v, nil
}

func (v *reportView) setAll(expanded bool) {
	for i := range v.expanded {
		v.expanded[i] = expanded
	}
}

func (v *reportView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading report...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}

	if v.resp != nil {
		v.renderReport(&b)
	}

	b.WriteString("\n  " + v.help.View(v.keys) + "\n")
	return b.String()
}

func (v *reportView) renderReport(b *strings.Builder) {
	if len(v.resp.Sections) == 0 {
		b.WriteString("  " + formatter.Dim("No sections on this board.") + "\n")
	}

	for i, s := range v.resp.Sections {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		fold := formatter.Dim("[+]")
		if v.expanded[i] {
			fold = formatter.Dim("[-]")
		}
		b.WriteString(cursor + fold + " " + formatter.SummaryLine(s.Summary) + "\n")

		if v.expanded[i] {
			tree := formatter.RenderTree(formatter.SectionTree(s))
			for _, line := range strings.Split(strings.TrimSuffix(tree, "\n"), "\n") {
				if line != "" {
					b.WriteString("      " + line + "\n")
				}
			}
		}
	}

	b.WriteString("\n  " + formatter.SummaryLine(v.resp.Overall) + "\n")
	if v.showTiers {
		for _, p := range v.resp.Priorities {
			b.WriteString("  " + formatter.PriorityIconStyled(p.Tier) + " " + formatter.SummaryLine(p.Summary) + "\n")
		}
	}
}

// runInteractive opens the report view, reloading on board changes.
func runInteractive(ctx context.Context, app *App, path string, generate func(context.Context) (*contract.ReportResponse, error), opts reportOptions) error {
	var changes <-chan struct{}
	if opts.watch {
		w, err := NewWatcher(path, app.Config.WatchDebounce)
		if err != nil {
			return err
		}
		defer w.Close()
		changes = w.Changes()
	}

	view := newReportView(ctx, generate, changes, opts.collapsed)
	run := app.RunProgram
	if run == nil {
		run = func(ctx context.Context, m tea.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		}
	}
	return run(ctx, view)
}
