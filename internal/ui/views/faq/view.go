package faq

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	faqdto "capacita/internal/modules/faq/dto"
	"capacita/internal/ui/theme"
)

type Port interface {
	Page(ctx context.Context, query string, page int) (faqdto.ListOutput, error)
}

type PageLoadedMsg struct {
	Out faqdto.ListOutput
	Err error
}

// Model shows FAQ entries one page at a time, rendered as markdown.
type Model struct {
	port     Port
	viewport viewport.Model
	renderer *glamour.TermRenderer
	out      faqdto.ListOutput
	query    string
	err      error
	width    int
	height   int
}

func New(port Port) Model {
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))
	return Model{port: port, viewport: viewport.New(0, 0), renderer: r}
}

func (m Model) Init() tea.Cmd { return m.load("", 1) }

func (m *Model) Search(query string) tea.Cmd {
	m.query = query
	return m.load(query, 1)
}

func (m Model) Goto(page int) tea.Cmd { return m.load(m.query, page) }

func (m Model) NextPage() tea.Cmd {
	if m.out.Page >= m.out.TotalPages {
		return nil
	}
	return m.load(m.query, m.out.Page+1)
}

func (m Model) PrevPage() tea.Cmd {
	if m.out.Page <= 1 {
		return nil
	}
	return m.load(m.query, m.out.Page-1)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-2, 1)
		if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(m.width)); err == nil {
			m.renderer = r
		}
		m.viewport.SetContent(m.render())
	case PageLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.out = msg.Out
		}
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("FAQ")
	if m.out.Query != "" {
		header += theme.Muted.Render(fmt.Sprintf("  %q", m.out.Query))
	}
	if m.out.TotalPages > 0 {
		header += theme.Muted.Render(fmt.Sprintf("  page %d/%d  ←/→: page", m.out.Page, m.out.TotalPages))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View())
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Bad.Render(m.err.Error())
	}
	if len(m.out.Items) == 0 {
		return theme.Muted.Render("No questions found")
	}
	var md strings.Builder
	for _, f := range m.out.Items {
		fmt.Fprintf(&md, "## %s\n\n%s\n\n*Available for: %s*\n\n", f.Question, f.Answer, strings.Join(f.Roles, ", "))
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(md.String()); err == nil {
			return out
		}
	}
	return md.String()
}

func (m Model) load(query string, page int) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Page(context.Background(), query, page)
		return PageLoadedMsg{Out: out, Err: err}
	}
}
