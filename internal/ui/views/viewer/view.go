package viewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "capacita/internal/modules/progress/dto"
	viewerdto "capacita/internal/modules/viewer/dto"
	"capacita/internal/ui/theme"
)

// Port is what the Viewer tab needs from the viewer use-case.
type Port interface {
	Open(ctx context.Context, materialID, mode string, page int) (viewerdto.OpenResult, error)
	Launch(ctx context.Context, materialID, mode string) (viewerdto.OpenResult, error)
	ReadPage(ctx context.Context, materialID string, page int) (viewerdto.PageOutput, error)
	Close(ctx context.Context) error
}

// StatusPort reports the dwell timer of the open material.
type StatusPort interface {
	Status(ctx context.Context) progressdto.TrackerStatus
}

type OpenedMsg struct {
	Result viewerdto.OpenResult
	Err    error
}

type PageMsg struct {
	Page viewerdto.PageOutput
	Err  error
}

type ClosedMsg struct{ Err error }

type statusTickMsg struct{}

type Model struct {
	port     Port
	status   StatusPort
	viewport viewport.Model
	spinner  spinner.Model
	bar      progress.Model
	result   viewerdto.OpenResult
	tracker  progressdto.TrackerStatus
	loading  bool
	width    int
	height   int
}

func New(port Port, status StatusPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{
		port:     port,
		status:   status,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		bar:      progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green))),
	}
}

// Init starts the once-per-second poll of the dwell timer.
func (m Model) Init() tea.Cmd { return statusTick() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case OpenedMsg:
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent(theme.Bad.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.result = msg.Result
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()

	case PageMsg:
		if msg.Err != nil {
			m.viewport.SetContent(theme.Bad.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.result.Page, m.result.TotalPage, m.result.Content = msg.Page.Page, msg.Page.TotalPage, msg.Page.Text
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()

	case ClosedMsg:
		m.result = viewerdto.OpenResult{}
		m.tracker = progressdto.TrackerStatus{}
		m.viewport.SetContent("")

	case statusTickMsg:
		if m.status != nil {
			m.tracker = m.status.Status(context.Background())
		}
		return m, statusTick()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			lipgloss.Place(m.width, max(m.height-lipgloss.Height(header), 1), lipgloss.Center, lipgloss.Center, m.spinner.View()+" Opening material…"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.renderFooter())
}

// Open loads a material; any tracking of the previous one stops.
func (m *Model) Open(materialID, mode string, page int) tea.Cmd {
	m.loading = true
	port := m.port
	return tea.Batch(func() tea.Msg {
		result, err := port.Open(context.Background(), materialID, mode, page)
		return OpenedMsg{Result: result, Err: err}
	}, m.spinner.Tick)
}

func (m *Model) Launch(materialID, mode string) tea.Cmd {
	m.loading = true
	port := m.port
	return tea.Batch(func() tea.Msg {
		result, err := port.Launch(context.Background(), materialID, mode)
		return OpenedMsg{Result: result, Err: err}
	}, m.spinner.Tick)
}

// NextPage turns the PDF page without touching the dwell timer.
func (m Model) NextPage() tea.Cmd {
	if !m.paged() || m.result.Page >= m.result.TotalPage {
		return nil
	}
	return m.pageCmd(m.result.Page + 1)
}

func (m Model) PrevPage() tea.Cmd {
	if !m.paged() || m.result.Page <= 1 {
		return nil
	}
	return m.pageCmd(m.result.Page - 1)
}

func (m Model) Close() tea.Cmd {
	if m.result.MaterialID == "" {
		return nil
	}
	port := m.port
	return func() tea.Msg { return ClosedMsg{Err: port.Close(context.Background())} }
}

func (m Model) MaterialID() string { return m.result.MaterialID }

func (m Model) paged() bool {
	return m.result.MaterialID != "" && !m.result.ExternalLaunched && m.result.TotalPage > 0
}

func (m Model) pageCmd(page int) tea.Cmd {
	port, id := m.port, m.result.MaterialID
	return func() tea.Msg {
		out, err := port.ReadPage(context.Background(), id, page)
		return PageMsg{Page: out, Err: err}
	}
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-4, 1)
	m.bar.Width = min(max(m.width/3, 10), 40)
}

func (m Model) renderHeader() string {
	if m.result.MaterialID == "" {
		return theme.Title.Render("Viewer") + theme.Muted.Render("  Open a material from the Training tab (enter)") + "\n"
	}
	parts := []string{
		theme.Title.Render(m.result.Title),
		theme.Muted.Render("[" + m.result.Mode + "]"),
	}
	if m.paged() {
		parts = append(parts, theme.Muted.Render(fmt.Sprintf("p.%d/%d", m.result.Page, m.result.TotalPage)))
	}
	return strings.Join(parts, "  ") + theme.Muted.Render("  ←/→: page  ↑/↓: scroll  x: close") + "\n"
}

func (m Model) renderFooter() string {
	t := m.tracker
	switch {
	case m.result.MaterialID == "":
		return ""
	case !m.result.Tracking && !t.Tracking && !t.Completed:
		return theme.Muted.Render("progress is not tracked for this account")
	case t.Completed:
		return m.bar.ViewAs(1) + "  " + theme.Good.Render("completed")
	case t.Kind == "video":
		return m.bar.ViewAs(t.Percent/100) + theme.Muted.Render(fmt.Sprintf("  %.0f%% watched", t.Percent))
	}
	return m.bar.ViewAs(t.Percent/100) + theme.Muted.Render(fmt.Sprintf("  %s read  %.0f%%", clock(t.Elapsed), t.Percent))
}

func (m Model) renderContent() string {
	r := m.result
	if r.ExternalLaunched {
		return theme.Muted.Render("Opened in external application: " + r.ExternalTarget)
	}
	if strings.TrimSpace(r.Content) == "" {
		return theme.Muted.Render("(no text on this page)")
	}
	return r.Content
}

func clock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTickMsg{} })
}
