package progress

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "capacita/internal/modules/progress/dto"
	"capacita/internal/ui/theme"
)

type Port interface {
	View(ctx context.Context) ([]progressdto.RecordOutput, error)
	Completed(ctx context.Context) (bool, error)
}

type LoadedMsg struct {
	Records   []progressdto.RecordOutput
	Completed bool
	Err       error
}

type Model struct {
	port      Port
	table     table.Model
	completed bool
	err       error
	loaded    bool
	width     int
	height    int
}

func New(port Port) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).Bold(true).BorderForeground(theme.Surface1)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, table: t}
}

func (m Model) Init() tea.Cmd { return m.Reload() }

// Reload refetches the learner's progress from the server.
func (m Model) Reload() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		ctx := context.Background()
		records, err := port.View(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		done, err := port.Completed(ctx)
		return LoadedMsg{Records: records, Completed: done, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(columns(m.width))
		m.table.SetHeight(max(m.height-4, 3))
	case LoadedMsg:
		m.loaded = true
		m.err = msg.Err
		if msg.Err == nil {
			m.completed = msg.Completed
			rows := make([]table.Row, 0, len(msg.Records))
			for _, r := range msg.Records {
				rows = append(rows, table.Row{r.Title, pct(r.DocumentProgress), pct(r.VideoProgress), pct(r.Progress), r.Status})
			}
			m.table.SetRows(rows)
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Progress")
	switch {
	case !m.loaded:
		header += theme.Muted.Render("  loading…")
	case m.err != nil:
		header += "  " + theme.Bad.Render(m.err.Error())
	case m.completed:
		header += "  " + theme.Good.Render("all materials completed: evaluation unlocked")
	default:
		header += theme.Muted.Render("  complete every material to unlock the evaluation")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View())
}

func columns(width int) []table.Column {
	title := max(width-4*12-10, 20)
	return []table.Column{
		{Title: "Material", Width: title},
		{Title: "Document", Width: 10},
		{Title: "Video", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Status", Width: 12},
	}
}

func pct(v float64) string { return fmt.Sprintf("%.0f%%", v) }
