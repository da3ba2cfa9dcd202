package evaluation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	evaldto "capacita/internal/modules/evaluation/dto"
	"capacita/internal/ui/theme"
)

type Port interface {
	Status(ctx context.Context) evaldto.GateOutput
	Refresh(ctx context.Context) (evaldto.GateOutput, error)
	Retry(ctx context.Context) (evaldto.RetryOutput, error)
	Questions(ctx context.Context) ([]evaldto.QuestionOutput, error)
	Submit(ctx context.Context, answers map[string]string) (evaldto.SubmitOutput, error)
}

type GateMsg struct {
	Gate evaldto.GateOutput
	Err  error
}

type QuestionsMsg struct {
	Questions []evaldto.QuestionOutput
	Err       error
}

type SubmittedMsg struct {
	Out evaldto.SubmitOutput
	Err error
}

type RetriedMsg struct {
	Out evaldto.RetryOutput
	Err error
}

type countdownMsg struct{}

type Model struct {
	port      Port
	gate      evaldto.GateOutput
	questions []evaldto.QuestionOutput
	answers   map[string]string
	cursor    int
	status    string
	width     int
	height    int
}

func New(port Port) Model {
	return Model{port: port, answers: map[string]string{}}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), countdown())
}

func (m Model) Refresh() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		gate, err := port.Refresh(context.Background())
		return GateMsg{Gate: gate, Err: err}
	}
}

// Retry asks the backend for another attempt. The button stays disabled
// locally while a cooldown is running or retries are locked.
func (m Model) Retry() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		out, err := port.Retry(context.Background())
		return RetriedMsg{Out: out, Err: err}
	}
}

func (m Model) Start() tea.Cmd {
	port := m.port
	return func() tea.Msg {
		qs, err := port.Questions(context.Background())
		return QuestionsMsg{Questions: qs, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case countdownMsg:
		m.gate = m.port.Status(context.Background())
		return m, countdown()

	case GateMsg:
		m.gate = msg.Gate
		m.status = errText(msg.Err)

	case RetriedMsg:
		m.gate = msg.Out.Gate
		m.status = msg.Out.Message
		if msg.Err != nil {
			m.status = msg.Err.Error()
		}

	case QuestionsMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.questions, m.answers, m.cursor = msg.Questions, map[string]string{}, 0
		m.gate = m.port.Status(context.Background())
		m.status = ""

	case SubmittedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.gate = msg.Out.Gate
		m.questions = nil
		m.status = msg.Out.Message

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if len(m.questions) == 0 {
		switch msg.String() {
		case "r":
			return m, m.Refresh()
		case "t":
			if !m.gate.CanRetry {
				return m, nil
			}
			return m, m.Retry()
		case "enter":
			return m, m.Start()
		}
		return m, nil
	}
	switch key := msg.String(); key {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, len(m.questions)-1)
	case "enter":
		if len(m.answers) < len(m.questions) {
			m.status = fmt.Sprintf("answer every question (%d/%d)", len(m.answers), len(m.questions))
			return m, nil
		}
		answers, port := m.answers, m.port
		return m, func() tea.Msg {
			out, err := port.Submit(context.Background(), answers)
			return SubmittedMsg{Out: out, Err: err}
		}
	default:
		n, err := strconv.Atoi(key)
		q := m.questions[m.cursor]
		if err == nil && n >= 1 && n <= len(q.Options) {
			m.answers[q.ID] = strconv.Itoa(n)
			m.cursor = min(m.cursor+1, len(m.questions)-1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Evaluation") + "  " + m.renderState() + "\n\n")
	if len(m.questions) > 0 {
		for i, q := range m.questions {
			marker := "  "
			if i == m.cursor {
				marker = theme.Hot.Render("› ")
			}
			sb.WriteString(marker + fmt.Sprintf("%d. %s\n", i+1, q.Text))
			for j, opt := range q.Options {
				line := fmt.Sprintf("     %d) %s", j+1, opt)
				if m.answers[q.ID] == strconv.Itoa(j+1) {
					line = theme.Good.Render(line + "  ✓")
				}
				sb.WriteString(line + "\n")
			}
		}
		sb.WriteString("\n" + theme.Muted.Render("↑/↓: question  1-9: answer  enter: submit"))
	} else {
		sb.WriteString(theme.Muted.Render(m.hint()))
	}
	if m.status != "" {
		sb.WriteString("\n\n" + m.status)
	}
	return sb.String()
}

func (m Model) renderState() string {
	g := m.gate
	switch g.State {
	case "passed":
		return theme.Good.Render("passed")
	case "failed":
		switch {
		case g.RetryLocked:
			return theme.Bad.Render("failed: retries locked")
		case g.Cooldown > 0:
			return theme.Bad.Render("failed") + theme.Muted.Render("  retry available in "+g.Countdown)
		}
		return theme.Bad.Render("failed") + theme.Muted.Render("  retry available")
	case "in_progress":
		return theme.Hot.Render("in progress")
	case "ready":
		return theme.Hot.Render("ready")
	case "not_started":
		return theme.Muted.Render("locked until all materials are completed")
	}
	return theme.Muted.Render("loading…")
}

func (m Model) hint() string {
	switch m.gate.State {
	case "ready", "in_progress":
		return "enter: start evaluation  r: refresh"
	case "failed":
		if m.gate.CanRetry {
			return "t: request retry  r: refresh"
		}
		return "r: refresh"
	}
	return "r: refresh"
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func countdown() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return countdownMsg{} })
}
