package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "capacita/internal/modules/progress/dto"
	"capacita/internal/ui/components"
	"capacita/internal/ui/theme"
	evaluationview "capacita/internal/ui/views/evaluation"
	faqview "capacita/internal/ui/views/faq"
	progressview "capacita/internal/ui/views/progress"
	trainingview "capacita/internal/ui/views/training"
	viewerview "capacita/internal/ui/views/viewer"
)

// Ports bundles what the sub-views need.
type Ports struct {
	Training   trainingview.Port
	Viewer     viewerview.Port
	Tracker    viewerview.StatusPort
	Progress   progressview.Port
	Evaluation evaluationview.Port
	FAQ        faqview.Port
	// Notices delivers tracker and submission notices for the banner.
	Notices   <-chan progressdto.Notice
	NoticeTTL time.Duration
}

type tabID int

const (
	tabTraining tabID = iota
	tabViewer
	tabProgress
	tabEvaluation
	tabFAQ
	tabCount
)

var tabLabels = [tabCount]string{"Training", "Viewer", "Progress", "Evaluation", "FAQ"}

type noticeMsg struct{ notice progressdto.Notice }

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Extern  key.Binding
	Close   key.Binding
	PrevPg  key.Binding
	NextPg  key.Binding
	Reload  key.Binding
	Retry   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / start")),
		Extern:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "open externally")),
		Close:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close viewer")),
		PrevPg:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "page")),
		NextPg:  key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "page")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Retry:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "retry evaluation")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Extern, k.Close},
		{k.PrevPg, k.NextPg, k.Reload, k.Retry},
		{k.Help, k.Palette, k.Quit},
	}
}

// Model is the root Bubble Tea model. It routes keys to the active tab,
// owns the notice banner and the command palette, and leaves all business
// logic to the ports.
type Model struct {
	notices <-chan progressdto.Notice

	trainingView   trainingview.Model
	viewerView     viewerview.Model
	progressView   progressview.Model
	evaluationView evaluationview.Model
	faqView        faqview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	banner    components.Banner
	status    string
	width     int
	height    int
}

func NewModel(ports Ports) Model {
	return Model{
		notices:        ports.Notices,
		trainingView:   trainingview.New(ports.Training),
		viewerView:     viewerview.New(ports.Viewer, ports.Tracker),
		progressView:   progressview.New(ports.Progress),
		evaluationView: evaluationview.New(ports.Evaluation),
		faqView:        faqview.New(ports.FAQ),
		activeTab:      tabTraining,
		keys:           defaultKeys(),
		help:           help.New(),
		palette:        components.NewPalette(),
		banner:         components.NewBanner(ports.NoticeTTL),
		status:         "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.trainingView.Init(),
		m.viewerView.Init(),
		m.progressView.Init(),
		m.evaluationView.Init(),
		m.faqView.Init(),
		m.waitNotice(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.banner.SetWidth(m.width)
		m.help.Width = m.width
		return m, m.broadcast(tea.WindowSizeMsg{Width: m.width, Height: m.height - 4})

	case noticeMsg:
		return m, tea.Batch(m.banner.Show(msg.notice.Level, msg.notice.Message), m.progressView.Reload(), m.waitNotice())

	case components.BannerExpiredMsg:
		m.banner = m.banner.Update(msg)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case viewerview.OpenedMsg:
		if msg.Err != nil {
			m.status = "viewer: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("viewer: %s [%s]", msg.Result.Title, msg.Result.Mode)
			m.activeTab = tabViewer
		}

	case viewerview.ClosedMsg:
		m.status = "viewer closed"
		if msg.Err != nil {
			m.status = "viewer close: " + msg.Err.Error()
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.String() == "?" || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}
	if m.activeTab == tabTraining && m.trainingView.Filtering() {
		return m, m.routeKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case ":":
		return m, m.palette.Open()
	}

	switch m.activeTab {
	case tabTraining:
		if sel, ok := m.trainingView.Selected(); ok {
			switch msg.String() {
			case "enter":
				return m, m.viewerView.Open(sel.ID, "auto", 1)
			case "e":
				return m, m.viewerView.Launch(sel.ID, "auto")
			}
		}
	case tabViewer:
		switch msg.String() {
		case "left":
			return m, m.viewerView.PrevPage()
		case "right":
			return m, m.viewerView.NextPage()
		case "x":
			return m, m.viewerView.Close()
		}
	case tabProgress:
		if msg.String() == "r" {
			return m, m.progressView.Reload()
		}
	case tabFAQ:
		switch msg.String() {
		case "left":
			return m, m.faqView.PrevPage()
		case "right":
			return m, m.faqView.NextPage()
		}
	}
	return m, m.routeKey(msg)
}

// routeKey sends a key only to the active tab.
func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabTraining:
		m.trainingView, cmd = m.trainingView.Update(msg)
	case tabViewer:
		m.viewerView, cmd = m.viewerView.Update(msg)
	case tabProgress:
		m.progressView, cmd = m.progressView.Update(msg)
	case tabEvaluation:
		m.evaluationView, cmd = m.evaluationView.Update(msg)
	case tabFAQ:
		m.faqView, cmd = m.faqView.Update(msg)
	}
	return cmd
}

// broadcast delivers non-key messages to every sub-view; each ignores what
// it does not own.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 5)
	m.trainingView, cmds[0] = m.trainingView.Update(msg)
	m.viewerView, cmds[1] = m.viewerView.Update(msg)
	m.progressView, cmds[2] = m.progressView.Update(msg)
	m.evaluationView, cmds[3] = m.evaluationView.Update(msg)
	m.faqView, cmds[4] = m.faqView.Update(msg)
	return tea.Batch(cmds...)
}

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	bannerView := m.banner.View()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar)-lipgloss.Height(bannerView), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	if bannerView != "" {
		return lipgloss.JoinVertical(lipgloss.Left, tabBar, bannerView, content, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTraining:
		return m.trainingView.View()
	case tabViewer:
		return m.viewerView.View()
	case tabProgress:
		return m.progressView.View()
	case tabEvaluation:
		return m.evaluationView.View()
	case tabFAQ:
		return m.faqView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "capacita  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if id := m.viewerView.MaterialID(); id != "" {
		left = theme.Hot.Render("● "+id) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(left+strings.Repeat(" ", gap)+right)
}

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
	selected, hasSelection := m.trainingView.Selected()

	switch parts[0] {
	case "training:search":
		m.activeTab = tabTraining
		return m, m.trainingView.Search(rest)
	case "training:reload":
		m.activeTab = tabTraining
		return m, m.trainingView.Search("")
	case "view:open":
		if !hasSelection {
			m.status = "no material selected"
			return m, nil
		}
		mode, page := "auto", 1
		if len(parts) >= 2 {
			mode = parts[1]
		}
		if len(parts) >= 3 {
			if p, err := strconv.Atoi(parts[2]); err == nil {
				page = p
			}
		}
		return m, m.viewerView.Open(selected.ID, mode, page)
	case "view:external":
		if !hasSelection {
			m.status = "no material selected"
			return m, nil
		}
		return m, m.viewerView.Launch(selected.ID, "auto")
	case "view:next-page":
		return m, m.viewerView.NextPage()
	case "view:prev-page":
		return m, m.viewerView.PrevPage()
	case "view:close":
		return m, m.viewerView.Close()
	case "progress:reload":
		m.activeTab = tabProgress
		return m, m.progressView.Reload()
	case "evaluation:refresh":
		m.activeTab = tabEvaluation
		return m, m.evaluationView.Refresh()
	case "evaluation:retry":
		m.activeTab = tabEvaluation
		return m, m.evaluationView.Retry()
	case "evaluation:start":
		m.activeTab = tabEvaluation
		return m, m.evaluationView.Start()
	case "faq:search":
		m.activeTab = tabFAQ
		return m, m.faqView.Search(rest)
	case "faq:page":
		page, err := strconv.Atoi(rest)
		if err != nil {
			m.status = "usage: faq:page <n>"
			return m, nil
		}
		m.activeTab = tabFAQ
		return m, m.faqView.Goto(page)
	}
	m.status = "unknown command: " + parts[0]
	return m, nil
}

func (m Model) waitNotice() tea.Cmd {
	ch := m.notices
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg{notice: n}
	}
}
