package training

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trainingdto "capacita/internal/modules/training/dto"
	"capacita/internal/ui/theme"
)

type Port interface {
	Catalog(ctx context.Context, query string) (trainingdto.CatalogOutput, error)
}

type CatalogLoadedMsg struct {
	Catalog trainingdto.CatalogOutput
	Err     error
}

type materialItem struct {
	material trainingdto.MaterialOutput
}

func (i materialItem) Title() string { return i.material.Title }

func (i materialItem) Description() string {
	var kinds []string
	if i.material.DocumentURL != "" {
		kinds = append(kinds, "document")
	}
	if i.material.VideoURL != "" {
		kinds = append(kinds, "video")
	}
	where := i.material.Section
	if i.material.Module != "" {
		where += " / " + i.material.Module
	}
	return fmt.Sprintf("%s  [%s]", where, strings.Join(kinds, "+"))
}

func (i materialItem) FilterValue() string {
	m := i.material
	return strings.Join([]string{m.Title, m.Description, strings.Join(m.Roles, ", "), m.Submodule, m.Section, m.Module}, " ")
}

type Model struct {
	port    Port
	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	query   string
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Training"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, preview: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(""), m.spinner.Tick)
}

// Search reloads the catalog with a server-side search query.
func (m *Model) Search(query string) tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(query), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Training: " + msg.Err.Error()
			return m, nil
		}
		m.query = msg.Catalog.Query
		m.list.Title = "Training"
		if m.query != "" {
			m.list.Title = fmt.Sprintf("Training: %q (%d)", m.query, msg.Catalog.Total)
		}
		var items []list.Item
		for _, s := range msg.Catalog.Sections {
			for _, mod := range s.Modules {
				for _, mat := range mod.Materials {
					items = append(items, materialItem{material: mat})
				}
			}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prev := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prev {
			m.preview.SetContent(m.renderDetail())
		}
		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Loading materials…")
	}
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(m.width - listW - 2).
		Height(m.height - 2).
		Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Selected returns the highlighted material.
func (m Model) Selected() (trainingdto.MaterialOutput, bool) {
	if item, ok := m.list.SelectedItem().(materialItem); ok {
		return item.material, true
	}
	return trainingdto.MaterialOutput{}, false
}

// Filtering reports whether the list's filter input is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.preview.Width = m.width - listW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d, ok := m.Selected()
	if !ok {
		if m.query != "" {
			return theme.Muted.Render("No materials match the search")
		}
		return theme.Muted.Render("No materials available")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n\n")
	sb.WriteString(d.Description + "\n\n")
	sb.WriteString(theme.Muted.Render("section:   ") + d.Section + "\n")
	if d.Module != "" {
		sb.WriteString(theme.Muted.Render("module:    ") + d.Module + "\n")
	}
	if d.Submodule != "" {
		sb.WriteString(theme.Muted.Render("submodule: ") + d.Submodule + "\n")
	}
	sb.WriteString(theme.Muted.Render("roles:     ") + strings.Join(d.Roles, ", ") + "\n")
	if d.DocumentName != "" || d.DocumentURL != "" {
		sb.WriteString(theme.Muted.Render("document:  ") + firstNonEmpty(d.DocumentName, d.DocumentURL) + "\n")
	}
	if d.VideoName != "" || d.VideoURL != "" {
		sb.WriteString(theme.Muted.Render("video:     ") + firstNonEmpty(d.VideoName, d.VideoURL) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open in Viewer  e: open externally"))
	return sb.String()
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func (m Model) loadCmd(query string) tea.Cmd {
	return func() tea.Msg {
		catalog, err := m.port.Catalog(context.Background(), query)
		return CatalogLoadedMsg{Catalog: catalog, Err: err}
	}
}
