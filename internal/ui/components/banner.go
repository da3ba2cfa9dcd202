package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"capacita/internal/ui/theme"
)

const DefaultBannerTTL = 5 * time.Second

// BannerExpiredMsg hides the banner shown under the same sequence number.
type BannerExpiredMsg struct{ seq int }

// Banner shows one transient notice at a time. A newer notice replaces the
// current one and restarts its timer.
type Banner struct {
	level   string
	message string
	seq     int
	ttl     time.Duration
	width   int
}

func NewBanner(ttl time.Duration) Banner {
	if ttl <= 0 {
		ttl = DefaultBannerTTL
	}
	return Banner{ttl: ttl}
}

func (b *Banner) Show(level, message string) tea.Cmd {
	b.seq++
	b.level, b.message = level, message
	seq := b.seq
	return tea.Tick(b.ttl, func(time.Time) tea.Msg { return BannerExpiredMsg{seq: seq} })
}

func (b *Banner) SetWidth(w int) { b.width = w }

func (b Banner) Visible() bool { return b.message != "" }

func (b Banner) Update(msg tea.Msg) Banner {
	if m, ok := msg.(BannerExpiredMsg); ok && m.seq == b.seq {
		b.level, b.message = "", ""
	}
	return b
}

func (b Banner) View() string {
	if b.message == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Level(b.level)).
		Bold(true).
		Padding(0, 1).
		Width(b.width).
		Render(b.message)
}
