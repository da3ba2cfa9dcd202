package out

import (
	"fmt"
	"io"
	"sync"

	"capacita/internal/modules/progress/domain"
	"capacita/internal/modules/progress/dto"
	progressout "capacita/internal/modules/progress/port/out"
)

// WriterNotifier prints notices as lines, for CLI commands.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) progressout.Notifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notice domain.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", notice.Level, notice.Message)
}

// ChannelNotifier forwards notices to the TUI. Sends never block; a full
// buffer drops the notice.
type ChannelNotifier struct {
	ch chan dto.Notice
}

func NewChannelNotifier(buffer int) *ChannelNotifier {
	if buffer <= 0 {
		buffer = 16
	}
	return &ChannelNotifier{ch: make(chan dto.Notice, buffer)}
}

func (n *ChannelNotifier) Notify(notice domain.Notice) {
	select {
	case n.ch <- dto.Notice{Level: string(notice.Level), Message: notice.Message}:
	default:
	}
}

func (n *ChannelNotifier) Notices() <-chan dto.Notice {
	return n.ch
}

// FanoutNotifier delivers to every target that is currently attached.
type FanoutNotifier struct {
	mu      sync.RWMutex
	targets []progressout.Notifier
}

func NewFanoutNotifier(targets ...progressout.Notifier) *FanoutNotifier {
	return &FanoutNotifier{targets: targets}
}

func (n *FanoutNotifier) Attach(target progressout.Notifier) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
}

func (n *FanoutNotifier) Notify(notice domain.Notice) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, t := range n.targets {
		t.Notify(notice)
	}
}
