package schedule

import (
	"sync"
	"time"
)

// ManualScheduler runs tasks only when Fire is called. Cancelled tasks can
// still be fired with FireCancelled to reproduce a tick that was already in
// flight when its owner stopped it.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*ManualTask
}

type ManualTask struct {
	Period    time.Duration
	fn        func()
	mu        sync.Mutex
	cancelled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(period time.Duration, fn func()) Handle {
	task := &ManualTask{Period: period, fn: fn}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task
}

func (t *ManualTask) Cancel() {
	t.mu.Lock()
	t.cancelled = true
	t.mu.Unlock()
}

func (t *ManualTask) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelled
}

// Tasks returns every task ever scheduled, in order.
func (s *ManualScheduler) Tasks() []*ManualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*ManualTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Active returns tasks that have not been cancelled.
func (s *ManualScheduler) Active() []*ManualTask {
	var out []*ManualTask
	for _, task := range s.Tasks() {
		if !task.Cancelled() {
			out = append(out, task)
		}
	}
	return out
}

// Fire runs every active task n times.
func (s *ManualScheduler) Fire(n int) {
	for i := 0; i < n; i++ {
		for _, task := range s.Active() {
			task.fn()
		}
	}
}

// FireCancelled runs a task regardless of its cancelled flag.
func (t *ManualTask) FireCancelled() {
	t.fn()
}
