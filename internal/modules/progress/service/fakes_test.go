package service_test

import (
	"context"
	"sync"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	"capacita/internal/modules/progress/service"
	"capacita/internal/platform/kv"
	"capacita/internal/platform/schedule"
)

type submitCall struct {
	materialID string
	kind       domain.Kind
	pct        float64
}

type fakeAPI struct {
	mu        sync.Mutex
	starts    []submitCall
	submits   []submitCall
	startErr  error
	submitErr error
	records   []domain.Record
	// required lists materials whose document must reach 100 for completion.
	required []string
	done     map[string]bool
}

func (f *fakeAPI) Start(_ context.Context, id string, kind domain.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts = append(f.starts, submitCall{materialID: id, kind: kind})
	return f.startErr
}

func (f *fakeAPI) Submit(_ context.Context, id string, kind domain.Kind, pct float64) (progressout.SubmitResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits = append(f.submits, submitCall{materialID: id, kind: kind, pct: pct})
	if f.submitErr != nil {
		return progressout.SubmitResult{}, f.submitErr
	}
	if pct >= 100 && kind == domain.KindDocument {
		if f.done == nil {
			f.done = map[string]bool{}
		}
		f.done[id] = true
	}
	return progressout.SubmitResult{Message: "ok", TotalProgress: pct / 2}, nil
}

func (f *fakeAPI) Completed(context.Context, string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.required) == 0 {
		return false, nil
	}
	for _, id := range f.required {
		if !f.done[id] {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeAPI) View(context.Context, string) ([]domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Record(nil), f.records...), nil
}

func (f *fakeAPI) AllProgress(context.Context) ([]domain.UserProgress, error) { return nil, nil }
func (f *fakeAPI) AllCompleted(context.Context) ([]string, error)             { return nil, nil }

func (f *fakeAPI) submitted() []submitCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]submitCall(nil), f.submits...)
}

func (f *fakeAPI) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.starts)
}

type fakeIdentity struct{ ident domain.Identity }

func (f fakeIdentity) Identity(context.Context) (domain.Identity, error) { return f.ident, nil }

type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (n *recordingNotifier) Notify(notice domain.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) count(level domain.NoticeLevel) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, notice := range n.notices {
		if notice.Level == level {
			c++
		}
	}
	return c
}

func (n *recordingNotifier) total() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notices)
}

var learner = domain.Identity{UserID: "u-1", Role: "asesor"}

type harness struct {
	api       *fakeAPI
	store     *kv.MemoryStore
	scheduler *schedule.ManualScheduler
	notifier  *recordingNotifier
	submitter *service.Submitter
	tracker   *service.Tracker
}

func newHarness(api *fakeAPI, ident domain.Identity) harness {
	store := kv.NewMemoryStore()
	return newHarnessWithStore(api, ident, store, store)
}

// newHarnessWithStore lets the tracker write through backing while the
// harness reads the underlying memory store directly.
func newHarnessWithStore(api *fakeAPI, ident domain.Identity, store *kv.MemoryStore, backing progressout.KeyValueStore) harness {
	scheduler := schedule.NewManualScheduler()
	notifier := &recordingNotifier{}
	submitter := service.NewSubmitter(api, fakeIdentity{ident: ident}, notifier, nil)
	tracker := service.NewTracker(service.TrackerConfig{}, submitter, api, backing, scheduler, nil)
	return harness{api: api, store: store, scheduler: scheduler, notifier: notifier, submitter: submitter, tracker: tracker}
}

// gatedStore holds the first Set of key until release is closed, so a dwell
// tick can be parked between its ownership check and its writes.
type gatedStore struct {
	*kv.MemoryStore
	key     string
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedStore(key string) *gatedStore {
	return &gatedStore{
		MemoryStore: kv.NewMemoryStore(),
		key:         key,
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (g *gatedStore) Set(ctx context.Context, key, value string) error {
	if key == g.key {
		g.once.Do(func() {
			close(g.entered)
			<-g.release
		})
	}
	return g.MemoryStore.Set(ctx, key, value)
}
