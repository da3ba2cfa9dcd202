package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/schedule"
)

type TrackerConfig struct {
	DwellPeriod time.Duration
	DwellTotal  time.Duration
}

func (c TrackerConfig) withDefaults() TrackerConfig {
	if c.DwellPeriod <= 0 {
		c.DwellPeriod = 10 * time.Second
	}
	if c.DwellTotal <= 0 {
		c.DwellTotal = 300 * time.Second
	}
	return c
}

type Snapshot struct {
	MaterialID string
	Kind       domain.Kind
	Tracking   bool
	Completed  bool
	Elapsed    time.Duration
	Percent    float64
}

type DocumentOpened struct {
	Tracking bool
	Elapsed  time.Duration
	Percent  float64
}

type VideoOpened struct {
	Tracking     bool
	PriorPercent float64
	SeekTo       float64
}

// Tracker owns the single open viewer. Every open bumps generation; a
// scheduled tick only acts while its generation and material still own the
// viewer, so a tick from a superseded timer is a no-op.
type Tracker struct {
	cfg       TrackerConfig
	submitter *Submitter
	api       progressout.ProgressAPI
	store     progressout.KeyValueStore
	scheduler schedule.Scheduler
	logger    *zap.Logger

	mu         sync.Mutex
	generation uint64
	owner      string
	kind       domain.Kind
	handle     schedule.Handle
	elapsed    time.Duration
	finished   string
}

func NewTracker(cfg TrackerConfig, submitter *Submitter, api progressout.ProgressAPI, store progressout.KeyValueStore, scheduler schedule.Scheduler, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		cfg:       cfg.withDefaults(),
		submitter: submitter,
		api:       api,
		store:     store,
		scheduler: scheduler,
		logger:    logger,
	}
}

func (t *Tracker) OpenDocument(ctx context.Context, materialID string) (DocumentOpened, error) {
	if strings.TrimSpace(materialID) == "" {
		return DocumentOpened{}, apperrors.ErrInvalidInput
	}
	ident, err := t.submitter.Identity(ctx)
	if err != nil {
		return DocumentOpened{}, err
	}
	gen := t.claim(materialID, domain.KindDocument, ident)
	if ident.IsAdmin() {
		return DocumentOpened{}, nil
	}

	elapsed := t.loadElapsed(ctx, materialID)
	t.submitter.Prime(ctx, ident)
	t.start(ctx, materialID, domain.KindDocument)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return DocumentOpened{}, nil
	}
	t.elapsed = elapsed
	t.handle = t.scheduler.Every(t.cfg.DwellPeriod, func() { t.tick(gen, materialID) })
	t.logger.Debug("dwell timer started",
		zap.String("material", materialID),
		zap.Duration("elapsed", elapsed),
		zap.Uint64("generation", gen),
	)
	return DocumentOpened{
		Tracking: true,
		Elapsed:  elapsed,
		Percent:  domain.DocumentPercent(elapsed, t.cfg.DwellTotal),
	}, nil
}

func (t *Tracker) OpenVideo(ctx context.Context, materialID string, duration float64) (VideoOpened, error) {
	if strings.TrimSpace(materialID) == "" {
		return VideoOpened{}, apperrors.ErrInvalidInput
	}
	ident, err := t.submitter.Identity(ctx)
	if err != nil {
		return VideoOpened{}, err
	}
	gen := t.claim(materialID, domain.KindVideo, ident)
	if ident.IsAdmin() {
		return VideoOpened{}, nil
	}
	t.submitter.Prime(ctx, ident)
	t.start(ctx, materialID, domain.KindVideo)

	t.mu.Lock()
	current := gen == t.generation
	t.mu.Unlock()
	if !current {
		return VideoOpened{}, nil
	}
	prior := t.submitter.Prior(materialID, domain.KindVideo)
	return VideoOpened{
		Tracking:     true,
		PriorPercent: prior,
		SeekTo:       domain.SeekPosition(prior, duration),
	}, nil
}

// TimeUpdate reports a playback position for the open video. Positions for
// any other material are ignored.
func (t *Tracker) TimeUpdate(ctx context.Context, materialID string, current, duration float64) (Outcome, bool, error) {
	if !t.owns(materialID, domain.KindVideo) {
		return Outcome{}, false, nil
	}
	out, err := t.submitter.Submit(ctx, materialID, domain.KindVideo, domain.VideoPercent(current, duration))
	return out, true, err
}

func (t *Tracker) Ended(ctx context.Context, materialID string) (Outcome, bool, error) {
	if !t.owns(materialID, domain.KindVideo) {
		return Outcome{}, false, nil
	}
	out, err := t.submitter.Submit(ctx, materialID, domain.KindVideo, 100)
	return out, true, err
}

// Close stops the current viewer. A document's persisted elapsed time is kept.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releaseLocked()
	t.generation++
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.owner == "" {
		if t.finished != "" {
			return Snapshot{MaterialID: t.finished, Kind: domain.KindDocument, Completed: true, Elapsed: t.cfg.DwellTotal, Percent: 100}
		}
		return Snapshot{}
	}
	snap := Snapshot{MaterialID: t.owner, Kind: t.kind, Tracking: t.kind == domain.KindVideo || t.handle != nil}
	if t.kind == domain.KindDocument {
		snap.Elapsed = t.elapsed
		snap.Percent = domain.DocumentPercent(t.elapsed, t.cfg.DwellTotal)
	} else {
		snap.Percent = t.submitter.Prior(t.owner, domain.KindVideo)
	}
	return snap
}

func (t *Tracker) tick(gen uint64, materialID string) {
	t.mu.Lock()
	if gen != t.generation || t.owner != materialID || t.kind != domain.KindDocument {
		t.mu.Unlock()
		t.logger.Debug("stale dwell tick ignored", zap.String("material", materialID), zap.Uint64("generation", gen))
		return
	}
	t.elapsed += t.cfg.DwellPeriod
	elapsed := t.elapsed
	pct := domain.DocumentPercent(elapsed, t.cfg.DwellTotal)
	done := pct >= 100
	if done {
		t.releaseLocked()
		t.finished = materialID
	}
	t.mu.Unlock()

	// The viewer can change hands while this tick is between the ownership
	// check and its writes; a superseded tick drops its remaining effects.
	ctx := context.Background()
	key := domain.DwellKey(materialID)
	if !t.current(gen) {
		t.logger.Debug("dwell tick superseded before persist", zap.String("material", materialID), zap.Uint64("generation", gen))
		return
	}
	if done {
		if err := t.store.Remove(ctx, key); err != nil {
			t.logger.Warn("clear dwell entry", zap.String("material", materialID), zap.Error(err))
		}
	} else if err := t.store.Set(ctx, key, formatSeconds(elapsed)); err != nil {
		t.logger.Warn("persist dwell entry", zap.String("material", materialID), zap.Error(err))
	}
	if !t.current(gen) {
		t.logger.Debug("dwell tick superseded before submit", zap.String("material", materialID), zap.Uint64("generation", gen))
		return
	}
	if _, err := t.submitter.Submit(ctx, materialID, domain.KindDocument, pct); err != nil {
		t.logger.Debug("dwell submit failed", zap.String("material", materialID), zap.Error(err))
	}
}

// current reports whether gen still owns the viewer. A completed document
// releases its owner without bumping generation, so its final tick stays
// current until the next open or close.
func (t *Tracker) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return gen == t.generation
}

// claim cancels whatever viewer is open and makes materialID the owner.
func (t *Tracker) claim(materialID string, kind domain.Kind, ident domain.Identity) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.releaseLocked()
	t.generation++
	t.finished = ""
	if !ident.IsAdmin() {
		t.owner = materialID
		t.kind = kind
	}
	return t.generation
}

func (t *Tracker) releaseLocked() {
	if t.handle != nil {
		t.handle.Cancel()
		t.handle = nil
	}
	t.owner = ""
	t.kind = ""
	t.elapsed = 0
}

func (t *Tracker) owns(materialID string, kind domain.Kind) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.owner == materialID && t.kind == kind
}

func (t *Tracker) start(ctx context.Context, materialID string, kind domain.Kind) {
	err := t.api.Start(ctx, materialID, kind)
	if err == nil {
		return
	}
	if errors.Is(err, apperrors.ErrInvalidInput) {
		t.logger.Debug("progress already started", zap.String("material", materialID))
		return
	}
	t.logger.Warn("start progress", zap.String("material", materialID), zap.Error(err))
	t.submitter.Surface(err)
}

func (t *Tracker) loadElapsed(ctx context.Context, materialID string) time.Duration {
	raw, ok, err := t.store.Get(ctx, domain.DwellKey(materialID))
	if err != nil {
		t.logger.Warn("read dwell entry", zap.String("material", materialID), zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
