package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	apperrors "capacita/internal/platform/errors"
)

const (
	SkipAdmin           = "admin"
	SkipDuplicate       = "not above last submitted value"
	SkipAlreadyRecorded = "already recorded"

	MessageSessionExpired = "Your session has expired. Please log in again."
	MessageAllCompleted   = "All trainings completed. The evaluation is now available."
)

type submitKey struct {
	materialID string
	kind       domain.Kind
}

type Outcome struct {
	Percent       float64
	Sent          bool
	SkipReason    string
	TotalProgress float64
	AllCompleted  bool
}

// Submitter sends progress upstream, dropping anything not above the last
// value sent for the same material and kind.
type Submitter struct {
	api      progressout.ProgressAPI
	identity progressout.IdentityProvider
	notifier progressout.Notifier
	logger   *zap.Logger

	mu           sync.Mutex
	last         map[submitKey]float64
	records      map[string]domain.Record
	primed       bool
	allCompleted bool
}

func NewSubmitter(api progressout.ProgressAPI, identity progressout.IdentityProvider, notifier progressout.Notifier, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		api:      api,
		identity: identity,
		notifier: notifier,
		logger:   logger,
		last:     map[submitKey]float64{},
		records:  map[string]domain.Record{},
	}
}

func (s *Submitter) Identity(ctx context.Context) (domain.Identity, error) {
	return s.identity.Identity(ctx)
}

// Prime loads the cached records and the gate baseline once per process.
func (s *Submitter) Prime(ctx context.Context, ident domain.Identity) {
	s.mu.Lock()
	primed := s.primed
	s.mu.Unlock()
	if primed || ident.IsAdmin() {
		return
	}
	records, err := s.api.View(ctx, ident.UserID)
	if err != nil {
		s.logger.Debug("prime progress records", zap.Error(err))
		return
	}
	completed, err := s.api.Completed(ctx, ident.UserID)
	if err != nil {
		s.logger.Debug("prime completion gate", zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.primed {
		return
	}
	s.storeRecordsLocked(records)
	s.allCompleted = completed
	s.primed = true
}

func (s *Submitter) Submit(ctx context.Context, materialID string, kind domain.Kind, pct float64) (Outcome, error) {
	ident, err := s.identity.Identity(ctx)
	if err != nil {
		return Outcome{}, err
	}
	if ident.IsAdmin() {
		return Outcome{SkipReason: SkipAdmin}, nil
	}
	pct = domain.Clamp(pct)
	s.Prime(ctx, ident)

	k := submitKey{materialID: materialID, kind: kind}
	s.mu.Lock()
	prev, seen := s.last[k]
	if seen && pct <= prev {
		s.mu.Unlock()
		s.logger.Debug("progress skipped",
			zap.String("material", materialID),
			zap.String("kind", string(kind)),
			zap.Float64("percent", pct),
			zap.Float64("last", prev),
		)
		return Outcome{Percent: pct, SkipReason: SkipDuplicate}, nil
	}
	s.last[k] = pct
	s.mu.Unlock()

	res, err := s.api.Submit(ctx, materialID, kind, pct)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			s.logger.Debug("progress rejected as already recorded", zap.String("material", materialID), zap.Error(err))
			return Outcome{Percent: pct, SkipReason: SkipAlreadyRecorded}, nil
		}
		s.mu.Lock()
		if s.last[k] == pct {
			if seen {
				s.last[k] = prev
			} else {
				delete(s.last, k)
			}
		}
		s.mu.Unlock()
		s.Surface(err)
		return Outcome{Percent: pct}, err
	}
	s.logger.Debug("progress sent",
		zap.String("material", materialID),
		zap.String("kind", string(kind)),
		zap.Float64("percent", pct),
		zap.Float64("total", res.TotalProgress),
	)

	s.mu.Lock()
	rec := s.records[materialID]
	rec.TrainingID = materialID
	rec.Progress = res.TotalProgress
	if kind == domain.KindVideo {
		rec.VideoProgress = pct
	} else {
		rec.DocumentProgress = pct
	}
	s.records[materialID] = rec
	s.mu.Unlock()

	out := Outcome{Percent: pct, Sent: true, TotalProgress: res.TotalProgress}
	completed, err := s.api.Completed(ctx, ident.UserID)
	if err != nil {
		s.logger.Warn("completion check failed", zap.Error(err))
		out.AllCompleted = s.AllCompleted()
		return out, nil
	}
	s.mu.Lock()
	transitioned := completed && !s.allCompleted
	s.allCompleted = completed
	s.mu.Unlock()
	out.AllCompleted = completed
	if transitioned {
		s.logger.Info("all trainings completed", zap.String("user", ident.UserID))
		s.notify(domain.NoticeSuccess, MessageAllCompleted)
	}
	return out, nil
}

// Surface turns a failed call into a transient notice. 400s are benign.
func (s *Submitter) Surface(err error) {
	switch {
	case err == nil, errors.Is(err, apperrors.ErrInvalidInput):
		return
	case errors.Is(err, apperrors.ErrUnauthorized):
		s.notify(domain.NoticeWarning, MessageSessionExpired)
	default:
		s.notify(domain.NoticeError, "Could not save progress: "+err.Error())
	}
}

// Prior returns the cached progress for a material and kind.
func (s *Submitter) Prior(materialID string, kind domain.Kind) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[materialID].ProgressOf(kind)
}

func (s *Submitter) AllCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allCompleted
}

// Refresh re-reads the records and completion gate from the backend.
func (s *Submitter) Refresh(ctx context.Context, ident domain.Identity) ([]domain.Record, bool, error) {
	records, err := s.api.View(ctx, ident.UserID)
	if err != nil {
		return nil, false, err
	}
	completed, err := s.api.Completed(ctx, ident.UserID)
	if err != nil {
		return nil, false, err
	}
	s.mu.Lock()
	s.storeRecordsLocked(records)
	s.allCompleted = completed
	s.primed = true
	s.mu.Unlock()
	return records, completed, nil
}

func (s *Submitter) storeRecordsLocked(records []domain.Record) {
	for _, rec := range records {
		s.records[rec.TrainingID] = rec
		s.raiseLastLocked(submitKey{rec.TrainingID, domain.KindDocument}, rec.DocumentProgress)
		s.raiseLastLocked(submitKey{rec.TrainingID, domain.KindVideo}, rec.VideoProgress)
	}
}

func (s *Submitter) raiseLastLocked(k submitKey, pct float64) {
	if pct <= 0 {
		return
	}
	if prev, ok := s.last[k]; !ok || pct > prev {
		s.last[k] = pct
	}
}

func (s *Submitter) notify(level domain.NoticeLevel, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(domain.Notice{Level: level, Message: message})
}
