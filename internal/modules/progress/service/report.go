package service

import (
	"context"
	"fmt"
	"sort"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	"capacita/internal/platform/clock"
)

type ReportService struct {
	clock     clock.Clock
	submitter *Submitter
	store     progressout.ReportStore
}

func NewReportService(clock clock.Clock, submitter *Submitter, store progressout.ReportStore) *ReportService {
	return &ReportService{clock: clock, submitter: submitter, store: store}
}

func (s *ReportService) Write(ctx context.Context, userLabel string) (domain.Report, string, error) {
	ident, err := s.submitter.Identity(ctx)
	if err != nil {
		return domain.Report{}, "", err
	}
	if ident.IsAdmin() {
		return domain.Report{}, "", fmt.Errorf("progress report is not available for admin accounts")
	}
	records, completed, err := s.submitter.Refresh(ctx, ident)
	if err != nil {
		return domain.Report{}, "", fmt.Errorf("load progress: %w", err)
	}
	sorted := append([]domain.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Title < sorted[j].Title })
	report := domain.Report{
		UserID:       ident.UserID,
		GeneratedAt:  s.clock.Now(),
		AllCompleted: completed,
		Records:      sorted,
	}
	if userLabel == "" {
		userLabel = ident.UserID
	}
	path, err := s.store.Save(ctx, report, userLabel)
	if err != nil {
		return domain.Report{}, "", err
	}
	return report, path, nil
}
