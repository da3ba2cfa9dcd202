package usecase

import (
	"context"
	"fmt"

	"capacita/internal/modules/progress/domain"
	"capacita/internal/modules/progress/dto"
	progressin "capacita/internal/modules/progress/port/in"
	progressout "capacita/internal/modules/progress/port/out"
	"capacita/internal/modules/progress/service"
	apperrors "capacita/internal/platform/errors"
)

type Interactor struct {
	tracker   *service.Tracker
	submitter *service.Submitter
	reports   *service.ReportService
	api       progressout.ProgressAPI
}

func NewInteractor(tracker *service.Tracker, submitter *service.Submitter, reports *service.ReportService, api progressout.ProgressAPI) progressin.Usecase {
	return &Interactor{tracker: tracker, submitter: submitter, reports: reports, api: api}
}

func (i *Interactor) OpenDocument(ctx context.Context, input dto.OpenDocumentInput) (dto.DocumentSession, error) {
	opened, err := i.tracker.OpenDocument(ctx, input.MaterialID)
	if err != nil {
		return dto.DocumentSession{}, err
	}
	return dto.DocumentSession{
		MaterialID: input.MaterialID,
		Tracking:   opened.Tracking,
		Elapsed:    opened.Elapsed,
		Percent:    opened.Percent,
	}, nil
}

func (i *Interactor) OpenVideo(ctx context.Context, input dto.OpenVideoInput) (dto.VideoSession, error) {
	opened, err := i.tracker.OpenVideo(ctx, input.MaterialID, input.Duration)
	if err != nil {
		return dto.VideoSession{}, err
	}
	return dto.VideoSession{
		MaterialID:   input.MaterialID,
		Tracking:     opened.Tracking,
		PriorPercent: opened.PriorPercent,
		SeekTo:       opened.SeekTo,
	}, nil
}

func (i *Interactor) VideoTimeUpdate(ctx context.Context, input dto.TimeUpdateInput) (dto.SubmitOutput, error) {
	out, owned, err := i.tracker.TimeUpdate(ctx, input.MaterialID, input.CurrentTime, input.Duration)
	return toSubmitOutput(input.MaterialID, domain.KindVideo, out, owned), err
}

func (i *Interactor) VideoEnded(ctx context.Context, materialID string) (dto.SubmitOutput, error) {
	out, owned, err := i.tracker.Ended(ctx, materialID)
	return toSubmitOutput(materialID, domain.KindVideo, out, owned), err
}

func (i *Interactor) CloseViewer(_ context.Context) error {
	i.tracker.Close()
	return nil
}

func (i *Interactor) Status(_ context.Context) dto.TrackerStatus {
	snap := i.tracker.Snapshot()
	return dto.TrackerStatus{
		MaterialID: snap.MaterialID,
		Kind:       string(snap.Kind),
		Tracking:   snap.Tracking,
		Completed:  snap.Completed,
		Elapsed:    snap.Elapsed,
		Percent:    snap.Percent,
	}
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	if input.MaterialID == "" {
		return dto.SubmitOutput{}, fmt.Errorf("%w: material id is required", apperrors.ErrInvalidInput)
	}
	kind, err := domain.ParseKind(input.Kind)
	if err != nil {
		return dto.SubmitOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	out, err := i.submitter.Submit(ctx, input.MaterialID, kind, input.Percent)
	return toSubmitOutput(input.MaterialID, kind, out, true), err
}

func (i *Interactor) View(ctx context.Context) ([]dto.RecordOutput, error) {
	ident, err := i.submitter.Identity(ctx)
	if err != nil {
		return nil, err
	}
	records, _, err := i.submitter.Refresh(ctx, ident)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordOutput(r))
	}
	return out, nil
}

func (i *Interactor) Completed(ctx context.Context) (bool, error) {
	ident, err := i.submitter.Identity(ctx)
	if err != nil {
		return false, err
	}
	return i.api.Completed(ctx, ident.UserID)
}

func (i *Interactor) AllProgress(ctx context.Context) ([]dto.UserProgressOutput, error) {
	ident, err := i.submitter.Identity(ctx)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() {
		return nil, fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	users, err := i.api.AllProgress(ctx)
	if err != nil {
		return nil, err
	}
	completedIDs, err := i.api.AllCompleted(ctx)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		done[id] = true
	}
	out := make([]dto.UserProgressOutput, 0, len(users))
	for _, u := range users {
		row := dto.UserProgressOutput{UserID: u.UserID, Name: u.Name, Role: u.Role, Completed: done[u.UserID]}
		for _, tr := range u.Trainings {
			row.Trainings = append(row.Trainings, dto.TrainingProgressOutput{Title: tr.Title, Progress: tr.Progress, Status: tr.Status})
		}
		out = append(out, row)
	}
	return out, nil
}

func (i *Interactor) WriteReport(ctx context.Context, userLabel string) (dto.ReportOutput, error) {
	report, path, err := i.reports.Write(ctx, userLabel)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{Path: path, AllCompleted: report.AllCompleted, Materials: len(report.Records)}, nil
}

func toSubmitOutput(materialID string, kind domain.Kind, out service.Outcome, owned bool) dto.SubmitOutput {
	res := dto.SubmitOutput{
		MaterialID:    materialID,
		Kind:          string(kind),
		Percent:       out.Percent,
		Sent:          out.Sent,
		SkipReason:    out.SkipReason,
		TotalProgress: out.TotalProgress,
		AllCompleted:  out.AllCompleted,
	}
	if !owned {
		res.SkipReason = "viewer is not open for this material"
	}
	return res
}

func toRecordOutput(r domain.Record) dto.RecordOutput {
	return dto.RecordOutput{
		TrainingID:       r.TrainingID,
		Title:            r.Title,
		DocumentProgress: r.DocumentProgress,
		VideoProgress:    r.VideoProgress,
		Progress:         r.Progress,
		Status:           r.Status,
	}
}
