package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"capacita/internal/modules/viewer/domain"
	viewerout "capacita/internal/modules/viewer/port/out"
	apperrors "capacita/internal/platform/errors"
)

type Opened struct {
	Target   domain.Target
	Mode     string
	Page     domain.Page
	Total    int
	Content  string
	External string
	Launched bool
	Document viewerout.DocumentTracking
	Video    viewerout.VideoTracking
	Duration float64
}

type ViewerService struct {
	resolver  viewerout.MaterialResolver
	fetcher   viewerout.AssetFetcher
	pdfReader viewerout.PDFReader
	probe     viewerout.DurationProbe
	launcher  viewerout.ExternalLauncher
	tracker   viewerout.ProgressTracker
	logger    *zap.Logger
}

func NewViewerService(
	resolver viewerout.MaterialResolver,
	fetcher viewerout.AssetFetcher,
	pdfReader viewerout.PDFReader,
	probe viewerout.DurationProbe,
	launcher viewerout.ExternalLauncher,
	tracker viewerout.ProgressTracker,
	logger *zap.Logger,
) *ViewerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViewerService{
		resolver:  resolver,
		fetcher:   fetcher,
		pdfReader: pdfReader,
		probe:     probe,
		launcher:  launcher,
		tracker:   tracker,
		logger:    logger,
	}
}

// OpenMaterial renders what it can of the material, then hands it to
// progress tracking. Opening a material closes whatever was open before,
// including when the new one fails to render.
func (s *ViewerService) OpenMaterial(ctx context.Context, materialID, mode string, page int, duration float64, launchExternal bool) (Opened, error) {
	if strings.TrimSpace(materialID) == "" {
		return Opened{}, fmt.Errorf("%w: material id is required", apperrors.ErrInvalidInput)
	}
	target, err := s.resolver.Resolve(ctx, materialID)
	if err != nil {
		return Opened{}, err
	}
	resolved, err := domain.ResolveMode(mode, target)
	if err != nil {
		return Opened{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}

	opened := Opened{Target: target, Mode: resolved}
	switch resolved {
	case domain.ModeDocument:
		if err := s.renderDocument(ctx, target, page, launchExternal, &opened); err != nil {
			s.release(ctx, materialID)
			return Opened{}, err
		}
		opened.Document, err = s.tracker.OpenDocument(ctx, materialID)
		if err != nil {
			return Opened{}, fmt.Errorf("start document tracking: %w", err)
		}
	case domain.ModeVideo:
		if duration <= 0 {
			duration = s.probeDuration(ctx, target.Video.URL)
		}
		opened.Duration = duration
		opened.External = target.Video.URL
		opened.Content = fmt.Sprintf("video %s (%s)", target.Title, target.Video.FileName)
		if launchExternal {
			if err := s.launch(ctx, target.Video.URL); err != nil {
				s.release(ctx, materialID)
				return Opened{}, err
			}
			opened.Launched = true
		}
		opened.Video, err = s.tracker.OpenVideo(ctx, materialID, duration)
		if err != nil {
			return Opened{}, fmt.Errorf("start video tracking: %w", err)
		}
	}
	s.logger.Debug("material opened",
		zap.String("material", materialID),
		zap.String("mode", resolved),
		zap.Bool("launched", opened.Launched),
	)
	return opened, nil
}

// ReadPage turns the page of an already downloaded PDF without touching
// tracking.
func (s *ViewerService) ReadPage(ctx context.Context, materialID string, page int) (domain.Page, int, error) {
	target, err := s.resolver.Resolve(ctx, materialID)
	if err != nil {
		return domain.Page{}, 0, err
	}
	if target.Document == nil || !target.Document.IsPDF() {
		return domain.Page{}, 0, fmt.Errorf("%w: material %s has no pdf document", apperrors.ErrInvalidInput, materialID)
	}
	return s.readPDF(ctx, *target.Document, page)
}

func (s *ViewerService) Playback(ctx context.Context, materialID string, current, duration float64) (viewerout.Delivery, error) {
	return s.tracker.Position(ctx, materialID, current, duration)
}

func (s *ViewerService) Ended(ctx context.Context, materialID string) (viewerout.Delivery, error) {
	return s.tracker.Ended(ctx, materialID)
}

func (s *ViewerService) Close(ctx context.Context) error {
	return s.tracker.Close(ctx)
}

// release stops the previous viewer when the new material could not be shown.
func (s *ViewerService) release(ctx context.Context, materialID string) {
	if err := s.tracker.Close(ctx); err != nil {
		s.logger.Warn("close previous viewer", zap.String("material", materialID), zap.Error(err))
	}
}

func (s *ViewerService) renderDocument(ctx context.Context, target domain.Target, page int, launchExternal bool, opened *Opened) error {
	doc := *target.Document
	opened.External = doc.URL
	if doc.IsPDF() && !launchExternal {
		p, total, err := s.readPDF(ctx, doc, page)
		if err != nil {
			return err
		}
		opened.Page, opened.Total, opened.Content = p, total, p.Text
		return nil
	}
	opened.Content = fmt.Sprintf("document %s (%s)", target.Title, doc.FileName)
	if launchExternal {
		if err := s.launch(ctx, doc.URL); err != nil {
			return err
		}
		opened.Launched = true
	}
	return nil
}

func (s *ViewerService) readPDF(ctx context.Context, doc domain.Asset, page int) (domain.Page, int, error) {
	if page <= 0 {
		page = 1
	}
	local, err := s.fetcher.Fetch(ctx, doc.URL)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("download document: %w", err)
	}
	return s.pdfReader.ReadPage(ctx, local, page)
}

func (s *ViewerService) launch(ctx context.Context, target string) error {
	if s.launcher == nil {
		return fmt.Errorf("external launcher is not configured")
	}
	return s.launcher.Open(ctx, target)
}

// probeDuration returns 0 when the probe is unavailable; tracking then
// reports 0% until the caller supplies a duration.
func (s *ViewerService) probeDuration(ctx context.Context, url string) float64 {
	if s.probe == nil {
		return 0
	}
	d, err := s.probe.Duration(ctx, url)
	if err != nil {
		s.logger.Warn("probe video duration", zap.String("url", url), zap.Error(err))
		return 0
	}
	return d
}
