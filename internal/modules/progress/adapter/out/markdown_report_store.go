package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	"capacita/internal/platform/markdown"
	"capacita/internal/platform/slug"
)

const (
	tableStart = "<!-- capacita:progress:start -->"
	tableEnd   = "<!-- capacita:progress:end -->"
)

type MarkdownReportStore struct {
	dir string
}

func NewMarkdownReportStore(homeDir string) progressout.ReportStore {
	return &MarkdownReportStore{dir: filepath.Join(homeDir, "reports")}
}

// Save writes one note per user per day. Re-running on the same day
// refreshes the managed table and keeps anything written around it.
func (s *MarkdownReportStore) Save(_ context.Context, report domain.Report, userLabel string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", report.GeneratedAt.Format("2006-01-02"), slug.Make(userLabel))
	path := filepath.Join(s.dir, name)

	body := fmt.Sprintf("# Training progress: %s\n\n", userLabel)
	if existing, err := os.ReadFile(path); err == nil {
		if _, prevBody, err := markdown.SplitFrontmatter(string(existing)); err == nil {
			body = prevBody
		}
	}
	body = markdown.ReplaceManagedBlock(body, tableStart, tableEnd, renderTable(report.Records))

	materials := make([]map[string]any, 0, len(report.Records))
	for _, r := range report.Records {
		materials = append(materials, map[string]any{
			"id":       r.TrainingID,
			"title":    r.Title,
			"document": r.DocumentProgress,
			"video":    r.VideoProgress,
			"total":    r.Progress,
		})
	}
	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"user":           report.UserID,
		"generated_at":   report.GeneratedAt.Format(time.RFC3339),
		"all_completed":  report.AllCompleted,
		"materials":      materials,
	}
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

func renderTable(records []domain.Record) string {
	if len(records) == 0 {
		return "_No progress recorded yet._"
	}
	var sb strings.Builder
	sb.WriteString("| Material | Document | Video | Total | Status |\n")
	sb.WriteString("|---|---:|---:|---:|---|\n")
	for _, r := range records {
		title := r.Title
		if title == "" {
			title = r.TrainingID
		}
		fmt.Fprintf(&sb, "| %s | %.0f%% | %.0f%% | %.0f%% | %s |\n",
			strings.ReplaceAll(title, "|", "/"), r.DocumentProgress, r.VideoProgress, r.Progress, r.Status)
	}
	return strings.TrimRight(sb.String(), "\n")
}
