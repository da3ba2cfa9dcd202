package out_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	progressadapter "capacita/internal/modules/progress/adapter/out"
	"capacita/internal/modules/progress/domain"
	"capacita/internal/platform/markdown"
)

func TestMarkdownReportStoreRefreshKeepsNotes(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	store := progressadapter.NewMarkdownReportStore(home)
	report := domain.Report{
		UserID:      "u-1",
		GeneratedAt: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
		Records:     []domain.Record{{TrainingID: "m-1", Title: "Ventas", DocumentProgress: 100, VideoProgress: 50, Progress: 75}},
	}
	ctx := context.Background()

	path, err := store.Save(ctx, report, "Ana Lopez")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(path, "reports/2026-03-04-ana-lopez.md") {
		t.Fatalf("unexpected path %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	withNotes := string(raw) + "\nMy own notes.\n"
	if err := os.WriteFile(path, []byte(withNotes), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	report.AllCompleted = true
	report.Records[0].VideoProgress = 100
	report.Records[0].Progress = 100
	if _, err := store.Save(ctx, report, "Ana Lopez"); err != nil {
		t.Fatalf("second save: %v", err)
	}
	raw, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	meta, body, err := markdown.SplitFrontmatter(string(raw))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["all_completed"] != true || meta["schema_version"] != domain.SchemaVersion {
		t.Fatalf("unexpected frontmatter: %+v", meta)
	}
	if !strings.Contains(body, "My own notes.") {
		t.Fatalf("notes lost: %s", body)
	}
	if strings.Count(body, "capacita:progress:start") != 1 || !strings.Contains(body, "| Ventas | 100% | 100% | 100% |") {
		t.Fatalf("managed table not refreshed: %s", body)
	}
}
