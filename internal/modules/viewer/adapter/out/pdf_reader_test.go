package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalPDFReaderRejectsNonPDF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("plain text, not a pdf"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := NewLocalPDFReader().ReadPage(context.Background(), path, 1); err == nil {
		t.Fatalf("expected an error for a non-pdf file")
	}
	if _, _, err := NewLocalPDFReader().ReadPage(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), 1); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

// Not parallel: it counts the process's open descriptors.
func TestLocalPDFReaderReleasesFile(t *testing.T) {
	if _, err := os.ReadDir("/proc/self/fd"); err != nil {
		t.Skipf("descriptor listing unavailable: %v", err)
	}
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\nbroken"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	reader := NewLocalPDFReader()
	before := openFiles(t)
	for i := 0; i < 50; i++ {
		_, _, _ = reader.ReadPage(context.Background(), path, 1)
	}
	if after := openFiles(t); after-before > 5 {
		t.Fatalf("pdf reads leaked descriptors: %d before, %d after", before, after)
	}
}

func openFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Fatalf("list descriptors: %v", err)
	}
	return len(entries)
}
