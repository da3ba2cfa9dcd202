package out

import (
	"context"
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"

	"capacita/internal/modules/viewer/domain"
	viewerout "capacita/internal/modules/viewer/port/out"
)

type LocalPDFReader struct{}

func NewLocalPDFReader() viewerout.PDFReader {
	return &LocalPDFReader{}
}

// ReadPage extracts the text runs of one page, clamping page into range.
func (r *LocalPDFReader) ReadPage(_ context.Context, path string, page int) (domain.Page, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("stat pdf: %w", err)
	}
	doc, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("read pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.Page{Number: 1}, 0, nil
	}
	switch {
	case page < 1:
		page = 1
	case page > total:
		page = total
	}
	p := doc.Page(page)
	if p.V.IsNull() {
		return domain.Page{}, total, fmt.Errorf("pdf page %d is null", page)
	}
	var sb strings.Builder
	for _, text := range p.Content().Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text.S)
	}
	return domain.Page{Number: page, Text: sb.String()}, total, nil
}
