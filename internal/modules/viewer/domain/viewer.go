package domain

import (
	"fmt"
	"path"
	"strings"
)

const (
	ModeAuto     = "auto"
	ModeDocument = "document"
	ModeVideo    = "video"
)

type Page struct {
	Number int
	Text   string
}

type Asset struct {
	URL      string
	FileName string
}

// IsPDF looks at the file name first and falls back to the URL path.
func (a Asset) IsPDF() bool {
	for _, name := range []string{a.FileName, a.URL} {
		if i := strings.IndexAny(name, "?#"); i >= 0 {
			name = name[:i]
		}
		if strings.EqualFold(path.Ext(name), ".pdf") {
			return true
		}
	}
	return false
}

// Target is a material as the viewer sees it.
type Target struct {
	MaterialID  string
	Title       string
	Description string
	Document    *Asset
	Video       *Asset
}

// ResolveMode picks document or video. Auto prefers the document.
func ResolveMode(mode string, t Target) (string, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeAuto
	}
	switch mode {
	case ModeAuto:
		if t.Document != nil {
			return ModeDocument, nil
		}
		if t.Video != nil {
			return ModeVideo, nil
		}
		return "", fmt.Errorf("material %s has no document or video", t.MaterialID)
	case ModeDocument:
		if t.Document == nil {
			return "", fmt.Errorf("material %s has no document", t.MaterialID)
		}
	case ModeVideo:
		if t.Video == nil {
			return "", fmt.Errorf("material %s has no video", t.MaterialID)
		}
	default:
		return "", fmt.Errorf("invalid mode %q", mode)
	}
	return mode, nil
}
