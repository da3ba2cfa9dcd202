package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	SchemaVersion = 1
	RoleAdmin     = "admin"
	dwellPrefix   = "dwell:"
)

type Kind string

const (
	KindDocument Kind = "document"
	KindVideo    Kind = "video"
)

func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindDocument:
		return KindDocument, nil
	case KindVideo:
		return KindVideo, nil
	}
	return "", fmt.Errorf("invalid progress kind %q", raw)
}

// Identity is the acting user as far as progress tracking cares.
type Identity struct {
	UserID string
	Role   string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Clamp bounds a percentage to [0,100]; NaN maps to 0.
func Clamp(pct float64) float64 {
	switch {
	case math.IsNaN(pct) || pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}

// DocumentPercent maps dwell time onto [0,100] against total.
func DocumentPercent(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return Clamp(float64(elapsed) * 100 / float64(total))
}

// VideoPercent maps a playback position onto [0,100].
func VideoPercent(current, duration float64) float64 {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0
	}
	return Clamp(current / duration * 100)
}

// SeekPosition is where playback resumes for a prior percentage.
func SeekPosition(prior, duration float64) float64 {
	prior = Clamp(prior)
	if prior <= 0 || duration <= 0 {
		return 0
	}
	return prior / 100 * duration
}

func DwellKey(materialID string) string {
	return dwellPrefix + materialID
}

// Record is the cached copy of the backend progress for one material.
type Record struct {
	TrainingID       string
	Title            string
	DocumentProgress float64
	VideoProgress    float64
	Progress         float64
	Status           string
}

func (r Record) ProgressOf(kind Kind) float64 {
	if kind == KindVideo {
		return r.VideoProgress
	}
	return r.DocumentProgress
}

type TrainingProgress struct {
	Title    string
	Progress float64
	Status   string
}

type UserProgress struct {
	UserID    string
	Name      string
	Role      string
	Trainings []TrainingProgress
}

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level   NoticeLevel
	Message string
}

type Report struct {
	UserID       string
	GeneratedAt  time.Time
	AllCompleted bool
	Records      []Record
}
