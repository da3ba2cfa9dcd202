package out

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	viewerout "capacita/internal/modules/viewer/port/out"
)

// FFProbe reads a video's duration with ffprobe. Remote URLs are probed
// in place.
type FFProbe struct {
	probe func(target string) (string, error)
}

func NewFFProbe() viewerout.DurationProbe {
	return &FFProbe{probe: func(target string) (string, error) { return ffmpeg.Probe(target) }}
}

func (p *FFProbe) Duration(_ context.Context, target string) (float64, error) {
	raw, err := p.probe(target)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", target, err)
	}
	return parseProbeDuration(raw)
}

func parseProbeDuration(raw string) (float64, error) {
	var result struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(result.Format.Duration), 64)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}
	return d, nil
}
