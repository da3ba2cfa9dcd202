package out

import (
	"context"
	"errors"
	"testing"
)

func TestFFProbeDuration(t *testing.T) {
	t.Parallel()
	p := &FFProbe{probe: func(string) (string, error) {
		return `{"streams":[{"codec_type":"video"}],"format":{"duration":"183.456000","format_name":"mov,mp4"}}`, nil
	}}
	d, err := p.Duration(context.Background(), "https://cdn.example/v.mp4")
	if err != nil || d != 183.456 {
		t.Fatalf("duration: %v %v", d, err)
	}
}

func TestFFProbeFailures(t *testing.T) {
	t.Parallel()
	missing := &FFProbe{probe: func(string) (string, error) { return `{"format":{}}`, nil }}
	if _, err := missing.Duration(context.Background(), "x"); err == nil {
		t.Fatalf("missing duration should fail")
	}
	broken := &FFProbe{probe: func(string) (string, error) { return "", errors.New("ffprobe not found") }}
	if _, err := broken.Duration(context.Background(), "x"); err == nil {
		t.Fatalf("probe error should propagate")
	}
}
