package domain

import "testing"

func TestResolveMode(t *testing.T) {
	t.Parallel()
	both := Target{MaterialID: "m-1", Document: &Asset{URL: "a.pdf"}, Video: &Asset{URL: "a.mp4"}}
	videoOnly := Target{MaterialID: "m-2", Video: &Asset{URL: "b.mp4"}}

	cases := []struct {
		mode   string
		target Target
		want   string
		fails  bool
	}{
		{"", both, ModeDocument, false},
		{"AUTO", videoOnly, ModeVideo, false},
		{"video", both, ModeVideo, false},
		{"document", videoOnly, "", true},
		{"auto", Target{MaterialID: "m-3"}, "", true},
		{"audio", both, "", true},
	}
	for _, tc := range cases {
		got, err := ResolveMode(tc.mode, tc.target)
		if tc.fails {
			if err == nil {
				t.Fatalf("ResolveMode(%q) should fail", tc.mode)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ResolveMode(%q) = %q, %v; want %q", tc.mode, got, err, tc.want)
		}
	}
}

func TestAssetIsPDF(t *testing.T) {
	t.Parallel()
	if !(Asset{URL: "https://cdn.example/raw/upload/abc", FileName: "Manual.PDF"}).IsPDF() {
		t.Fatalf("file name extension should count")
	}
	if !(Asset{URL: "https://cdn.example/manual.pdf?sig=1"}).IsPDF() {
		t.Fatalf("url extension should count")
	}
	if (Asset{URL: "https://cdn.example/deck.pptx", FileName: "deck"}).IsPDF() {
		t.Fatalf("pptx is not a pdf")
	}
}
