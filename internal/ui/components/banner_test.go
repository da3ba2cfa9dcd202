package components

import (
	"testing"
	"time"
)

func TestBannerExpiresOnlyForLatestNotice(t *testing.T) {
	t.Parallel()
	b := NewBanner(time.Second)
	if cmd := b.Show("warning", "session expired"); cmd == nil {
		t.Fatalf("expected expiry command")
	}
	first := BannerExpiredMsg{seq: b.seq}
	b.Show("error", "could not save progress")

	b = b.Update(first)
	if !b.Visible() || b.message != "could not save progress" {
		t.Fatalf("stale expiry must not hide the newer notice")
	}
	b = b.Update(BannerExpiredMsg{seq: b.seq})
	if b.Visible() {
		t.Fatalf("expected banner hidden after its own expiry")
	}
}
