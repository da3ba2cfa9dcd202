package listing

import (
	"strings"
	"testing"
)

func TestPaginateClampsPage(t *testing.T) {
	t.Parallel()
	items := []int{1, 2, 3, 4, 5, 6, 7}

	w := Paginate(items, 2, PageSize)
	if w.Page != 2 || w.TotalPages != 2 || len(w.Items) != 2 || w.Items[0] != 6 {
		t.Fatalf("unexpected window: %+v", w)
	}
	if w := Paginate(items, 9, PageSize); w.Page != 2 || len(w.Items) != 2 {
		t.Fatalf("page past the end should clamp to last: %+v", w)
	}
	if w := Paginate(items, 0, PageSize); w.Page != 1 || len(w.Items) != 5 {
		t.Fatalf("page below one should clamp to first: %+v", w)
	}
	if w := Paginate([]int{}, 3, PageSize); w.Page != 1 || w.TotalPages != 0 || w.Items != nil {
		t.Fatalf("empty list window: %+v", w)
	}
}

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()
	if q, err := NormalizeQuery("  gerente \n zona "); err != nil || q != "gerente zona" {
		t.Fatalf("normalize: %q %v", q, err)
	}
	if _, err := NormalizeQuery("ab"); err == nil {
		t.Fatalf("expected short query error")
	}
	if q, _ := NormalizeQuery(strings.Repeat("x", 80)); len(q) != QueryMaxLength {
		t.Fatalf("expected truncation, got %d", len(q))
	}
}

func TestContainsAndTruncate(t *testing.T) {
	t.Parallel()
	if !Contains("ASESOR", "Ana", "asesorJR") {
		t.Fatalf("expected case-insensitive match")
	}
	if Contains("zona", "Ana", "asesor") {
		t.Fatalf("unexpected match")
	}
	if got := Truncate("asesor, asesorJR", 6); got != "asesor..." {
		t.Fatalf("truncate: %q", got)
	}
}
