package domain

import (
	"testing"
	"time"
)

func TestSessionExpiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if (Session{Token: "t"}).Expired(now) {
		t.Fatalf("token without exp should not expire locally")
	}
	if !(Session{Token: "t", ExpiresAt: now}).Expired(now) {
		t.Fatalf("token expiring now should be expired")
	}
	if (Session{Token: "t", ExpiresAt: now.Add(time.Minute)}).Expired(now) {
		t.Fatalf("future exp should be valid")
	}
	if (Session{}).LoggedIn() {
		t.Fatalf("empty session is not logged in")
	}
}

func TestValidRole(t *testing.T) {
	t.Parallel()
	for _, r := range []string{"admin", "asesor", "asesorJR", "gerente_sucursal", "gerente_zona"} {
		if !ValidRole(r) {
			t.Fatalf("%s should be valid", r)
		}
	}
	if ValidRole("Asesor") || ValidRole("") {
		t.Fatalf("roles are case sensitive and required")
	}
}
