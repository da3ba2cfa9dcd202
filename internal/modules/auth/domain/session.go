package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin           = "admin"
	RoleAsesor          = "asesor"
	RoleAsesorJR        = "asesorJR"
	RoleGerenteSucursal = "gerente_sucursal"
	RoleGerenteZona     = "gerente_zona"
)

// LearnerRoles are the roles training materials and FAQs can target.
var LearnerRoles = []string{RoleAsesor, RoleAsesorJR, RoleGerenteSucursal, RoleGerenteZona}

func ValidRole(role string) bool {
	if role == RoleAdmin {
		return true
	}
	for _, r := range LearnerRoles {
		if r == role {
			return true
		}
	}
	return false
}

type Session struct {
	Token     string
	UserID    string
	Role      string
	ExpiresAt time.Time
}

func (s Session) LoggedIn() bool {
	return strings.TrimSpace(s.Token) != ""
}

// Expired reports whether the token carries an expiry that has passed.
// Tokens without an expiry never expire locally; the backend decides.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

type Profile struct {
	ID    string
	Name  string
	Email string
	Role  string
}
