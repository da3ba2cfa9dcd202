package out

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	authout "capacita/internal/modules/auth/port/out"
)

type JWTInspector struct {
	parser *jwt.Parser
}

func NewJWTInspector() authout.TokenInspector {
	return &JWTInspector{parser: jwt.NewParser()}
}

// ExpiresAt returns the exp claim, or the zero time when absent.
func (i *JWTInspector) ExpiresAt(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token claims: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time.UTC(), nil
}
