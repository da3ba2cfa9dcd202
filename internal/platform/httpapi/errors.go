package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apperrors "capacita/internal/platform/errors"
)

// APIError is a non-2xx backend response.
type APIError struct {
	Status      int
	Message     string
	RemainingMS int64
	Body        []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend %d", e.Status)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case apperrors.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case apperrors.ErrForbidden:
		return e.Status == http.StatusForbidden
	case apperrors.ErrNotFound:
		return e.Status == http.StatusNotFound
	case apperrors.ErrInvalidInput:
		return e.Status == http.StatusBadRequest
	}
	return false
}

// HasRemaining reports whether the backend attached a cooldown duration.
func (e *APIError) HasRemaining() bool {
	return e.RemainingMS > 0
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the backend message carried by err, falling back to err.Error().
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Body: raw}
	payload := map[string]any{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		return apiErr
	}
	for _, key := range []string{"message", "error", "msg"} {
		if s, ok := payload[key].(string); ok && s != "" {
			apiErr.Message = s
			break
		}
	}
	switch v := payload["remainingTime"].(type) {
	case float64:
		apiErr.RemainingMS = int64(v)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			apiErr.RemainingMS = n
		}
	}
	return apiErr
}
