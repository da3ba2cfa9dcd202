package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"capacita/internal/modules/evaluation/domain"
	evaluationout "capacita/internal/modules/evaluation/port/out"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/httpapi"
)

type HTTPEvaluationAPI struct {
	api httpapi.API
}

func NewHTTPEvaluationAPI(api httpapi.API) evaluationout.EvaluationAPI {
	return &HTTPEvaluationAPI{api: api}
}

type questionPayload struct {
	QuestionID string `json:"questionId"`
	ID         string `json:"_id"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Options    []struct {
		ID   string `json:"_id"`
		Text string `json:"text"`
	} `json:"options"`
}

type answerPayload struct {
	QuestionID     string `json:"questionId"`
	SelectedOption any    `json:"selectedOption"`
}

func (a *HTTPEvaluationAPI) Status(ctx context.Context) (string, bool, error) {
	res := struct {
		Status string `json:"status"`
	}{}
	if err := a.api.Get(ctx, "/evaluations/status", &res); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return res.Status, true, nil
}

func (a *HTTPEvaluationAPI) RetryTime(ctx context.Context) (time.Time, bool, error) {
	res := struct {
		RetryTimestamp json.RawMessage `json:"retryTimestamp"`
	}{}
	if err := a.api.Get(ctx, "/evaluations/retry-time", &res); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return parseTimestamp(res.RetryTimestamp)
}

// Retry maps cooldown and permanent refusals onto RetryResult. Only
// transport and session failures come back as errors.
func (a *HTTPEvaluationAPI) Retry(ctx context.Context) (evaluationout.RetryResult, error) {
	res := struct {
		Message string `json:"message"`
	}{}
	err := a.api.Post(ctx, "/evaluations/retry", struct{}{}, &res)
	if err == nil {
		return evaluationout.RetryResult{Granted: true, Message: res.Message}, nil
	}
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) || errors.Is(err, apperrors.ErrUnauthorized) || apiErr.Status >= 500 {
		return evaluationout.RetryResult{}, err
	}
	return evaluationout.RetryResult{
		Message:   httpapi.MessageOf(err),
		Remaining: time.Duration(apiErr.RemainingMS) * time.Millisecond,
	}, nil
}

func (a *HTTPEvaluationAPI) Assigned(ctx context.Context) ([]domain.Question, error) {
	res := struct {
		Questions []questionPayload `json:"questions"`
	}{}
	if err := a.api.Get(ctx, "/evaluations/assigned", &res); err != nil {
		return nil, err
	}
	out := make([]domain.Question, 0, len(res.Questions))
	for _, q := range res.Questions {
		id := q.QuestionID
		if id == "" {
			id = q.ID
		}
		question := domain.Question{ID: id, Text: q.Text, Type: q.Type}
		for _, opt := range q.Options {
			question.Options = append(question.Options, domain.Option{ID: opt.ID, Text: opt.Text})
		}
		out = append(out, question)
	}
	return out, nil
}

func (a *HTTPEvaluationAPI) Submit(ctx context.Context, userID string, answers []domain.Answer) (string, error) {
	body := struct {
		UserID  string          `json:"userId"`
		Answers []answerPayload `json:"answers"`
	}{UserID: userID}
	for _, ans := range answers {
		body.Answers = append(body.Answers, answerPayload{QuestionID: ans.QuestionID, SelectedOption: ans.SelectedOption})
	}
	res := struct {
		Status string `json:"status"`
	}{}
	if err := a.api.Post(ctx, "/evaluations/submit", body, &res); err != nil {
		return "", err
	}
	return res.Status, nil
}

// parseTimestamp accepts RFC 3339 strings and epoch milliseconds.
func parseTimestamp(raw json.RawMessage) (time.Time, bool, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return time.Time{}, false, nil
	}
	if strings.HasPrefix(text, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, false, fmt.Errorf("decode retry timestamp: %w", err)
		}
		if s == "" {
			return time.Time{}, false, nil
		}
		if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return ts, true, nil
		}
		text = s
	}
	ms, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("decode retry timestamp %q: %w", text, err)
	}
	return time.UnixMilli(ms).UTC(), true, nil
}
