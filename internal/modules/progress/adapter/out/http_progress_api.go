package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
	"capacita/internal/platform/httpapi"
)

type HTTPProgressAPI struct {
	api httpapi.API
}

func NewHTTPProgressAPI(api httpapi.API) progressout.ProgressAPI {
	return &HTTPProgressAPI{api: api}
}

type startRequest struct {
	TrainingID string `json:"trainingId"`
	Type       string `json:"type"`
}

type submitRequest struct {
	TrainingID string  `json:"trainingId"`
	Type       string  `json:"type,omitempty"`
	Progress   float64 `json:"progress"`
}

type submitResponse struct {
	Message       string  `json:"message"`
	TotalProgress float64 `json:"totalProgress"`
}

type recordPayload struct {
	TrainingID       httpapi.Ref `json:"trainingId"`
	TrainingTitle    string      `json:"trainingTitle"`
	DocumentProgress float64     `json:"documentProgress"`
	VideoProgress    float64     `json:"videoProgress"`
	Progress         float64     `json:"progress"`
	Status           string      `json:"status"`
}

type userProgressPayload struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Trainings []struct {
		TrainingTitle string  `json:"trainingTitle"`
		Progress      float64 `json:"progress"`
		Status        string  `json:"status"`
	} `json:"trainings"`
}

func (a *HTTPProgressAPI) Start(ctx context.Context, materialID string, kind domain.Kind) error {
	return a.api.Post(ctx, "/progress/start", startRequest{TrainingID: materialID, Type: string(kind)}, nil)
}

func (a *HTTPProgressAPI) Submit(ctx context.Context, materialID string, kind domain.Kind, pct float64) (progressout.SubmitResult, error) {
	res := submitResponse{}
	if err := a.api.Post(ctx, "/progress/progress", submitRequest{TrainingID: materialID, Type: string(kind), Progress: pct}, &res); err != nil {
		return progressout.SubmitResult{}, err
	}
	return progressout.SubmitResult{Message: res.Message, TotalProgress: res.TotalProgress}, nil
}

func (a *HTTPProgressAPI) Completed(ctx context.Context, userID string) (bool, error) {
	res := struct {
		AllCompleted bool `json:"allCompleted"`
	}{}
	if err := a.api.Get(ctx, "/progress/completed/"+url.PathEscape(userID), &res); err != nil {
		return false, err
	}
	return res.AllCompleted, nil
}

func (a *HTTPProgressAPI) View(ctx context.Context, userID string) ([]domain.Record, error) {
	raw := json.RawMessage{}
	if err := a.api.Get(ctx, "/progress/view/"+url.PathEscape(userID), &raw); err != nil {
		return nil, err
	}
	payloads, err := decodeRecords(raw)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(payloads))
	for _, p := range payloads {
		if p.TrainingID.ID == "" {
			continue
		}
		title := p.TrainingTitle
		if title == "" {
			title = p.TrainingID.Label
		}
		records = append(records, domain.Record{
			TrainingID:       p.TrainingID.ID,
			Title:            title,
			DocumentProgress: domain.Clamp(p.DocumentProgress),
			VideoProgress:    domain.Clamp(p.VideoProgress),
			Progress:         domain.Clamp(p.Progress),
			Status:           p.Status,
		})
	}
	return records, nil
}

func (a *HTTPProgressAPI) AllProgress(ctx context.Context) ([]domain.UserProgress, error) {
	payloads := []userProgressPayload{}
	if err := a.api.Get(ctx, "/progress/all-progress", &payloads); err != nil {
		return nil, err
	}
	out := make([]domain.UserProgress, 0, len(payloads))
	for _, p := range payloads {
		u := domain.UserProgress{UserID: p.ID, Name: p.Name, Role: p.Role}
		for _, tr := range p.Trainings {
			u.Trainings = append(u.Trainings, domain.TrainingProgress{Title: tr.TrainingTitle, Progress: tr.Progress, Status: tr.Status})
		}
		out = append(out, u)
	}
	return out, nil
}

func (a *HTTPProgressAPI) AllCompleted(ctx context.Context) ([]string, error) {
	payloads := []struct {
		UserID httpapi.Ref `json:"userId"`
	}{}
	if err := a.api.Get(ctx, "/progress/all-completed", &payloads); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(payloads))
	for _, p := range payloads {
		if p.UserID.ID != "" {
			ids = append(ids, p.UserID.ID)
		}
	}
	return ids, nil
}

// decodeRecords accepts either a bare array or {"progress": [...]}.
func decodeRecords(raw json.RawMessage) ([]recordPayload, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	list := []recordPayload{}
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	wrapped := struct {
		Progress []recordPayload `json:"progress"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode progress view: %w", err)
	}
	return wrapped.Progress, nil
}
