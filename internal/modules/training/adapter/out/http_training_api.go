package out

import (
	"context"
	"net/url"

	"capacita/internal/modules/training/domain"
	trainingout "capacita/internal/modules/training/port/out"
	"capacita/internal/platform/httpapi"
)

type HTTPTrainingAPI struct {
	api httpapi.API
}

func NewHTTPTrainingAPI(api httpapi.API) trainingout.TrainingAPI {
	return &HTTPTrainingAPI{api: api}
}

type assetPayload struct {
	FileURL          string `json:"fileUrl"`
	OriginalFileName string `json:"originalFileName"`
}

type materialPayload struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Section     string        `json:"section"`
	Module      string        `json:"module"`
	Submodule   string        `json:"submodule"`
	Roles       []string      `json:"roles"`
	Document    *assetPayload `json:"document"`
	Video       *assetPayload `json:"video"`
}

type createPayload struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Roles            []string `json:"roles"`
	Section          string   `json:"section"`
	Module           string   `json:"module"`
	Submodule        string   `json:"submodule"`
	FileURL          string   `json:"fileUrl"`
	OriginalFileName string   `json:"originalFileName"`
}

type updatePayload struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Roles          []string `json:"roles"`
	Section        string   `json:"section"`
	Module         string   `json:"module"`
	Submodule      string   `json:"submodule"`
	DocumentURL    string   `json:"documentUrl,omitempty"`
	DocumentName   string   `json:"documentName,omitempty"`
	VideoURL       string   `json:"videoUrl,omitempty"`
	VideoName      string   `json:"videoName,omitempty"`
	DeleteDocument bool     `json:"deleteDocument"`
	DeleteVideo    bool     `json:"deleteVideo"`
}

func (a *HTTPTrainingAPI) Catalog(ctx context.Context) (map[string]map[string][]domain.Material, error) {
	raw := map[string]map[string][]materialPayload{}
	if err := a.api.Get(ctx, "/training", &raw); err != nil {
		return nil, err
	}
	out := make(map[string]map[string][]domain.Material, len(raw))
	for section, modules := range raw {
		out[section] = make(map[string][]domain.Material, len(modules))
		for module, materials := range modules {
			for _, m := range materials {
				out[section][module] = append(out[section][module], m.toDomain())
			}
		}
	}
	return out, nil
}

func (a *HTTPTrainingAPI) Get(ctx context.Context, id string) (domain.Material, error) {
	payload := materialPayload{}
	if err := a.api.Get(ctx, "/training/"+url.PathEscape(id), &payload); err != nil {
		return domain.Material{}, err
	}
	m := payload.toDomain()
	if m.ID == "" {
		m.ID = id
	}
	return m, nil
}

func (a *HTTPTrainingAPI) Create(ctx context.Context, d trainingout.Draft) error {
	return a.api.Post(ctx, "/training", createPayload{
		Title:            d.Title,
		Description:      d.Description,
		Type:             d.Type,
		Roles:            d.Roles,
		Section:          d.Section,
		Module:           d.Module,
		Submodule:        d.Submodule,
		FileURL:          d.FileURL,
		OriginalFileName: d.FileName,
	}, nil)
}

func (a *HTTPTrainingAPI) Update(ctx context.Context, id string, p trainingout.Patch) error {
	body := updatePayload{
		Title:          p.Title,
		Description:    p.Description,
		Roles:          p.Roles,
		Section:        p.Section,
		Module:         p.Module,
		Submodule:      p.Submodule,
		DeleteDocument: p.DeleteDocument,
		DeleteVideo:    p.DeleteVideo,
	}
	if p.Document != nil {
		body.DocumentURL, body.DocumentName = p.Document.URL, p.Document.FileName
	}
	if p.Video != nil {
		body.VideoURL, body.VideoName = p.Video.URL, p.Video.FileName
	}
	return a.api.Put(ctx, "/training/"+url.PathEscape(id), body, nil)
}

func (a *HTTPTrainingAPI) Delete(ctx context.Context, id string) error {
	return a.api.Delete(ctx, "/training/"+url.PathEscape(id), nil)
}

func (p materialPayload) toDomain() domain.Material {
	m := domain.Material{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Section:     p.Section,
		Module:      p.Module,
		Submodule:   p.Submodule,
		Roles:       p.Roles,
	}
	if p.Document != nil && p.Document.FileURL != "" {
		m.Document = &domain.Asset{URL: p.Document.FileURL, FileName: p.Document.OriginalFileName}
	}
	if p.Video != nil && p.Video.FileURL != "" {
		m.Video = &domain.Asset{URL: p.Video.FileURL, FileName: p.Video.OriginalFileName}
	}
	return m
}
