package out

import (
	"context"
	"net/url"

	"capacita/internal/modules/faq/domain"
	faqout "capacita/internal/modules/faq/port/out"
	"capacita/internal/platform/httpapi"
)

type HTTPFAQAPI struct {
	api httpapi.API
}

func NewHTTPFAQAPI(api httpapi.API) faqout.FAQAPI {
	return &HTTPFAQAPI{api: api}
}

type faqPayload struct {
	ID       string   `json:"_id,omitempty"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Roles    []string `json:"roles"`
}

func (a *HTTPFAQAPI) List(ctx context.Context) ([]domain.FAQ, error) {
	var raw []faqPayload
	if err := a.api.Get(ctx, "/faqs", &raw); err != nil {
		return nil, err
	}
	out := make([]domain.FAQ, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (a *HTTPFAQAPI) Get(ctx context.Context, id string) (domain.FAQ, error) {
	p := faqPayload{}
	if err := a.api.Get(ctx, "/faqs/"+url.PathEscape(id), &p); err != nil {
		return domain.FAQ{}, err
	}
	f := p.toDomain()
	if f.ID == "" {
		f.ID = id
	}
	return f, nil
}

func (a *HTTPFAQAPI) Create(ctx context.Context, f domain.FAQ) error {
	return a.api.Post(ctx, "/faqs", faqPayload{Question: f.Question, Answer: f.Answer, Roles: f.Roles}, nil)
}

func (a *HTTPFAQAPI) Update(ctx context.Context, f domain.FAQ) error {
	return a.api.Put(ctx, "/faqs/"+url.PathEscape(f.ID), faqPayload{Question: f.Question, Answer: f.Answer, Roles: f.Roles}, nil)
}

func (a *HTTPFAQAPI) Delete(ctx context.Context, id string) error {
	return a.api.Delete(ctx, "/faqs/"+url.PathEscape(id), nil)
}

func (p faqPayload) toDomain() domain.FAQ {
	return domain.FAQ{ID: p.ID, Question: p.Question, Answer: p.Answer, Roles: p.Roles}
}
