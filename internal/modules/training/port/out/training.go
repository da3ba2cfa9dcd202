package out

import (
	"context"

	"capacita/internal/modules/training/domain"
)

type Draft struct {
	Title       string
	Description string
	Section     string
	Module      string
	Submodule   string
	Roles       []string
	Type        string
	FileURL     string
	FileName    string
}

type Patch struct {
	Title          string
	Description    string
	Section        string
	Module         string
	Submodule      string
	Roles          []string
	Document       *domain.Asset
	Video          *domain.Asset
	DeleteDocument bool
	DeleteVideo    bool
}

type TrainingAPI interface {
	Catalog(ctx context.Context) (map[string]map[string][]domain.Material, error)
	Get(ctx context.Context, id string) (domain.Material, error)
	Create(ctx context.Context, draft Draft) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

type RoleProvider interface {
	Admin(ctx context.Context) (bool, error)
}
