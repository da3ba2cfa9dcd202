package dto

type MaterialOutput struct {
	ID           string
	Title        string
	Description  string
	Section      string
	Module       string
	Submodule    string
	Roles        []string
	DocumentURL  string
	DocumentName string
	VideoURL     string
	VideoName    string
}

type ModuleOutput struct {
	Name      string
	Materials []MaterialOutput
}

type SectionOutput struct {
	Name    string
	Modules []ModuleOutput
}

type CatalogOutput struct {
	Query    string
	Total    int
	Sections []SectionOutput
}

type CreateMaterialInput struct {
	Title       string   `validate:"required,min=5,max=100"`
	Description string   `validate:"required,min=10,max=500"`
	Section     string   `validate:"required,min=3,max=50"`
	Module      string   `validate:"omitempty,min=3,max=50"`
	Submodule   string   `validate:"omitempty,min=3,max=50"`
	Roles       []string `validate:"min=1,dive,oneof=asesor asesorJR gerente_sucursal gerente_zona"`
	Type        string   `validate:"required,oneof=document video"`
	FileURL     string   `validate:"required,url"`
	FileName    string   `validate:"required"`
}

// UpdateMaterialInput leaves a field unchanged when it is empty. Type,
// FileURL and FileName replace the asset of that type when all are set.
type UpdateMaterialInput struct {
	ID             string
	Title          string
	Description    string
	Section        string
	Module         string
	Submodule      string
	Roles          []string
	Type           string
	FileURL        string
	FileName       string
	DeleteDocument bool
	DeleteVideo    bool
}
