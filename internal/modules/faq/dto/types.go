package dto

type FAQOutput struct {
	ID       string
	Question string
	Answer   string
	Roles    []string
}

type ListInput struct {
	Query string
	Page  int
}

type ListOutput struct {
	Query      string
	Items      []FAQOutput
	Page       int
	TotalPages int
	Total      int
}

type CreateFAQInput struct {
	Question string   `validate:"required,min=5,max=100"`
	Answer   string   `validate:"required,min=10,max=500"`
	Roles    []string `validate:"min=1,dive,oneof=asesor asesorJR gerente_sucursal gerente_zona"`
}

// UpdateFAQInput keeps a field unchanged when it is empty.
type UpdateFAQInput struct {
	ID       string
	Question string
	Answer   string
	Roles    []string
}
