package dto

type UserOutput struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ListInput struct {
	Query string
	Page  int
}

type ListOutput struct {
	Query      string
	Items      []UserOutput
	Page       int
	TotalPages int
	Total      int
}

// UpdateUserInput keeps a field unchanged when it is empty.
type UpdateUserInput struct {
	ID    string
	Name  string
	Email string
	Role  string
}
