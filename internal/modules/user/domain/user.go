package domain

import "capacita/internal/platform/listing"

type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Filter keeps the users whose name, email or role contains query.
func Filter(users []User, query string) []User {
	if query == "" {
		return users
	}
	out := make([]User, 0, len(users))
	for _, u := range users {
		if listing.Contains(query, u.Name, u.Email, u.Role) {
			out = append(out, u)
		}
	}
	return out
}
