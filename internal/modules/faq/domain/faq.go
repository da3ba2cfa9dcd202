package domain

import (
	"strings"

	"capacita/internal/platform/listing"
)

type FAQ struct {
	ID       string
	Question string
	Answer   string
	Roles    []string
}

// Matches applies the admin table search: question, answer or roles.
func (f FAQ) Matches(query string) bool {
	return listing.Contains(query, f.Question, f.Answer, strings.Join(f.Roles, ", "))
}

// Filter keeps the entries that match query, in their original order.
func Filter(faqs []FAQ, query string) []FAQ {
	if query == "" {
		return faqs
	}
	out := make([]FAQ, 0, len(faqs))
	for _, f := range faqs {
		if f.Matches(query) {
			out = append(out, f)
		}
	}
	return out
}
