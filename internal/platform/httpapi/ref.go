package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref decodes a reference the backend sends either as a bare id string or
// as a populated document carrying _id and an optional title or name.
type Ref struct {
	ID    string
	Label string
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("decode ref: %w", err)
		}
		*r = Ref{ID: id}
		return nil
	}
	var doc struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode ref: %w", err)
	}
	label := doc.Title
	if label == "" {
		label = doc.Name
	}
	*r = Ref{ID: doc.ID, Label: label}
	return nil
}
