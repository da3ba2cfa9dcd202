package httpapi_test

import (
	"encoding/json"
	"testing"

	"capacita/internal/platform/httpapi"
)

func TestRefAcceptsStringOrDocument(t *testing.T) {
	t.Parallel()
	var rows []struct {
		TrainingID httpapi.Ref `json:"trainingId"`
	}
	raw := `[{"trainingId":"t-1"},{"trainingId":{"_id":"t-2","title":"Onboarding"}},{"trainingId":null}]`
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rows[0].TrainingID.ID != "t-1" {
		t.Fatalf("unexpected first ref: %+v", rows[0].TrainingID)
	}
	if rows[1].TrainingID.ID != "t-2" || rows[1].TrainingID.Label != "Onboarding" {
		t.Fatalf("unexpected populated ref: %+v", rows[1].TrainingID)
	}
	if rows[2].TrainingID.ID != "" {
		t.Fatalf("null ref should be empty: %+v", rows[2].TrainingID)
	}
}
