package validation

import (
	"testing"

	"github.com/proudly-app/proudly/internal/models"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		draft   models.EntryDraft
		wantErr bool
	}{
		{"valid", models.EntryDraft{Text: "shipped the release"}, false},
		{"valid with tags", models.EntryDraft{Text: "x", Tags: []string{"work"}}, false},
		{"empty text", models.EntryDraft{Text: ""}, true},
		{"whitespace text", models.EntryDraft{Text: "   \n\t"}, true},
		{"blank tag", models.EntryDraft{Text: "x", Tags: []string{"work", "  "}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDraft error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	text := "edited"
	empty := "  "
	goodTags := []string{"a"}
	badTags := []string{"a", ""}

	tests := []struct {
		name    string
		update  models.EntryUpdate
		wantErr bool
	}{
		{"empty update is fine", models.EntryUpdate{}, false},
		{"text set", models.EntryUpdate{Text: &text}, false},
		{"text set but blank", models.EntryUpdate{Text: &empty}, true},
		{"tags set", models.EntryUpdate{Tags: &goodTags}, false},
		{"tags with blank label", models.EntryUpdate{Tags: &badTags}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.update)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpdate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
