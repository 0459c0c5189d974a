package validation

import (
	"fmt"
	"strings"

	"github.com/proudly-app/proudly/internal/models"
)

// ValidateDraft checks a new-entry draft before it reaches the store. The
// repository itself performs no validation, so every caller goes through here.
func ValidateDraft(draft models.EntryDraft) error {
	if strings.TrimSpace(draft.Text) == "" {
		return fmt.Errorf("entry text must not be empty")
	}
	for _, tag := range draft.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must not be empty")
		}
	}
	return nil
}

// ValidateUpdate checks a partial update. A nil text field is fine; a set
// but empty text is not, since text is required on every entry.
func ValidateUpdate(update models.EntryUpdate) error {
	if update.Text != nil && strings.TrimSpace(*update.Text) == "" {
		return fmt.Errorf("entry text must not be empty")
	}
	if update.Tags != nil {
		for _, tag := range *update.Tags {
			if strings.TrimSpace(tag) == "" {
				return fmt.Errorf("tags must not be empty")
			}
		}
	}
	return nil
}
