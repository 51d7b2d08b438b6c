package complaints

import (
	"fmt"

	"civictrack/common"
)

// ValidateCreate checks a create-complaint payload. It reports the first
// failure only, carrying the offending field path.
func ValidateCreate(payload *CreateComplaintPayload) error {
	required := []struct {
		field string
		value string
	}{
		{"name", payload.Name},
		{"mobile", payload.Mobile},
		{"category", payload.Category},
		{"description", payload.Description},
		{"area", payload.Area},
	}

	for _, f := range required {
		if f.value == "" {
			return common.NewValidationError(fmt.Sprintf("%s is required", f.field), f.field)
		}
	}

	// Status may be omitted on create; when present it must be a known value.
	if payload.Status.Valid && !common.ValidStatus(payload.Status.String) {
		return common.NewValidationError(statusMessage(payload.Status.String), "status")
	}

	return nil
}

// ValidateStatus checks an update-status payload.
func ValidateStatus(payload *UpdateStatusPayload) error {
	if !common.ValidStatus(payload.Status) {
		return common.NewValidationError(statusMessage(payload.Status), "status")
	}
	return nil
}

func statusMessage(got string) string {
	return fmt.Sprintf("status must be one of %s, %s, %s, got '%s'",
		common.StatusSubmitted, common.StatusInProgress, common.StatusResolved, got)
}
