package complaints

import "github.com/guregu/null/v5"

// CreateComplaintPayload is the body of POST /api/complaints. Status is
// optional; when absent the complaint is created as SUBMITTED.
type CreateComplaintPayload struct {
	Name        string      `json:"name"`
	Mobile      string      `json:"mobile"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Area        string      `json:"area"`
	Status      null.String `json:"status"`
}

// UpdateStatusPayload is the body of PATCH /api/complaints/:id/status.
type UpdateStatusPayload struct {
	Status string `json:"status"`
}
