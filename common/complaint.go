package common

import "time"

// Complaint statuses. Any of the three may be set via the status-update
// endpoint; new complaints default to StatusSubmitted.
const (
	StatusSubmitted  = "SUBMITTED"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

// ValidStatus reports whether s is one of the three complaint statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is a single citizen-submitted civic issue report.
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketCode  string    `gorm:"column:ticket_code;uniqueIndex;not null" json:"ticketCode"`
	Name        string    `gorm:"not null" json:"name"`
	Mobile      string    `gorm:"not null" json:"mobile"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Area        string    `gorm:"not null" json:"area"`
	Status      string    `gorm:"not null;default:SUBMITTED" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Complaint) TableName() string {
	return "complaints"
}
