package complaints

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"civictrack/common"
)

// Repository handles data access for complaints. Every operation is a
// single statement against the complaints table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new Repository over the given gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the complaint. The store assigns id and createdAt. A
// ticket-code collision on the unique index surfaces as a conflict error.
func (r *Repository) Create(ctx context.Context, complaint *common.Complaint) error {
	if err := r.db.WithContext(ctx).Create(complaint).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.NewConflictError(fmt.Sprintf("ticket code %s already exists", complaint.TicketCode))
		}
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// FindByTicketCode looks up a complaint by exact ticket code.
func (r *Repository) FindByTicketCode(ctx context.Context, ticketCode string) (*common.Complaint, error) {
	var complaint common.Complaint
	err := r.db.WithContext(ctx).Where("ticket_code = ?", ticketCode).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError("Complaint not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}
	return &complaint, nil
}

// List returns every complaint ordered by creation time ascending.
func (r *Repository) List(ctx context.Context) ([]common.Complaint, error) {
	var complaints []common.Complaint
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// UpdateStatus overwrites only the status column of the complaint with the
// given id and returns the updated record. Status values are not checked
// here; that is the validator's job upstream.
func (r *Repository) UpdateStatus(ctx context.Context, id uint, status string) (*common.Complaint, error) {
	var complaint common.Complaint
	err := r.db.WithContext(ctx).First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFoundError("Complaint not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&complaint).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}
	return &complaint, nil
}
