package complaints

import (
	"context"

	"go.uber.org/zap"

	"civictrack/common"
)

// maxCreateAttempts bounds the retry loop on ticket-code collisions.
const maxCreateAttempts = 3

// Store is the persistence contract the service depends on. An in-memory
// fake can stand in for the gorm-backed Repository in tests.
type Store interface {
	Create(ctx context.Context, complaint *common.Complaint) error
	FindByTicketCode(ctx context.Context, ticketCode string) (*common.Complaint, error)
	List(ctx context.Context) ([]common.Complaint, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*common.Complaint, error)
}

// Service handles business logic for complaints.
type Service struct {
	store  Store
	gen    *TicketCodeGenerator
	logger *zap.Logger
}

// NewService creates a new Service.
func NewService(store Store, gen *TicketCodeGenerator, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		gen:    gen,
		logger: logger,
	}
}

// Create validates the payload, issues a ticket code and inserts the
// complaint. When the insert hits the ticket_code unique index the code is
// regenerated, up to maxCreateAttempts times.
func (s *Service) Create(ctx context.Context, payload *CreateComplaintPayload) (*common.Complaint, error) {
	if err := ValidateCreate(payload); err != nil {
		return nil, err
	}

	status := common.StatusSubmitted
	if payload.Status.Valid && payload.Status.String != "" {
		status = payload.Status.String
	}

	var lastErr error
	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		complaint := &common.Complaint{
			TicketCode:  s.gen.Generate(),
			Name:        payload.Name,
			Mobile:      payload.Mobile,
			Category:    payload.Category,
			Description: payload.Description,
			Area:        payload.Area,
			Status:      status,
		}

		err := s.store.Create(ctx, complaint)
		if err == nil {
			s.logger.Info("complaint created",
				zap.Uint("id", complaint.ID),
				zap.String("ticketCode", complaint.TicketCode),
			)
			return complaint, nil
		}
		if !common.IsKind(err, common.KindConflict) {
			s.logger.Error("failed to create complaint", zap.Error(err))
			return nil, err
		}

		lastErr = err
		s.logger.Warn("ticket code collision, regenerating",
			zap.String("ticketCode", complaint.TicketCode),
			zap.Int("attempt", attempt),
		)
	}
	return nil, lastErr
}

// SearchByTicket returns the complaint with the given ticket code, matched
// exactly and case-sensitively.
func (s *Service) SearchByTicket(ctx context.Context, ticketCode string) (*common.Complaint, error) {
	return s.store.FindByTicketCode(ctx, ticketCode)
}

// List returns all complaints in creation order.
func (s *Service) List(ctx context.Context) ([]common.Complaint, error) {
	return s.store.List(ctx)
}

// UpdateStatus validates the new status and applies it to the complaint
// with the given id. Concurrent updates are last-write-wins.
func (s *Service) UpdateStatus(ctx context.Context, id uint, payload *UpdateStatusPayload) (*common.Complaint, error) {
	if err := ValidateStatus(payload); err != nil {
		return nil, err
	}

	complaint, err := s.store.UpdateStatus(ctx, id, payload.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("complaint status updated",
		zap.Uint("id", complaint.ID),
		zap.String("status", complaint.Status),
	)
	return complaint, nil
}
