package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/export"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
)

// ReviewService backs the admin panel. Every mutation is followed by a
// full reload so the caller always renders what the store holds. A nil list
// after a successful mutation means the reload failed.
type ReviewService struct {
	repo   ports.RegistrationRepo
	logger logger.Logger
	now    func() time.Time
}

func NewReviewService(repo ports.RegistrationRepo, logger logger.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// All returns every registration, newest first.
func (s *ReviewService) All(ctx context.Context) ([]*domain.Registration, error) {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *ReviewService) List(ctx context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	regs, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(regs), nil
}

func (s *ReviewService) SetStatus(
	ctx context.Context,
	id string,
	status domain.RegistrationStatus,
	expectedVersion *int,
) ([]*domain.Registration, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	return s.update(ctx, id, domain.RegistrationUpdate{Status: &status, ExpectedVersion: expectedVersion})
}

func (s *ReviewService) SetPaymentStatus(
	ctx context.Context,
	id string,
	status domain.PaymentStatus,
	expectedVersion *int,
) ([]*domain.Registration, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPaymentStatus, status)
	}

	return s.update(ctx, id, domain.RegistrationUpdate{PaymentStatus: &status, ExpectedVersion: expectedVersion})
}

func (s *ReviewService) SetNotes(
	ctx context.Context,
	id string,
	notes string,
	expectedVersion *int,
) ([]*domain.Registration, error) {
	return s.update(ctx, id, domain.RegistrationUpdate{Notes: &notes, ExpectedVersion: expectedVersion})
}

func (s *ReviewService) update(ctx context.Context, id string, upd domain.RegistrationUpdate) ([]*domain.Registration, error) {
	upd.UpdatedAt = s.now().UTC()

	reg, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	s.logger.Info("registration updated",
		logger.String("registration_id", reg.ID),
		logger.String("status", string(reg.Status)),
		logger.String("payment_status", string(reg.PaymentStatus)),
		logger.Int("version", reg.Version),
	)

	return s.reload(ctx), nil
}

// Delete is irreversible; callers confirm before reaching it.
func (s *ReviewService) Delete(ctx context.Context, id string) ([]*domain.Registration, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete registration: %w", err)
	}

	s.logger.Info("registration deleted",
		logger.String("registration_id", id),
	)

	return s.reload(ctx), nil
}

// reload never fails the mutation that preceded it.
func (s *ReviewService) reload(ctx context.Context) []*domain.Registration {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to reload registrations",
			logger.String("error", err.Error()),
		)
		return nil
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs
}

// Export renders the filtered list as it would be shown in the panel.
func (s *ReviewService) Export(ctx context.Context, filter domain.RegistrationFilter) (export.File, error) {
	regs, err := s.List(ctx, filter)
	if err != nil {
		return export.File{}, err
	}

	return export.Registrations(regs, s.now()), nil
}
