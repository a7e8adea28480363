package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
)

// Submission is the outcome of a successful registration: the new record
// and the caller's refreshed list.
type Submission struct {
	Registration  *domain.Registration
	Registrations []*domain.Registration
}

type RegistrationService struct {
	repo     ports.RegistrationRepo
	catalog  ports.Catalog
	notifier ports.RegistrationNotifier
	logger   logger.Logger
	now      func() time.Time
}

func NewRegistrationService(
	repo ports.RegistrationRepo,
	catalog ports.Catalog,
	notifier ports.RegistrationNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *RegistrationService) Submit(
	ctx context.Context,
	who *domain.Identity,
	bootcampID int,
	sel domain.Selection,
) (*Submission, error) {
	if who == nil {
		return nil, domain.ErrNotSignedIn
	}
	if !sel.Complete() {
		return nil, fmt.Errorf("%w: schedule, start_date and payment_plan are required", domain.ErrValidation)
	}

	bootcamp, err := s.catalog.Get(bootcampID)
	if err != nil {
		return nil, fmt.Errorf("get bootcamp: %w", err)
	}
	if err = domain.ValidateSelection(sel, bootcamp); err != nil {
		return nil, err
	}

	reg := domain.NewRegistration(uuid.New().String(), who, bootcamp, sel, s.now().UTC())
	if err = s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.Int("bootcamp_id", bootcamp.ID),
		logger.String("user_id", who.UID),
	)

	go s.notifier.NotifyRegistered(context.WithoutCancel(ctx), reg, bootcamp)

	regs, err := s.repo.ListByUser(ctx, who.UID)
	if err != nil {
		// the record exists; only the refresh failed
		s.logger.Error("failed to reload registrations",
			logger.String("user_id", who.UID),
			logger.String("error", err.Error()),
		)
		return &Submission{Registration: reg}, nil
	}

	return &Submission{Registration: reg, Registrations: regs}, nil
}

func (s *RegistrationService) ListMine(ctx context.Context, who *domain.Identity) ([]*domain.Registration, error) {
	if who == nil {
		return nil, domain.ErrNotSignedIn
	}

	regs, err := s.repo.ListByUser(ctx, who.UID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
