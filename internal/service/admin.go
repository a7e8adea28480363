package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
)

type AdminService struct {
	repo   ports.AdminRepo
	logger logger.Logger
}

func NewAdminService(repo ports.AdminRepo, logger logger.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

// IsAdmin treats lookup failures as "not an admin".
func (s *AdminService) IsAdmin(ctx context.Context, email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return true
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		s.logger.Error("failed to check admin status",
			logger.String("email", email),
			logger.String("error", err.Error()),
		)
	}
	return false
}

func (s *AdminService) Add(ctx context.Context, email string) (*domain.Admin, error) {
	email, err := domain.NormalizeAdminEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrAdminExists
	}
	if err != nil && !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, fmt.Errorf("check admin: %w", err)
	}

	admin := &domain.Admin{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin added",
		logger.String("admin_id", admin.ID),
		logger.String("email", admin.Email),
	)

	return admin, nil
}

func (s *AdminService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}

	s.logger.Info("admin removed",
		logger.String("admin_id", id),
	)
	return nil
}

// List returns the roster, oldest first.
func (s *AdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}
