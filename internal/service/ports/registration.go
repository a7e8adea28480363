package ports

import (
	"context"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	ListAll(ctx context.Context) ([]*domain.Registration, error)
	Update(ctx context.Context, id string, upd domain.RegistrationUpdate) (*domain.Registration, error)
	Delete(ctx context.Context, id string) error
}
