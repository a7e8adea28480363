package ports

import (
	"context"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

type AdminRepo interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	// Delete refuses to remove the only remaining entry.
	Delete(ctx context.Context, id string) error
}
