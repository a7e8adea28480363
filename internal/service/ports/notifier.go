package ports

import (
	"context"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

// RegistrationNotifier is best effort: implementations log failures and
// never report them to the caller.
type RegistrationNotifier interface {
	NotifyRegistered(ctx context.Context, reg *domain.Registration, bootcamp *domain.Bootcamp)
}
