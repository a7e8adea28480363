package domain

import (
	"fmt"
	"strings"
	"time"
)

const RoleAdmin = "admin"

type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeAdminEmail trims the address and applies the minimal
// "contains @" check used by the roster form.
func NormalizeAdminEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}
