package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

const issuer = "bootcamp-tech"

type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Session is an authenticated browser session.
type Session struct {
	ID        string
	Token     string
	Identity  domain.Identity
	ExpiresAt time.Time
}

// TokenIssuer signs and parses HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

func (t *TokenIssuer) Issue(identity domain.Identity) (*Session, error) {
	now := t.now().UTC()
	expiresAt := now.Add(t.ttl)

	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identity.UID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &Session{
		ID:        claims.ID,
		Token:     signed,
		Identity:  identity,
		ExpiresAt: expiresAt,
	}, nil
}

// Parse validates the signature and expiry. Any failure is reported as
// domain.ErrSessionEnded.
func (t *TokenIssuer) Parse(token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionEnded, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrSessionEnded
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrSessionEnded)
	}

	return &Session{
		ID:    claims.ID,
		Token: token,
		Identity: domain.Identity{
			UID:   claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
