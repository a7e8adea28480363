package session

import (
	"context"
	"strings"

	googleverifier "github.com/futurenda/google-auth-id-token-verifier"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

// GoogleVerifier checks Google ID tokens against the federated sign-on
// certificates and the configured client id.
type GoogleVerifier struct {
	verifier       googleverifier.Verifier
	audience       []string
	allowedDomains []string
}

func NewGoogleVerifier(clientID string, allowedDomains []string) *GoogleVerifier {
	domains := make([]string, 0, len(allowedDomains))
	for _, d := range allowedDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			domains = append(domains, d)
		}
	}

	return &GoogleVerifier{
		audience:       []string{clientID},
		allowedDomains: domains,
	}
}

func (g *GoogleVerifier) Verify(_ context.Context, idToken string) (*domain.Identity, error) {
	if err := g.verifier.VerifyIDToken(idToken, g.audience); err != nil {
		return nil, &SignInError{Code: CodeInvalidCredential, Text: "El token de Google no es válido.", Err: err}
	}

	claims, err := googleverifier.Decode(idToken)
	if err != nil {
		return nil, &SignInError{Code: CodeInvalidCredential, Text: "El token de Google no es válido.", Err: err}
	}
	if claims.Email == "" || !claims.EmailVerified {
		return nil, &SignInError{Code: CodeInvalidCredential, Text: "El correo de la cuenta no está verificado."}
	}
	if !g.Allowed(claims.Email) {
		return nil, &SignInError{Code: CodeUnauthorizedDomain, Err: ErrDomainNotAllowed}
	}

	return &domain.Identity{
		UID:   claims.Sub,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// Allowed reports whether the email's domain passes the allow-list. An
// empty list lets every domain in.
func (g *GoogleVerifier) Allowed(email string) bool {
	if len(g.allowedDomains) == 0 {
		return true
	}

	_, host, ok := strings.Cut(email, "@")
	if !ok {
		return false
	}
	host = strings.ToLower(host)
	for _, d := range g.allowedDomains {
		if host == d {
			return true
		}
	}
	return false
}
