package session

import (
	"errors"
	"fmt"
)

// Provider error codes reported by the browser sign-in popup.
const (
	CodePopupClosed        = "auth/popup-closed-by-user"
	CodePopupCancelled     = "auth/cancelled-popup-request"
	CodePopupBlocked       = "auth/popup-blocked"
	CodeUnauthorizedDomain = "auth/unauthorized-domain"
	CodeInvalidCredential  = "auth/invalid-credential"
)

const signInPrefix = "Error al iniciar sesión. "

var ErrDomainNotAllowed = errors.New("email domain is not allowed")

// SignInMessage maps a provider error code to the Spanish text shown to the
// visitor. Unknown codes fall back to the provider's own text.
func SignInMessage(code, text string) string {
	switch code {
	case CodePopupClosed:
		return signInPrefix + "La ventana de inicio de sesión fue cerrada."
	case CodePopupCancelled:
		return signInPrefix + "La solicitud de inicio de sesión fue cancelada."
	case CodePopupBlocked:
		return signInPrefix + "El navegador bloqueó la ventana emergente."
	case CodeUnauthorizedDomain:
		return signInPrefix + "Este dominio no está autorizado."
	default:
		return signInPrefix + text
	}
}

// SignInError is a failed sign-in attempt, either reported by the browser
// or detected while verifying the credential.
type SignInError struct {
	Code string
	Text string
	Err  error
}

func (e *SignInError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sign in %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("sign in %s: %s", e.Code, e.Text)
}

func (e *SignInError) Unwrap() error {
	return e.Err
}

func (e *SignInError) Message() string {
	return SignInMessage(e.Code, e.Text)
}
