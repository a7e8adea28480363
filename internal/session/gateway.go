// Package session signs visitors in with Google, issues session tokens and
// tells interested parties when the identity behind a session changes.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

type Verifier interface {
	Verify(ctx context.Context, idToken string) (*domain.Identity, error)
}

type Revocations interface {
	Revoke(ctx context.Context, sessionID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Credential is what the browser posts after the sign-in popup: either a
// Google ID token or the provider error it got instead.
type Credential struct {
	IDToken      string `json:"id_token"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type ChangeKind string

const (
	ChangeSignIn  ChangeKind = "sign_in"
	ChangeSignOut ChangeKind = "sign_out"
	ChangeRestore ChangeKind = "restore"
)

// IdentityChange is delivered to listeners. Identity is nil on sign-out.
type IdentityChange struct {
	Kind      ChangeKind
	SessionID string
	Identity  *domain.Identity
}

type Listener func(ctx context.Context, change IdentityChange)

type Gateway struct {
	verifier    Verifier
	tokens      *TokenIssuer
	revocations Revocations
	logger      logger.Logger

	// sessions already announced to listeners by this process
	known *gocache.Cache

	mu        sync.RWMutex
	listeners []Listener
}

func NewGateway(verifier Verifier, tokens *TokenIssuer, revocations Revocations, logger logger.Logger) *Gateway {
	return &Gateway{
		verifier:    verifier,
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
		known:       gocache.New(tokens.TTL(), 10*time.Minute),
	}
}

// OnIdentityChange registers a listener. Listeners run synchronously in
// registration order, before SignIn, SignOut or Restore return.
func (g *Gateway) OnIdentityChange(l Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.listeners = append(g.listeners, l)
}

func (g *Gateway) SignIn(ctx context.Context, cred Credential) (*Session, error) {
	if code := strings.TrimSpace(cred.ErrorCode); code != "" {
		return nil, &SignInError{Code: code, Text: cred.ErrorMessage}
	}
	if strings.TrimSpace(cred.IDToken) == "" {
		return nil, &SignInError{Code: CodeInvalidCredential, Text: "Falta la credencial de Google."}
	}

	identity, err := g.verifier.Verify(ctx, cred.IDToken)
	if err != nil {
		g.logger.Warn("sign in rejected",
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	sess, err := g.tokens.Issue(*identity)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	g.known.Set(sess.ID, struct{}{}, time.Until(sess.ExpiresAt))

	g.logger.Info("signed in",
		logger.String("session_id", sess.ID),
		logger.String("uid", identity.UID),
	)

	g.notify(ctx, IdentityChange{Kind: ChangeSignIn, SessionID: sess.ID, Identity: identity})

	return sess, nil
}

// SignOut revokes the session until it would have expired anyway.
func (g *Gateway) SignOut(ctx context.Context, token string) error {
	sess, err := g.tokens.Parse(token)
	if err != nil {
		return err
	}

	if err = g.revocations.Revoke(ctx, sess.ID, sess.ExpiresAt); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	g.known.Delete(sess.ID)

	g.logger.Info("signed out",
		logger.String("session_id", sess.ID),
		logger.String("uid", sess.Identity.UID),
	)

	g.notify(ctx, IdentityChange{Kind: ChangeSignOut, SessionID: sess.ID})

	return nil
}

// Restore resolves a token presented on a later request. The first restore
// of a session this process has not seen is announced as an identity change.
func (g *Gateway) Restore(ctx context.Context, token string) (*Session, error) {
	sess, err := g.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := g.revocations.IsRevoked(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, domain.ErrSessionEnded
	}

	if err = g.known.Add(sess.ID, struct{}{}, time.Until(sess.ExpiresAt)); err == nil {
		identity := sess.Identity
		g.notify(ctx, IdentityChange{Kind: ChangeRestore, SessionID: sess.ID, Identity: &identity})
	}

	return sess, nil
}

func (g *Gateway) notify(ctx context.Context, change IdentityChange) {
	g.mu.RLock()
	listeners := make([]Listener, len(g.listeners))
	copy(listeners, g.listeners)
	g.mu.RUnlock()

	for _, l := range listeners {
		l(ctx, change)
	}
}
