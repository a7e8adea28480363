package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var ana = &domain.Identity{UID: "u-ana", Email: "ana@x.com", Name: "Ana"}

type recorder struct {
	changes []IdentityChange
}

func (r *recorder) listen(_ context.Context, c IdentityChange) {
	r.changes = append(r.changes, c)
}

func newGateway(t *testing.T) (*Gateway, *mocks.MockVerifier, *mocks.MockRevocations, *recorder) {
	verifier := mocks.NewMockVerifier(t)
	revocations := mocks.NewMockRevocations(t)
	rec := &recorder{}

	g := NewGateway(verifier, NewTokenIssuer("secret", time.Hour), revocations, newTestLogger(t))
	g.OnIdentityChange(rec.listen)

	return g, verifier, revocations, rec
}

func TestGateway_SignIn(t *testing.T) {
	g, verifier, _, rec := newGateway(t)

	verifier.EXPECT().Verify(mock.Anything, "google-token").Return(ana, nil)

	sess, err := g.SignIn(context.Background(), Credential{IDToken: "google-token"})

	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, ana.UID, sess.Identity.UID)
	require.Len(t, rec.changes, 1)
	assert.Equal(t, ChangeSignIn, rec.changes[0].Kind)
	assert.Equal(t, sess.ID, rec.changes[0].SessionID)
}

func TestGateway_SignIn_ProviderError(t *testing.T) {
	g, _, _, rec := newGateway(t)

	_, err := g.SignIn(context.Background(), Credential{ErrorCode: CodePopupBlocked})

	var signInErr *SignInError
	require.ErrorAs(t, err, &signInErr)
	assert.Equal(t, "Error al iniciar sesión. El navegador bloqueó la ventana emergente.", signInErr.Message())
	assert.Empty(t, rec.changes)
}

func TestGateway_SignIn_MissingToken(t *testing.T) {
	g, _, _, _ := newGateway(t)

	_, err := g.SignIn(context.Background(), Credential{})

	var signInErr *SignInError
	require.ErrorAs(t, err, &signInErr)
	assert.Equal(t, CodeInvalidCredential, signInErr.Code)
}

func TestGateway_SignIn_VerifierRejects(t *testing.T) {
	g, verifier, _, rec := newGateway(t)

	verifier.EXPECT().Verify(mock.Anything, "bad").
		Return(nil, &SignInError{Code: CodeUnauthorizedDomain, Err: ErrDomainNotAllowed})

	_, err := g.SignIn(context.Background(), Credential{IDToken: "bad"})

	assert.ErrorIs(t, err, ErrDomainNotAllowed)
	assert.Empty(t, rec.changes)
}

func TestGateway_SignOut(t *testing.T) {
	g, verifier, revocations, rec := newGateway(t)

	verifier.EXPECT().Verify(mock.Anything, "google-token").Return(ana, nil)
	sess, err := g.SignIn(context.Background(), Credential{IDToken: "google-token"})
	require.NoError(t, err)

	revocations.EXPECT().Revoke(mock.Anything, sess.ID, mock.Anything).Return(nil)

	require.NoError(t, g.SignOut(context.Background(), sess.Token))
	require.Len(t, rec.changes, 2)
	assert.Equal(t, ChangeSignOut, rec.changes[1].Kind)
	assert.Nil(t, rec.changes[1].Identity)
}

func TestGateway_SignOut_RevokeFails(t *testing.T) {
	g, verifier, revocations, rec := newGateway(t)

	verifier.EXPECT().Verify(mock.Anything, "google-token").Return(ana, nil)
	sess, err := g.SignIn(context.Background(), Credential{IDToken: "google-token"})
	require.NoError(t, err)

	revocations.EXPECT().Revoke(mock.Anything, sess.ID, mock.Anything).Return(errors.New("db down"))

	assert.Error(t, g.SignOut(context.Background(), sess.Token))
	assert.Len(t, rec.changes, 1)
}

func TestGateway_Restore_AnnouncesOnce(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	sess, err := issuer.Issue(*ana)
	require.NoError(t, err)

	g, _, revocations, rec := newGateway(t)
	revocations.EXPECT().IsRevoked(mock.Anything, sess.ID).Return(false, nil).Twice()

	got, err := g.Restore(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, ana.Email, got.Identity.Email)

	_, err = g.Restore(context.Background(), sess.Token)
	require.NoError(t, err)

	require.Len(t, rec.changes, 1)
	assert.Equal(t, ChangeRestore, rec.changes[0].Kind)
}

func TestGateway_Restore_Revoked(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	sess, err := issuer.Issue(*ana)
	require.NoError(t, err)

	g, _, revocations, rec := newGateway(t)
	revocations.EXPECT().IsRevoked(mock.Anything, sess.ID).Return(true, nil)

	_, err = g.Restore(context.Background(), sess.Token)

	assert.ErrorIs(t, err, domain.ErrSessionEnded)
	assert.Empty(t, rec.changes)
}

func TestGateway_Restore_EmptyToken(t *testing.T) {
	g, _, _, _ := newGateway(t)

	_, err := g.Restore(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestGateway_ListenersRunInOrder(t *testing.T) {
	g, verifier, _, _ := newGateway(t)

	var order []string
	g.OnIdentityChange(func(context.Context, IdentityChange) { order = append(order, "first") })
	g.OnIdentityChange(func(context.Context, IdentityChange) { order = append(order, "second") })

	verifier.EXPECT().Verify(mock.Anything, "google-token").Return(ana, nil)
	_, err := g.SignIn(context.Background(), Credential{IDToken: "google-token"})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
