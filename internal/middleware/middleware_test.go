package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware/mocks"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
)

const cookieName = "bootcamp_session"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testSession() *session.Session {
	return &session.Session{
		ID:       "s1",
		Token:    "tok",
		Identity: domain.Identity{UID: "u1", Email: "ana@x.com"},
	}
}

// whoami echoes the identity the middleware chain left on the context.
func whoami(c *ginext.Context) {
	who := CurrentIdentity(c)
	if who == nil {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, who.Email)
}

func TestSession_FromCookie(t *testing.T) {
	restorer := mocks.NewMockSessionRestorer(t)
	restorer.EXPECT().Restore(mock.Anything, "tok").Return(testSession(), nil)

	r := ginext.New("test")
	r.Use(Session(restorer, cookieName, newTestLogger(t)))
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "tok"})
	r.ServeHTTP(w, req)

	assert.Equal(t, "ana@x.com", w.Body.String())
}

func TestSession_FromBearer(t *testing.T) {
	restorer := mocks.NewMockSessionRestorer(t)
	restorer.EXPECT().Restore(mock.Anything, "tok").Return(testSession(), nil)

	r := ginext.New("test")
	r.Use(Session(restorer, cookieName, newTestLogger(t)))
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, "ana@x.com", w.Body.String())
}

func TestSession_Anonymous(t *testing.T) {
	restorer := mocks.NewMockSessionRestorer(t)

	r := ginext.New("test")
	r.Use(Session(restorer, cookieName, newTestLogger(t)))
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "anonymous", w.Body.String())
}

func TestSession_EndedClearsCookie(t *testing.T) {
	restorer := mocks.NewMockSessionRestorer(t)
	restorer.EXPECT().Restore(mock.Anything, "old").
		Return(nil, fmt.Errorf("%w: token is expired", domain.ErrSessionEnded))

	r := ginext.New("test")
	r.Use(Session(restorer, cookieName, newTestLogger(t)))
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "old"})
	r.ServeHTTP(w, req)

	assert.Equal(t, "anonymous", w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), cookieName+"=;")
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"admin", nil, http.StatusOK},
		{"not admin", domain.ErrForbidden, http.StatusForbidden},
		{"store down", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gate := mocks.NewMockAdminGate(t)
			gate.EXPECT().RequireAdmin(mock.Anything, "s1", &domain.Identity{UID: "u1", Email: "ana@x.com"}).Return(tc.err)

			r := ginext.New("test")
			r.Use(func(c *ginext.Context) { SetSession(c, testSession()) })
			r.GET("/", RequireAdmin(gate), whoami)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireAdmin_Anonymous(t *testing.T) {
	gate := mocks.NewMockAdminGate(t)

	r := ginext.New("test")
	r.GET("/", RequireAdmin(gate), whoami)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), domain.MsgMustSignIn)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), domain.MsgInternal)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"https://bootcamps.tech"}))
	r.GET("/", whoami)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://bootcamps.tech")
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://bootcamps.tech", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
