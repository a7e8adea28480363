package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/export"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

type CatalogSvc interface {
	List() []*domain.Bootcamp
	Get(id int) (*domain.Bootcamp, error)
}

type SessionSvc interface {
	SignIn(ctx context.Context, cred session.Credential) (*session.Session, error)
	SignOut(ctx context.Context, token string) error
}

type RegistrationSvc interface {
	Submit(ctx context.Context, who *domain.Identity, bootcampID int, sel domain.Selection) (*service.Submission, error)
	ListMine(ctx context.Context, who *domain.Identity) ([]*domain.Registration, error)
}

type ReviewSvc interface {
	All(ctx context.Context) ([]*domain.Registration, error)
	List(ctx context.Context, filter domain.RegistrationFilter) ([]*domain.Registration, error)
	SetStatus(ctx context.Context, id string, status domain.RegistrationStatus, expectedVersion *int) ([]*domain.Registration, error)
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, expectedVersion *int) ([]*domain.Registration, error)
	SetNotes(ctx context.Context, id string, notes string, expectedVersion *int) ([]*domain.Registration, error)
	Delete(ctx context.Context, id string) ([]*domain.Registration, error)
	Export(ctx context.Context, filter domain.RegistrationFilter) (export.File, error)
}

type AdminSvc interface {
	Add(ctx context.Context, email string) (*domain.Admin, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Admin, error)
}

type AuthorizerSvc interface {
	RequireAdmin(ctx context.Context, sessionID string, who *domain.Identity) error
}

type Services struct {
	Catalog       CatalogSvc
	Sessions      SessionSvc
	Registrations RegistrationSvc
	Review        ReviewSvc
	Admins        AdminSvc
	Authz         AuthorizerSvc
}

type Config struct {
	CookieName     string
	CookieSecure   bool
	GoogleClientID string
}

type Handler struct {
	catalog       CatalogSvc
	sessions      SessionSvc
	registrations RegistrationSvc
	review        ReviewSvc
	admins        AdminSvc
	authz         AuthorizerSvc
	views         *viewstate.Store
	cfg           Config
}

func NewHandler(svc Services, views *viewstate.Store, cfg Config) *Handler {
	return &Handler{
		catalog:       svc.Catalog,
		sessions:      svc.Sessions,
		registrations: svc.Registrations,
		review:        svc.Review,
		admins:        svc.Admins,
		authz:         svc.Authz,
		views:         views,
		cfg:           cfg,
	}
}

// dispatch feeds events into the caller's view state. Anonymous requests
// have no state to update.
func (h *Handler) dispatch(c *ginext.Context, events ...viewstate.Event) viewstate.State {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return viewstate.State{}
	}
	return h.views.Dispatch(sess.ID, events...)
}

// fail records the failure in the view state and writes the error response.
// fallback replaces the generic message for errors without a specific one.
func (h *Handler) fail(c *ginext.Context, err error, fallback string) {
	h.dispatch(c, viewstate.OperationFailed{Message: userMessage(err, fallback)})
	h.handleError(c, err, fallback)
}

func userMessage(err error, fallback string) string {
	var signInErr *session.SignInError
	if errors.As(err, &signInErr) {
		return signInErr.Message()
	}

	msg := domain.UserMessage(err)
	if msg == domain.MsgInternal && fallback != "" {
		return fallback
	}
	return msg
}

func (h *Handler) handleError(c *ginext.Context, err error, fallback string) {
	c.Set("error", err.Error())

	msg := userMessage(err, fallback)

	var signInErr *session.SignInError
	switch {
	case errors.As(err, &signInErr):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msg, Code: signInErr.Code})

	case errors.Is(err, domain.ErrNotSignedIn),
		errors.Is(err, domain.ErrSessionEnded):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msg})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: msg})

	case errors.Is(err, domain.ErrBootcampNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msg})

	case errors.Is(err, domain.ErrAdminExists),
		errors.Is(err, domain.ErrVersionConflict),
		errors.Is(err, domain.ErrLastAdmin):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: msg})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPaymentStatus),
		errors.Is(err, domain.ErrConfirmationRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
}

// badRequest answers a malformed request. The binding detail goes to the
// access log only.
func badRequest(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.MsgInvalidRequest})
}

// confirmed reports whether a destructive request carries confirm=true.
func confirmed(c *ginext.Context) bool {
	return c.Query("confirm") == "true"
}

func filterFrom(q dto.FilterQuery) domain.RegistrationFilter {
	return domain.RegistrationFilter{Search: q.Search, Status: q.Status, Payment: q.Payment}
}
