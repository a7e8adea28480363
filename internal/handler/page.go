package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

var statusLabels = map[domain.RegistrationStatus]string{
	domain.StatusPending:  "Pendiente",
	domain.StatusApproved: "Aprobado",
	domain.StatusRejected: "Rechazado",
}

var paymentLabels = map[domain.PaymentStatus]string{
	domain.PaymentPending:   "Pendiente",
	domain.PaymentPartial:   "Parcial",
	domain.PaymentCompleted: "Completado",
}

type pageData struct {
	Bootcamps       []*domain.Bootcamp
	State           viewstate.State
	DisplayName     string
	Visible         []*domain.Registration
	Statuses        []domain.RegistrationStatus
	PaymentStatuses []domain.PaymentStatus
	StatusLabels    map[domain.RegistrationStatus]string
	PaymentLabels   map[domain.PaymentStatus]string
	GoogleClientID  string
}

// ScheduleLabel shows a registration's time slot as its bootcamp lists it,
// or the stored key when the bootcamp is no longer offered.
func (p pageData) ScheduleLabel(r *domain.Registration) string {
	for _, b := range p.Bootcamps {
		if b.ID != r.BootcampID {
			continue
		}
		if label, ok := b.Schedule[r.Schedule]; ok {
			return label
		}
	}
	return string(r.Schedule)
}

// Index renders the page from the session's view state. Pending messages
// are shown once.
func (h *Handler) Index(c *ginext.Context) {
	data := pageData{
		Bootcamps:       h.catalog.List(),
		Statuses:        domain.RegistrationStatuses,
		PaymentStatuses: domain.PaymentStatuses,
		StatusLabels:    statusLabels,
		PaymentLabels:   paymentLabels,
		GoogleClientID:  h.cfg.GoogleClientID,
	}

	sess := middleware.CurrentSession(c)
	if sess == nil {
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err == nil && q != (dto.FilterQuery{}) {
		if filter := filterFrom(q); filter.Validate() == nil {
			h.views.Dispatch(sess.ID, viewstate.FilterChanged{Filter: filter})
		}
	}

	if err := h.authz.RequireAdmin(c.Request.Context(), sess.ID, &sess.Identity); err == nil {
		h.loadAdminView(c, sess)
	}

	st := h.views.TakeMessage(sess.ID)
	data.State = st
	data.Visible = st.Visible()
	if st.Identity != nil {
		data.DisplayName = domain.DisplayName(st.Identity.Email)
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (h *Handler) loadAdminView(c *ginext.Context, sess *session.Session) {
	ctx := c.Request.Context()

	if regs, err := h.review.All(ctx); err != nil {
		c.Set("error", err.Error())
		h.views.Dispatch(sess.ID, viewstate.OperationFailed{Message: domain.MsgLoadFailed})
	} else {
		h.views.Dispatch(sess.ID, viewstate.AllRegistrationsLoaded{Registrations: regs})
	}

	if admins, err := h.admins.List(ctx); err != nil {
		c.Set("error", err.Error())
		h.views.Dispatch(sess.ID, viewstate.OperationFailed{Message: domain.MsgAdminsLoadFailed})
	} else {
		h.views.Dispatch(sess.ID, viewstate.AdminsLoaded{Admins: admins})
	}
}
