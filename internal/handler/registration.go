package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

func (h *Handler) Register(c *ginext.Context) {
	who := middleware.CurrentIdentity(c)
	if who == nil {
		h.handleError(c, domain.ErrNotSignedIn, "")
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sel := domain.Selection{
		Schedule:    domain.ScheduleKey(req.Schedule),
		StartDate:   req.StartDate,
		PaymentPlan: req.PaymentPlan,
	}

	sub, err := h.registrations.Submit(c.Request.Context(), who, req.BootcampID, sel)
	if err != nil {
		h.fail(c, err, domain.MsgRegistrationFailed)
		return
	}

	msg := domain.RegistrationSucceeded(sub.Registration.BootcampName)
	events := []viewstate.Event{viewstate.MutationSucceeded{Message: msg}}
	if sub.Registrations != nil {
		events = append(events, viewstate.RegistrationsLoaded{UID: who.UID, Registrations: sub.Registrations})
	}
	h.dispatch(c, events...)

	c.JSON(http.StatusCreated, dto.SubmitResponse{
		Registration:  dto.ToRegistrationResponse(sub.Registration),
		Registrations: dto.ToRegistrationList(sub.Registrations),
		Message:       msg,
	})
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	who := middleware.CurrentIdentity(c)
	if who == nil {
		h.handleError(c, domain.ErrNotSignedIn, "")
		return
	}

	regs, err := h.registrations.ListMine(c.Request.Context(), who)
	if err != nil {
		h.fail(c, err, domain.MsgLoadFailed)
		return
	}

	h.dispatch(c, viewstate.RegistrationsLoaded{UID: who.UID, Registrations: regs})

	c.JSON(http.StatusOK, dto.RegistrationListResponse{Registrations: dto.ToRegistrationList(regs)})
}
