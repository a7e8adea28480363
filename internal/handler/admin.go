package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/export"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

// Registrations review

func (h *Handler) ListRegistrations(c *ginext.Context) {
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	filter := filterFrom(q)

	regs, err := h.review.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, domain.MsgLoadFailed)
		return
	}

	h.dispatch(c, viewstate.FilterChanged{Filter: filter})

	c.JSON(http.StatusOK, dto.RegistrationListResponse{Registrations: dto.ToRegistrationList(regs)})
}

func (h *Handler) UpdateStatus(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	regs, err := h.review.SetStatus(c.Request.Context(), id, domain.RegistrationStatus(req.Status), req.Version)
	h.respondReviewed(c, regs, err, domain.MsgUpdateFailed)
}

func (h *Handler) UpdatePaymentStatus(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	var req dto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	regs, err := h.review.SetPaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus), req.Version)
	h.respondReviewed(c, regs, err, domain.MsgUpdateFailed)
}

func (h *Handler) UpdateNotes(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	var req dto.NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	regs, err := h.review.SetNotes(c.Request.Context(), id, *req.Notes, req.Version)
	h.respondReviewed(c, regs, err, domain.MsgUpdateFailed)
}

func (h *Handler) DeleteRegistration(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}
	if !confirmed(c) {
		h.handleError(c, domain.ErrConfirmationRequired, "")
		return
	}

	regs, err := h.review.Delete(c.Request.Context(), id)
	h.respondReviewed(c, regs, err, domain.MsgUpdateFailed)
}

func (h *Handler) ExportRegistrations(c *ginext.Context) {
	var q dto.FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	file, err := h.review.Export(c.Request.Context(), filterFrom(q))
	if err != nil {
		h.fail(c, err, domain.MsgLoadFailed)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, export.ContentType, file.Content)
}

// respondReviewed answers a review mutation with the reloaded list. A nil
// list means the mutation went through but the reload did not; the view
// keeps its previous list.
func (h *Handler) respondReviewed(c *ginext.Context, regs []*domain.Registration, err error, fallback string) {
	if err != nil {
		h.fail(c, err, fallback)
		return
	}

	if regs != nil {
		h.dispatch(c, viewstate.AllRegistrationsLoaded{Registrations: regs})
	}

	c.JSON(http.StatusOK, dto.RegistrationListResponse{Registrations: dto.ToRegistrationList(regs)})
}

func registrationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, fmt.Errorf("registration id: %w", err))
		return "", false
	}
	return id, true
}

// Admin roster

func (h *Handler) ListAdmins(c *ginext.Context) {
	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, domain.MsgAdminsLoadFailed)
		return
	}

	h.dispatch(c, viewstate.AdminsLoaded{Admins: admins})

	c.JSON(http.StatusOK, dto.AdminListResponse{Admins: dto.ToAdminList(admins)})
}

func (h *Handler) AddAdmin(c *ginext.Context) {
	var req dto.AddAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	added, err := h.admins.Add(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err, domain.MsgAdminAddFailed)
		return
	}

	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		c.Set("error", "reload admins: "+err.Error())
		admins = []*domain.Admin{added}
	} else {
		h.dispatch(c, viewstate.AdminsLoaded{Admins: admins})
	}
	h.dispatch(c, viewstate.MutationSucceeded{Message: domain.MsgAdminAdded})

	c.JSON(http.StatusCreated, dto.AdminListResponse{
		Admins:  dto.ToAdminList(admins),
		Message: domain.MsgAdminAdded,
	})
}

func (h *Handler) RemoveAdmin(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, fmt.Errorf("admin id: %w", err))
		return
	}
	if !confirmed(c) {
		h.handleError(c, domain.ErrConfirmationRequired, "")
		return
	}

	if err := h.admins.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, err, domain.MsgUpdateFailed)
		return
	}

	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		c.Set("error", "reload admins: "+err.Error())
	} else {
		h.dispatch(c, viewstate.AdminsLoaded{Admins: admins})
	}
	h.dispatch(c, viewstate.MutationSucceeded{Message: domain.MsgAdminRemoved})

	c.JSON(http.StatusOK, dto.AdminListResponse{
		Admins:  dto.ToAdminList(admins),
		Message: domain.MsgAdminRemoved,
	})
}
