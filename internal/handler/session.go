package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/handler/dto"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/middleware"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess, err := h.sessions.SignIn(c.Request.Context(), session.Credential{
		IDToken:      req.IDToken,
		ErrorCode:    req.ErrorCode,
		ErrorMessage: req.ErrorMessage,
	})
	if err != nil {
		h.handleError(c, err, "")
		return
	}

	h.setSessionCookie(c, sess)
	middleware.SetSession(c, sess)
	st := h.dispatch(c, viewstate.MutationSucceeded{Message: domain.MsgWelcome})

	c.JSON(http.StatusOK, dto.ToSessionResponse(sess, st.IsAdmin, domain.MsgWelcome))
}

func (h *Handler) CurrentSession(c *ginext.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		h.handleError(c, domain.ErrNotSignedIn, "")
		return
	}

	st := h.views.Get(sess.ID)
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess, st.IsAdmin, ""))
}

func (h *Handler) SignOut(c *ginext.Context) {
	token := middleware.SessionToken(c, h.cfg.CookieName)
	if token == "" {
		h.handleError(c, domain.ErrNotSignedIn, "")
		return
	}

	err := h.sessions.SignOut(c.Request.Context(), token)
	if err != nil && !errors.Is(err, domain.ErrSessionEnded) {
		h.fail(c, err, domain.MsgSignOutFailed)
		return
	}

	middleware.ClearSessionCookie(c, h.cfg.CookieName)
	h.dispatch(c, viewstate.MutationSucceeded{Message: domain.MsgSignedOut})

	c.JSON(http.StatusOK, dto.MessageResponse{Message: domain.MsgSignedOut})
}

func (h *Handler) setSessionCookie(c *ginext.Context, sess *session.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, sess.Token, maxAge, "/", "", h.cfg.CookieSecure, true)
}
