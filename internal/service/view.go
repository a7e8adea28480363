package service

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

// ViewSync keeps the per-session view state in step with identity changes
// reported by the session gateway.
type ViewSync struct {
	views  *viewstate.Store
	admins adminChecker
	regs   ports.RegistrationRepo
	logger logger.Logger
}

func NewViewSync(views *viewstate.Store, admins adminChecker, regs ports.RegistrationRepo, logger logger.Logger) *ViewSync {
	return &ViewSync{views: views, admins: admins, regs: regs, logger: logger}
}

func (v *ViewSync) HandleIdentityChange(ctx context.Context, change session.IdentityChange) {
	if change.Identity == nil {
		v.views.Dispatch(change.SessionID, viewstate.IdentitySet{Identity: nil})
		return
	}

	who := change.Identity
	v.views.Dispatch(change.SessionID, viewstate.IdentitySet{Identity: who})
	v.views.Dispatch(change.SessionID, viewstate.AdminStatusChecked{
		UID:     who.UID,
		IsAdmin: v.admins.IsAdmin(ctx, who.Email),
	})

	regs, err := v.regs.ListByUser(ctx, who.UID)
	if err != nil {
		v.logger.Error("failed to load registrations",
			logger.String("user_id", who.UID),
			logger.String("error", err.Error()),
		)
		v.views.Dispatch(change.SessionID, viewstate.OperationFailed{Message: domain.MsgLoadFailed})
		return
	}
	v.views.Dispatch(change.SessionID, viewstate.RegistrationsLoaded{UID: who.UID, Registrations: regs})
}
