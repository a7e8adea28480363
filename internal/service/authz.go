package service

import (
	"context"
	"fmt"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/viewstate"
)

type AuthzPolicy string

const (
	// PolicyPerAction asks the directory on every privileged request.
	PolicyPerAction AuthzPolicy = "per_action"
	// PolicyPerSession trusts the flag captured at the last identity change.
	PolicyPerSession AuthzPolicy = "per_session"
)

func ParseAuthzPolicy(s string) (AuthzPolicy, error) {
	switch AuthzPolicy(s) {
	case "", PolicyPerAction:
		return PolicyPerAction, nil
	case PolicyPerSession:
		return PolicyPerSession, nil
	default:
		return "", fmt.Errorf("unknown authz policy %q", s)
	}
}

type adminChecker interface {
	IsAdmin(ctx context.Context, email string) bool
}

type Authorizer struct {
	admins adminChecker
	views  *viewstate.Store
	policy AuthzPolicy
}

func NewAuthorizer(admins adminChecker, views *viewstate.Store, policy AuthzPolicy) *Authorizer {
	return &Authorizer{admins: admins, views: views, policy: policy}
}

func (a *Authorizer) Policy() AuthzPolicy {
	return a.policy
}

// RequireAdmin returns nil when who may use the admin tools.
func (a *Authorizer) RequireAdmin(ctx context.Context, sessionID string, who *domain.Identity) error {
	if who == nil {
		return domain.ErrNotSignedIn
	}

	if a.policy == PolicyPerSession {
		st := a.views.Get(sessionID)
		if st.Identity.Same(who) && st.IsAdmin {
			return nil
		}
		return domain.ErrForbidden
	}

	isAdmin := a.admins.IsAdmin(ctx, who.Email)
	a.views.Dispatch(sessionID, viewstate.AdminStatusChecked{UID: who.UID, IsAdmin: isAdmin})
	if !isAdmin {
		return domain.ErrForbidden
	}
	return nil
}
