package viewstate

// Reduce returns the state that follows s after ev. Results loaded for an
// identity other than the current one are dropped, and admin-only data is
// accepted only while the admin flag is set.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case IdentitySet:
		if e.Identity == nil {
			return State{Message: s.Message}
		}
		if !s.Identity.Same(e.Identity) {
			return State{Identity: e.Identity}
		}
		s.Identity = e.Identity
		return s

	case AdminStatusChecked:
		if !owns(s, e.UID) {
			return s
		}
		s.IsAdmin = e.IsAdmin
		if !e.IsAdmin {
			s.AllRegistrations = nil
			s.Admins = nil
		}
		return s

	case RegistrationsLoaded:
		if !owns(s, e.UID) {
			return s
		}
		s.Registrations = e.Registrations
		return s

	case AllRegistrationsLoaded:
		if !s.IsAdmin {
			return s
		}
		s.AllRegistrations = e.Registrations
		return s

	case AdminsLoaded:
		if !s.IsAdmin {
			return s
		}
		s.Admins = e.Admins
		return s

	case FilterChanged:
		s.Filter = e.Filter
		return s

	case MutationSucceeded:
		s.Message = &Message{Kind: MessageSuccess, Text: e.Message}
		return s

	case OperationFailed:
		s.Message = &Message{Kind: MessageError, Text: e.Message}
		return s
	}

	return s
}

func owns(s State, uid string) bool {
	return s.Identity != nil && s.Identity.UID == uid
}
