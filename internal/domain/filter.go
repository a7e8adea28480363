package domain

import "strings"

// FilterAll is the wildcard for the status and payment filters.
const FilterAll = "all"

type RegistrationFilter struct {
	Search  string `json:"search"`
	Status  string `json:"status"`
	Payment string `json:"payment"`
}

func (f RegistrationFilter) normalized() RegistrationFilter {
	n := RegistrationFilter{
		Search:  strings.ToLower(strings.TrimSpace(f.Search)),
		Status:  strings.TrimSpace(f.Status),
		Payment: strings.TrimSpace(f.Payment),
	}
	if n.Status == "" {
		n.Status = FilterAll
	}
	if n.Payment == "" {
		n.Payment = FilterAll
	}
	return n
}

func (f RegistrationFilter) Validate() error {
	n := f.normalized()
	if n.Status != FilterAll && !RegistrationStatus(n.Status).Valid() {
		return ErrInvalidStatus
	}
	if n.Payment != FilterAll && !PaymentStatus(n.Payment).Valid() {
		return ErrInvalidPaymentStatus
	}
	return nil
}

func (f RegistrationFilter) Match(r *Registration) bool {
	return f.normalized().match(r)
}

func (f RegistrationFilter) match(r *Registration) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(r.UserEmail), f.Search) &&
		!strings.Contains(strings.ToLower(r.BootcampName), f.Search) {
		return false
	}
	if f.Status != FilterAll && string(r.Status) != f.Status {
		return false
	}
	if f.Payment != FilterAll && string(r.PaymentStatus) != f.Payment {
		return false
	}
	return true
}

// Apply keeps the matching registrations in their original order.
func (f RegistrationFilter) Apply(regs []*Registration) []*Registration {
	n := f.normalized()
	res := make([]*Registration, 0, len(regs))
	for _, r := range regs {
		if n.match(r) {
			res = append(res, r)
		}
	}
	return res
}
