package domain

// Confirmation is the thank-you email payload sent after a registration.
type Confirmation struct {
	To           string `json:"to"`
	ToName       string `json:"to_name"`
	BootcampName string `json:"bootcamp_name"`
	Schedule     string `json:"schedule"`
	StartDate    string `json:"start_date"`
}

// NewConfirmation fills the payload from the stored registration. The
// schedule is shown with its human readable range when the bootcamp has one.
func NewConfirmation(reg *Registration, b *Bootcamp) Confirmation {
	schedule := string(reg.Schedule)
	if b != nil {
		if label, ok := b.Schedule[reg.Schedule]; ok {
			schedule = label
		}
	}

	return Confirmation{
		To:           reg.UserEmail,
		ToName:       DisplayName(reg.UserEmail),
		BootcampName: reg.BootcampName,
		Schedule:     schedule,
		StartDate:    reg.StartDate,
	}
}
