package dto

type SignInRequest struct {
	IDToken      string `json:"id_token"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type RegisterRequest struct {
	BootcampID  int    `json:"bootcamp_id"  binding:"required,gt=0"`
	Schedule    string `json:"schedule"`
	StartDate   string `json:"start_date"`
	PaymentPlan string `json:"payment_plan"`
}

// Version, when present, makes the update conditional on the record not
// having changed since it was read.
type StatusRequest struct {
	Status  string `json:"status"  binding:"required"`
	Version *int   `json:"version" binding:"omitempty,gt=0"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
	Version       *int   `json:"version"        binding:"omitempty,gt=0"`
}

type NotesRequest struct {
	Notes   *string `json:"notes"   binding:"required"`
	Version *int    `json:"version" binding:"omitempty,gt=0"`
}

type AddAdminRequest struct {
	Email string `json:"email"`
}

type FilterQuery struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	Payment string `form:"payment"`
}
