package dto

import (
	"time"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/session"
)

type BootcampResponse struct {
	*domain.Bootcamp
	ScheduleOptions []domain.ScheduleKey `json:"schedule_options"`
	NextStartDate   string               `json:"next_start_date"`
}

type IdentityResponse struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name"`
}

type SessionResponse struct {
	Identity  IdentityResponse `json:"identity"`
	IsAdmin   bool             `json:"is_admin"`
	ExpiresAt string           `json:"expires_at"`
	Message   string           `json:"message,omitempty"`
}

type RegistrationResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	UserEmail     string `json:"user_email"`
	BootcampID    int    `json:"bootcamp_id"`
	BootcampName  string `json:"bootcamp_name"`
	Schedule      string `json:"schedule"`
	StartDate     string `json:"start_date"`
	PaymentPlan   string `json:"payment_plan"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
	Version       int    `json:"version"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Message       string                 `json:"message,omitempty"`
}

type SubmitResponse struct {
	Registration  RegistrationResponse   `json:"registration"`
	Registrations []RegistrationResponse `json:"registrations"`
	Message       string                 `json:"message"`
}

type AdminResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AdminListResponse struct {
	Admins  []AdminResponse `json:"admins"`
	Message string          `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ToBootcampResponse(b *domain.Bootcamp) BootcampResponse {
	return BootcampResponse{
		Bootcamp:        b,
		ScheduleOptions: b.ScheduleOptions(),
		NextStartDate:   b.NextStartDate(),
	}
}

func ToSessionResponse(s *session.Session, isAdmin bool, message string) SessionResponse {
	return SessionResponse{
		Identity: IdentityResponse{
			UID:         s.Identity.UID,
			Email:       s.Identity.Email,
			Name:        s.Identity.Name,
			DisplayName: domain.DisplayName(s.Identity.Email),
		},
		IsAdmin:   isAdmin,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		Message:   message,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserEmail:     r.UserEmail,
		BootcampID:    r.BootcampID,
		BootcampName:  r.BootcampName,
		Schedule:      string(r.Schedule),
		StartDate:     r.StartDate,
		PaymentPlan:   r.PaymentPlan,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		Notes:         r.Notes,
		Version:       r.Version,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationList(regs []*domain.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, ToRegistrationResponse(r))
	}
	return resp
}

func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToAdminList(admins []*domain.Admin) []AdminResponse {
	resp := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, ToAdminResponse(a))
	}
	return resp
}
