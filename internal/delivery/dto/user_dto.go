package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,role"`
	ProfileRequest
}

// Response DTOs

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type DoctorResponse struct {
	ID              int                `json:"id"`
	UserID          int                `json:"user_id"`
	Email           string             `json:"email,omitempty"`
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	FullName        string             `json:"full_name"`
	Specialization  string             `json:"specialization"`
	Qualification   string             `json:"qualification"`
	Phone           string             `json:"phone"`
	ConsultationFee decimal.Decimal    `json:"consultation_fee"`
	Schedules       []ScheduleResponse `json:"schedules,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type PatientResponse struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Address     string `json:"address,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
