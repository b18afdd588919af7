package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// ProfileRequest carries role-specific profile fields. It is embedded so the
// fields sit at the top level of register and update bodies.
type ProfileRequest struct {
	FirstName       *string          `json:"first_name" validate:"omitempty,max=100"`
	LastName        *string          `json:"last_name" validate:"omitempty,max=100"`
	Phone           *string          `json:"phone" validate:"omitempty,max=20"`
	Specialization  *string          `json:"specialization" validate:"omitempty,max=100"`
	Qualification   *string          `json:"qualification" validate:"omitempty,max=100"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee"`
	DateOfBirth     *string          `json:"date_of_birth"` // Format: YYYY-MM-DD
	BloodGroup      *string          `json:"blood_group" validate:"omitempty,max=5"`
	Address         *string          `json:"address"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
	ProfileRequest
}

// LoginRequest accepts either the username or the email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token        string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type UserResponse struct {
	ID        int              `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProfileResponse is the flattened satellite profile of any role.
type ProfileResponse struct {
	ID              int              `json:"id"`
	FirstName       string           `json:"first_name"`
	LastName        string           `json:"last_name"`
	Phone           string           `json:"phone,omitempty"`
	Specialization  string           `json:"specialization,omitempty"`
	Qualification   string           `json:"qualification,omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee,omitempty"`
	DateOfBirth     string           `json:"date_of_birth,omitempty"`
	BloodGroup      string           `json:"blood_group,omitempty"`
	Address         string           `json:"address,omitempty"`
}
