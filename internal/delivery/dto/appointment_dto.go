package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int    `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"required"` // Format: HH:MM or HH:MM:SS
	Reason          string `json:"reason" validate:"omitempty,max=1000"`
}

// UpdateAppointmentStatusRequest leaves the stored notes alone when Notes is nil.
type UpdateAppointmentStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

type AppointmentListQuery struct {
	DoctorID  int    `json:"doctor_id" validate:"omitempty,gt=0"`
	PatientID int    `json:"patient_id" validate:"omitempty,gt=0"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,apptstatus"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	DoctorID        int       `json:"doctor_id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	Specialization  string    `json:"specialization,omitempty"`
	PatientName     string    `json:"patient_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
