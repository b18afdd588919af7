package dto

import "time"

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,timeofday"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required,timeofday"`   // Format: HH:MM
}

type UpdateScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week" validate:"omitempty,dayofweek"`
	StartTime *string `json:"start_time" validate:"omitempty,timeofday"`
	EndTime   *string `json:"end_time" validate:"omitempty,timeofday"`
}

// Response DTOs

type ScheduleResponse struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"doctor_id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
