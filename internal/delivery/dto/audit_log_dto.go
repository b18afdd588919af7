package dto

import (
	"time"

	"hospital-management/internal/domain/entity"
)

// Request DTOs

// AuditLogListQuery filters GET /audit-logs. From and To are inclusive dates.
type AuditLogListQuery struct {
	UserID int    `json:"user_id" validate:"omitempty,gt=0"`
	Action string `json:"action" validate:"omitempty,max=100"`
	From   string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Limit  int    `json:"limit" validate:"omitempty,gt=0,lte=500"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	UserID    *int          `json:"user_id,omitempty"`
	User      *UserResponse `json:"user,omitempty"`
	Action    string        `json:"action"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
