package entity

import "time"

// AuditLogFilter narrows an audit log query. Zero values match everything.
type AuditLogFilter struct {
	UserID       int
	ActionPrefix string // e.g. "appointment." matches every appointment action
	From         *time.Time
	To           *time.Time // exclusive
	Limit        int
}
