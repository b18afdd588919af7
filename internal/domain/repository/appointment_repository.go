package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	// ExistsActiveAt reports whether a non-cancelled appointment occupies the slot.
	ExistsActiveAt(ctx context.Context, db *gorm.DB, doctorID int, date string, timeOfDay string) (bool, error)
	// UpdateStatus sets status and, when notes is non-nil, notes, but only while
	// the stored status still equals from. It returns the affected row count.
	UpdateStatus(ctx context.Context, db *gorm.DB, id int, from, to entity.AppointmentStatus, notes *string) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
