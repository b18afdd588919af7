package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	Create(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorSchedule, error)
	FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.DoctorSchedule, error)
	FindByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID int, dayOfWeek string) ([]entity.DoctorSchedule, error)
	Update(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
