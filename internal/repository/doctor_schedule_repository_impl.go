package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorScheduleRepository struct{}

func NewDoctorScheduleRepository() domainRepo.DoctorScheduleRepository {
	return &doctorScheduleRepository{}
}

func (r *doctorScheduleRepository) Create(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.WithContext(ctx).Omit("Doctor").Create(schedule).Error
}

func (r *doctorScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorSchedule, error) {
	var schedule entity.DoctorSchedule
	err := db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *doctorScheduleRepository) FindByDoctorID(ctx context.Context, db *gorm.DB, doctorID int) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("id ASC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

// FindByDoctorAndDay returns every row for the day so callers can detect
// ambiguous duplicates instead of silently picking one.
func (r *doctorScheduleRepository) FindByDoctorAndDay(ctx context.Context, db *gorm.DB, doctorID int, dayOfWeek string) ([]entity.DoctorSchedule, error) {
	var schedules []entity.DoctorSchedule
	err := db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		Order("id ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *doctorScheduleRepository) Update(ctx context.Context, db *gorm.DB, schedule *entity.DoctorSchedule) error {
	return db.WithContext(ctx).Omit("Doctor").Save(schedule).Error
}

func (r *doctorScheduleRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DoctorSchedule{})
	return result.RowsAffected, result.Error
}
