package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

// ProfileRepository persists any RoleProfile variant in its satellite table.
type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error
	FindByUserID(ctx context.Context, db *gorm.DB, role string, userID int) (entity.RoleProfile, error)
	Update(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error
}

type DoctorProfileRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.DoctorProfile, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.DoctorProfile, error)
	// LockByID takes a row lock on the doctor for the rest of the transaction.
	LockByID(ctx context.Context, tx *gorm.DB, id int) error
}

type PatientProfileRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.PatientProfile, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID int) (*entity.PatientProfile, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.PatientProfile, error)
}
