package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

// profileRepository writes whichever RoleProfile variant it is given; gorm
// resolves the table from the concrete type.
type profileRepository struct{}

func NewProfileRepository() domainRepo.ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error {
	return db.WithContext(ctx).Omit("User", "Schedules").Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, db *gorm.DB, role string, userID int) (entity.RoleProfile, error) {
	profile := entity.NewRoleProfile(role)
	if profile == nil {
		return nil, fmt.Errorf("role %q has no profile", role)
	}
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, db *gorm.DB, profile entity.RoleProfile) error {
	return db.WithContext(ctx).Omit("User", "Schedules").Save(profile).Error
}
