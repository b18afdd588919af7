package repository

import (
	"context"
	"errors"

	"hospital-management/internal/domain/entity"
	domainRepo "hospital-management/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func withProfiles(db *gorm.DB) *gorm.DB {
	return db.Preload("DoctorProfile").Preload("PatientProfile").Preload("ReceptionistProfile")
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit("DoctorProfile", "PatientProfile", "ReceptionistProfile").Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error) {
	var user entity.User
	err := withProfiles(db.WithContext(ctx)).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByLogin matches either the username or the email address.
func (r *userRepository) FindByLogin(ctx context.Context, db *gorm.DB, login string) (*entity.User, error) {
	var user entity.User
	err := withProfiles(db.WithContext(ctx)).
		Where("username = ? OR email = ?", login, login).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, db *gorm.DB, username, email string, excludeID int) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&entity.User{}).Where("username = ? OR email = ?", username, email)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := withProfiles(db.WithContext(ctx)).Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit("DoctorProfile", "PatientProfile", "ReceptionistProfile").Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}
