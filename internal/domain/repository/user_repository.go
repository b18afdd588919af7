package repository

import (
	"context"

	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.User, error)
	FindByLogin(ctx context.Context, db *gorm.DB, login string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, db *gorm.DB, username, email string, excludeID int) (bool, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
	Delete(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
