package usecase

//go:generate mockgen -source=user_usecase.go -destination=mocks/mock_user_usecase.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"
	"hospital-management/internal/infrastructure/database"
	"hospital-management/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrRoleChangeNotAllowed = errors.New("changing a user's role is not allowed")
	ErrCannotDeleteSelf     = errors.New("cannot delete your own account")
)

type UserUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id int) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actor entity.Actor, id int) error
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	doctorRepo   repository.DoctorProfileRepository
	patientRepo  repository.PatientProfileRepository
	sessions     service.SessionStore
	auditService service.AuditService
	bcryptCost   int
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	sessions service.SessionStore,
	auditService service.AuditService,
	bcryptCost int,
) UserUsecase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		doctorRepo:   doctorRepo,
		patientRepo:  patientRepo,
		sessions:     sessions,
		auditService: auditService,
		bcryptCost:   bcryptCost,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// UpdateUser applies a partial update to the account and its role profile.
// A password change revokes every session of the user.
func (u *userUsecase) UpdateUser(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Role != nil && *req.Role != user.Role {
		return nil, ErrRoleChangeNotAllowed
	}

	oldValue := converter.UserToResponse(user)

	username, email := user.Username, user.Email
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if username != user.Username || email != user.Email {
		exists, err := u.userRepo.ExistsByUsernameOrEmail(ctx, tx, username, email, user.ID)
		if err != nil {
			u.log.Warnf("Failed to check existing user: %+v", err)
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateUser
		}
		user.Username = username
		user.Email = email
	}

	passwordChanged := false
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), u.bcryptCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
		passwordChanged = true
	}

	if err := u.userRepo.Update(ctx, tx, user); err != nil {
		if database.IsDuplicateKeyError(err, "") {
			return nil, ErrDuplicateUser
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	fields := converter.ProfileRequestToFields(req.ProfileRequest)
	if hasProfileFields(fields) {
		if err := u.saveProfile(ctx, tx, user, fields); err != nil {
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, auditUserID(actor), entity.AuditActionUserUpdate,
		"user", user.ID, oldValue, converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if passwordChanged {
		if err := u.sessions.RevokeAll(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke sessions of user %d: %+v", user.ID, err)
		}
	}

	updated, err := u.userRepo.FindByID(ctx, u.db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to reload user: %+v", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(updated), nil
}

// saveProfile updates the existing profile, or creates the missing one.
func (u *userUsecase) saveProfile(ctx context.Context, tx *gorm.DB, user *entity.User, fields entity.ProfileFields) error {
	profile := user.Profile()
	if profile == nil {
		built, err := entity.BuildRoleProfile(user.Role, fields)
		if err != nil {
			return ErrInvalidProfile
		}
		if built == nil {
			// admin
			return nil
		}
		built.SetOwner(user.ID)
		if err := u.profileRepo.Create(ctx, tx, built); err != nil {
			u.log.Warnf("Failed to create %s profile: %+v", user.Role, err)
			return err
		}
		attachProfile(user, built)
		return nil
	}

	if err := profile.Apply(fields); err != nil {
		return ErrInvalidProfile
	}
	if err := u.profileRepo.Update(ctx, tx, profile); err != nil {
		u.log.Warnf("Failed to update %s profile: %+v", user.Role, err)
		return err
	}
	return nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, actor entity.Actor, id int) error {
	if actor.UserID == id {
		return ErrCannotDeleteSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	affected, err := u.userRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, auditUserID(actor), entity.AuditActionUserDelete,
		"user", id, converter.UserToResponse(user)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.sessions.RevokeAll(ctx, id); err != nil {
		u.log.Warnf("Failed to revoke sessions of user %d: %+v", id, err)
	}

	return nil
}

func (u *userUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorProfilesToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *userUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientProfilesToResponses(patients),
		Total:    len(patients),
	}, nil
}

func hasProfileFields(f entity.ProfileFields) bool {
	return f.FirstName != nil || f.LastName != nil || f.Phone != nil ||
		f.Specialization != nil || f.Qualification != nil || f.ConsultationFee != nil ||
		f.DateOfBirth != nil || f.BloodGroup != nil || f.Address != nil
}
