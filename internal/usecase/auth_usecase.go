package usecase

//go:generate mockgen -source=auth_usecase.go -destination=mocks/mock_auth_usecase.go -package=mocks

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
	"hospital-management/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidProfile     = errors.New("invalid profile data")
	ErrRoleNotAllowed     = errors.New("only administrators may register this role")
)

type AuthUsecase interface {
	// Register creates the user and its role profile. actor is nil for
	// anonymous callers, who may only register patients.
	Register(ctx context.Context, actor *entity.Actor, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	jwtService   *jwt.JWTService
	sessions     service.SessionStore
	auditService service.AuditService
	bcryptCost   int
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
	auditService service.AuditService,
	bcryptCost int,
) AuthUsecase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		jwtService:   jwtService,
		sessions:     sessions,
		auditService: auditService,
		bcryptCost:   bcryptCost,
	}
}

func (u *authUsecase) Register(ctx context.Context, actor *entity.Actor, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !entity.IsValidRole(req.Role) {
		return nil, ErrRoleNotAllowed
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := u.userRepo.ExistsByUsernameOrEmail(ctx, u.db, username, email, 0)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUser
	}
	if req.Role != entity.RolePatient && (actor == nil || !actor.IsAdmin()) {
		return nil, ErrRoleNotAllowed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		if database.IsDuplicateKeyError(err, "") {
			return nil, ErrDuplicateUser
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	// Admins have no profile; every other role gets exactly one.
	profile, err := entity.BuildRoleProfile(user.Role, converter.ProfileRequestToFields(req.ProfileRequest))
	if err != nil {
		return nil, ErrInvalidProfile
	}
	if profile != nil {
		profile.SetOwner(user.ID)
		if err := u.profileRepo.Create(ctx, tx, profile); err != nil {
			u.log.Warnf("Failed to create %s profile: %+v", user.Role, err)
			return nil, err
		}
		attachProfile(user, profile)
	}

	var auditActor *int
	if actor != nil {
		auditActor = auditUserID(*actor)
	} else {
		auditActor = &user.ID
	}
	if err := u.auditService.LogCreate(ctx, tx, auditActor, entity.AuditActionUserRegister,
		"user", user.ID, converter.UserToResponse(user)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// Read-only, no transaction needed
	user, err := u.userRepo.FindByLogin(ctx, u.db, strings.TrimSpace(req.Username))
	if err != nil {
		u.log.Warnf("Failed to find user by login: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID, nil)

	return resp, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID int, accessTokenID, refreshTokenID string) error {
	if err := u.sessions.Revoke(ctx, userID, service.SessionAccess, accessTokenID); err != nil {
		return err
	}
	if refreshTokenID != "" {
		if err := u.sessions.Revoke(ctx, userID, service.SessionRefresh, refreshTokenID); err != nil {
			return err
		}
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, "user", userID, nil)

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.sessions.Exists(ctx, claims.UserID, service.SessionRefresh, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use.
	if err := u.sessions.Revoke(ctx, claims.UserID, service.SessionRefresh, claims.TokenID); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, u.db, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	subject := jwt.Subject{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(subject)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Store(ctx, user.ID, service.SessionAccess, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		return nil, err
	}
	if err := u.sessions.Store(ctx, user.ID, service.SessionRefresh, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:         converter.UserToResponse(user),
	}, nil
}

// attachProfile stores profile on the matching relation field of user.
func attachProfile(user *entity.User, profile entity.RoleProfile) {
	switch p := profile.(type) {
	case *entity.DoctorProfile:
		user.DoctorProfile = p
	case *entity.PatientProfile:
		user.PatientProfile = p
	case *entity.ReceptionistProfile:
		user.ReceptionistProfile = p
	}
}
