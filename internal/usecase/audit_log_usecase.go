package usecase

//go:generate mockgen -source=audit_log_usecase.go -destination=mocks/mock_audit_log_usecase.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"hospital-management/internal/converter"
	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultAuditLogLimit = 100

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
	ErrInvalidDateRange = errors.New("from must not be after to")
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, query *dto.AuditLogListQuery) (*dto.AuditLogListResponse, error) {
	filter, err := auditLogFilter(query)
	if err != nil {
		return nil, err
	}

	logs, err := u.auditLogRepo.Find(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}

func auditLogFilter(query *dto.AuditLogListQuery) (entity.AuditLogFilter, error) {
	filter := entity.AuditLogFilter{
		UserID:       query.UserID,
		ActionPrefix: query.Action,
		Limit:        query.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLogLimit
	}

	if query.From != "" {
		from, err := time.Parse(entity.DateLayout, query.From)
		if err != nil {
			return filter, ErrInvalidDateFormat
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(entity.DateLayout, query.To)
		if err != nil {
			return filter, ErrInvalidDateFormat
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, ErrInvalidDateRange
	}
	return filter, nil
}

// auditUserID is the user recorded on audit entries; nil for anonymous callers.
func auditUserID(actor entity.Actor) *int {
	if actor.UserID == 0 {
		return nil
	}
	id := actor.UserID
	return &id
}
