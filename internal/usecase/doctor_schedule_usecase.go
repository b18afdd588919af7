package usecase

//go:generate mockgen -source=doctor_schedule_usecase.go -destination=mocks/mock_doctor_schedule_usecase.go -package=mocks

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
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrInvalidDayOfWeek  = errors.New("invalid day of week")
	ErrInvalidTimeRange  = errors.New("start_time must be before end_time")
	ErrScheduleDayExists = errors.New("doctor already has a schedule for this day")
	ErrScheduleForbidden = errors.New("not allowed to manage this doctor's schedule")
)

const scheduleDayConstraint = "uq_doctor_schedules_day"

type DoctorScheduleUsecase interface {
	ListByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error)
	CreateSchedule(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, actor entity.Actor, id int) error
}

type doctorScheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.DoctorScheduleRepository
	doctorRepo   repository.DoctorProfileRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorScheduleUsecase) ListByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(ctx, u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules: %+v", err)
		return nil, err
	}

	return &dto.ScheduleListResponse{
		Schedules: converter.SchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, actor entity.Actor, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	day := strings.ToLower(strings.TrimSpace(req.DayOfWeek))
	if !entity.IsValidDayOfWeek(day) {
		return nil, ErrInvalidDayOfWeek
	}
	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !canManageSchedule(actor, doctor) {
		return nil, ErrScheduleForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.scheduleRepo.FindByDoctorAndDay(ctx, tx, doctor.ID, day)
	if err != nil {
		u.log.Warnf("Failed to find doctor schedule: %+v", err)
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrScheduleDayExists
	}

	schedule := &entity.DoctorSchedule{
		DoctorID:  doctor.ID,
		DayOfWeek: day,
		StartTime: start.String(),
		EndTime:   end.String(),
	}

	if err := u.scheduleRepo.Create(ctx, tx, schedule); err != nil {
		if database.IsDuplicateKeyError(err, scheduleDayConstraint) {
			return nil, ErrScheduleDayExists
		}
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditUserID(actor), entity.AuditActionScheduleCreate,
		"doctor_schedule", schedule.ID, converter.ScheduleToResponse(schedule)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) UpdateSchedule(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.findManageable(ctx, tx, actor, id)
	if err != nil {
		return nil, err
	}
	oldValue := converter.ScheduleToResponse(schedule)

	if req.DayOfWeek != nil {
		day := strings.ToLower(strings.TrimSpace(*req.DayOfWeek))
		if !entity.IsValidDayOfWeek(day) {
			return nil, ErrInvalidDayOfWeek
		}
		if day != schedule.DayOfWeek {
			existing, err := u.scheduleRepo.FindByDoctorAndDay(ctx, tx, schedule.DoctorID, day)
			if err != nil {
				u.log.Warnf("Failed to find doctor schedule: %+v", err)
				return nil, err
			}
			if len(existing) > 0 {
				return nil, ErrScheduleDayExists
			}
			schedule.DayOfWeek = day
		}
	}

	startRaw, endRaw := schedule.StartTime, schedule.EndTime
	if req.StartTime != nil {
		startRaw = *req.StartTime
	}
	if req.EndTime != nil {
		endRaw = *req.EndTime
	}
	start, end, err := parseWindow(startRaw, endRaw)
	if err != nil {
		return nil, err
	}
	schedule.StartTime = start.String()
	schedule.EndTime = end.String()

	if err := u.scheduleRepo.Update(ctx, tx, schedule); err != nil {
		if database.IsDuplicateKeyError(err, scheduleDayConstraint) {
			return nil, ErrScheduleDayExists
		}
		u.log.Warnf("Failed to update schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, auditUserID(actor), entity.AuditActionScheduleUpdate,
		"doctor_schedule", schedule.ID, oldValue, converter.ScheduleToResponse(schedule)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) DeleteSchedule(ctx context.Context, actor entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.findManageable(ctx, tx, actor, id)
	if err != nil {
		return err
	}

	affected, err := u.scheduleRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, auditUserID(actor), entity.AuditActionScheduleDelete,
		"doctor_schedule", id, converter.ScheduleToResponse(schedule)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// findManageable loads the schedule and checks the actor may change it.
func (u *doctorScheduleUsecase) findManageable(ctx context.Context, tx *gorm.DB, actor entity.Actor, id int) (*entity.DoctorSchedule, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule: %+v", err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, tx, schedule.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !canManageSchedule(actor, doctor) {
		return nil, ErrScheduleForbidden
	}

	return schedule, nil
}

func canManageSchedule(actor entity.Actor, doctor *entity.DoctorProfile) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Role == entity.RoleDoctor && doctor.UserID == actor.UserID
}

func parseWindow(startRaw, endRaw string) (entity.TimeOfDay, entity.TimeOfDay, error) {
	start, err := entity.ParseTimeOfDay(startRaw)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	end, err := entity.ParseTimeOfDay(endRaw)
	if err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}
	if start >= end {
		return 0, 0, ErrInvalidTimeRange
	}
	return start, end, nil
}
