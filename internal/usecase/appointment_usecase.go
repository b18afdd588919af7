package usecase

//go:generate mockgen -source=appointment_usecase.go -destination=mocks/mock_appointment_usecase.go -package=mocks

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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrDoctorNotFound           = errors.New("doctor not found")
	ErrPatientNotFound          = errors.New("patient not found")
	ErrDoctorUnavailableThisDay = errors.New("doctor is not available on this day")
	ErrScheduleAmbiguous        = errors.New("doctor has more than one schedule for this day")
	ErrOutsideWorkingHours      = errors.New("appointment time is outside doctor's working hours")
	ErrSlotAlreadyBooked        = errors.New("this time slot is already booked")
	ErrSlotLocked               = service.ErrSlotLocked
	ErrInvalidDateFormat        = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat        = errors.New("invalid time format, use HH:MM or HH:MM:SS")
	ErrInvalidStatus            = errors.New("invalid appointment status")
	ErrInvalidTransition        = errors.New("appointment status transition not allowed")
	ErrAppointmentForbidden     = errors.New("not allowed to access this appointment")
)

const activeSlotConstraint = "active_slot"

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, actor entity.Actor, query *dto.AppointmentListQuery) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, actor entity.Actor, id int) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, actor entity.Actor, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	scheduleRepo    repository.DoctorScheduleRepository
	slotLocker      service.SlotLocker
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	scheduleRepo repository.DoctorScheduleRepository,
	slotLocker service.SlotLocker,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		scheduleRepo:    scheduleRepo,
		slotLocker:      slotLocker,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, actor entity.Actor, query *dto.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	filter := entity.AppointmentFilter{
		DoctorID:  query.DoctorID,
		PatientID: query.PatientID,
		Date:      query.Date,
		Status:    entity.AppointmentStatus(query.Status),
	}

	// Patients only ever see their own appointments.
	if actor.Role == entity.RolePatient {
		patient, err := u.patientRepo.FindByUserID(ctx, u.db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return nil, err
		}
		if patient == nil {
			return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
		}
		if filter.PatientID != 0 && filter.PatientID != patient.ID {
			return nil, ErrAppointmentForbidden
		}
		filter.PatientID = patient.ID
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, actor entity.Actor, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if actor.Role == entity.RolePatient {
		owns, err := u.ownsAppointment(ctx, actor, appointment)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrAppointmentForbidden
		}
	}

	return converter.AppointmentToResponse(appointment), nil
}

// CreateAppointment validates the booking against the doctor's weekly
// schedule and inserts it. The first failing check decides the error.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := entity.ParseDate(strings.TrimSpace(req.AppointmentDate))
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	slotTime, err := entity.ParseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	doctor, err := u.doctorRepo.FindByID(ctx, u.db, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if actor.Role == entity.RolePatient && patient.UserID != actor.UserID {
		return nil, ErrAppointmentForbidden
	}

	schedules, err := u.scheduleRepo.FindByDoctorAndDay(ctx, u.db, doctor.ID, entity.DayOfWeek(date))
	if err != nil {
		u.log.Warnf("Failed to find doctor schedule: %+v", err)
		return nil, err
	}
	switch len(schedules) {
	case 0:
		return nil, ErrDoctorUnavailableThisDay
	case 1:
	default:
		u.log.Warnf("Doctor %d has %d schedules on %s", doctor.ID, len(schedules), entity.DayOfWeek(date))
		return nil, ErrScheduleAmbiguous
	}

	within, err := schedules[0].Covers(slotTime)
	if err != nil {
		u.log.Warnf("Failed to read schedule window: %+v", err)
		return nil, err
	}
	if !within {
		return nil, ErrOutsideWorkingHours
	}

	key := service.SlotKey{
		DoctorID: doctor.ID,
		Date:     date.Format(entity.DateLayout),
		Time:     slotTime.String(),
	}
	lockToken, err := u.slotLocker.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = u.slotLocker.Release(context.WithoutCancel(ctx), key, lockToken)
	}()

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Serialize bookings for this doctor until commit.
	if err := u.doctorRepo.LockByID(ctx, tx, doctor.ID); err != nil {
		u.log.Warnf("Failed to lock doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	taken, err := u.appointmentRepo.ExistsActiveAt(ctx, tx, doctor.ID, key.Date, key.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if taken {
		return nil, ErrSlotAlreadyBooked
	}

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		AppointmentDate: date,
		AppointmentTime: key.Time,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          strings.TrimSpace(req.Reason),
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		if database.IsDuplicateKeyError(err, activeSlotConstraint) {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, auditUserID(actor), entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID, converter.AppointmentToResponse(appointment)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Doctor = doctor
	appointment.Patient = patient
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id int, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	next := entity.AppointmentStatus(strings.TrimSpace(req.Status))
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.authorizeStatusChange(ctx, actor, appointment, next); err != nil {
		return nil, err
	}

	current := appointment.Status
	if !current.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Conditional on the status read above; a concurrent change wins.
	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, id, current, next, req.Notes)
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	oldValue := map[string]interface{}{"status": current, "notes": appointment.Notes}
	appointment.Status = next
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	newValue := map[string]interface{}{"status": next, "notes": appointment.Notes}

	if err := u.auditService.LogUpdate(ctx, tx, auditUserID(actor), entity.AuditActionAppointmentStatus,
		"appointment", id, oldValue, newValue); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, actor entity.Actor, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, auditUserID(actor), entity.AuditActionAppointmentDelete,
		"appointment", id, converter.AppointmentToResponse(appointment)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// authorizeStatusChange lets patients cancel their own appointments and
// doctors move their own. Admins and receptionists may change any.
func (u *appointmentUsecase) authorizeStatusChange(ctx context.Context, actor entity.Actor, appointment *entity.Appointment, next entity.AppointmentStatus) error {
	switch actor.Role {
	case entity.RolePatient:
		owns, err := u.ownsAppointment(ctx, actor, appointment)
		if err != nil {
			return err
		}
		if !owns || next != entity.AppointmentStatusCancelled {
			return ErrAppointmentForbidden
		}
	case entity.RoleDoctor:
		doctor, err := u.doctorRepo.FindByUserID(ctx, u.db, actor.UserID)
		if err != nil {
			u.log.Warnf("Failed to find doctor profile: %+v", err)
			return err
		}
		if doctor == nil || doctor.ID != appointment.DoctorID {
			return ErrAppointmentForbidden
		}
	}
	return nil
}

func (u *appointmentUsecase) ownsAppointment(ctx context.Context, actor entity.Actor, appointment *entity.Appointment) (bool, error) {
	patient, err := u.patientRepo.FindByUserID(ctx, u.db, actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return false, err
	}
	return patient != nil && patient.ID == appointment.PatientID, nil
}
