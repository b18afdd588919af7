package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-management/internal/delivery/dto"
	"hospital-management/internal/domain/entity"
	"hospital-management/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/mock/gomock"
)

type scheduleFixture struct {
	uc        DoctorScheduleUsecase
	mock      sqlmock.Sqlmock
	schedules *fakeScheduleRepo
	audit     *mocks.MockAuditService
}

// Doctor 1 belongs to user 10, doctor 2 to user 11.
func newScheduleFixture(t *testing.T, schedules ...entity.DoctorSchedule) *scheduleFixture {
	t.Helper()
	db, mock := newMockDB(t)
	ctrl := gomock.NewController(t)

	f := &scheduleFixture{
		mock:      mock,
		schedules: newFakeScheduleRepo(schedules...),
		audit:     mocks.NewMockAuditService(ctrl),
	}
	doctors := newFakeDoctorRepo(
		entity.DoctorProfile{ID: 1, UserID: 10},
		entity.DoctorProfile{ID: 2, UserID: 11},
	)
	f.uc = NewDoctorScheduleUsecase(db, newTestLogger(), f.schedules, doctors, f.audit)
	return f
}

func TestCreateScheduleNormalisesTimes(t *testing.T) {
	f := newScheduleFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.audit.EXPECT().
		LogCreate(gomock.Any(), gomock.Any(), gomock.Any(), entity.AuditActionScheduleCreate, "doctor_schedule", gomock.Any(), gomock.Any()).
		Return(nil)

	resp, err := f.uc.CreateSchedule(context.Background(), doctorActor, &dto.CreateScheduleRequest{
		DoctorID:  1,
		DayOfWeek: "Monday",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.DayOfWeek != entity.Monday || resp.StartTime != "09:00:00" || resp.EndTime != "17:00:00" {
		t.Errorf("unexpected schedule: %+v", resp)
	}
	assertExpectations(t, f.mock)
}

func TestCreateScheduleRejections(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		req     dto.CreateScheduleRequest
		wantErr error
	}{
		{"end before start", adminActor, dto.CreateScheduleRequest{DoctorID: 1, DayOfWeek: "monday", StartTime: "17:00", EndTime: "09:00"}, ErrInvalidTimeRange},
		{"empty window", adminActor, dto.CreateScheduleRequest{DoctorID: 1, DayOfWeek: "monday", StartTime: "09:00", EndTime: "09:00:00"}, ErrInvalidTimeRange},
		{"bad time", adminActor, dto.CreateScheduleRequest{DoctorID: 1, DayOfWeek: "monday", StartTime: "9am", EndTime: "17:00"}, ErrInvalidTimeFormat},
		{"bad day", adminActor, dto.CreateScheduleRequest{DoctorID: 1, DayOfWeek: "funday", StartTime: "09:00", EndTime: "17:00"}, ErrInvalidDayOfWeek},
		{"unknown doctor", adminActor, dto.CreateScheduleRequest{DoctorID: 9, DayOfWeek: "monday", StartTime: "09:00", EndTime: "17:00"}, ErrDoctorNotFound},
		{"other doctor", doctorActor, dto.CreateScheduleRequest{DoctorID: 2, DayOfWeek: "monday", StartTime: "09:00", EndTime: "17:00"}, ErrScheduleForbidden},
		{"patient", patientActor, dto.CreateScheduleRequest{DoctorID: 1, DayOfWeek: "monday", StartTime: "09:00", EndTime: "17:00"}, ErrScheduleForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScheduleFixture(t)

			_, err := f.uc.CreateSchedule(context.Background(), tt.actor, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(f.schedules.schedules) != 0 {
				t.Error("expected nothing stored")
			}
			assertExpectations(t, f.mock)
		})
	}
}

func TestCreateScheduleDuplicateDay(t *testing.T) {
	f := newScheduleFixture(t, entity.DoctorSchedule{DoctorID: 1, DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"})
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.CreateSchedule(context.Background(), adminActor, &dto.CreateScheduleRequest{
		DoctorID: 1, DayOfWeek: "monday", StartTime: "13:00", EndTime: "17:00",
	})
	if !errors.Is(err, ErrScheduleDayExists) {
		t.Fatalf("expected ErrScheduleDayExists, got %v", err)
	}
	assertExpectations(t, f.mock)
}

func TestUpdateSchedulePartial(t *testing.T) {
	f := newScheduleFixture(t, entity.DoctorSchedule{DoctorID: 1, DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"})
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	f.audit.EXPECT().
		LogUpdate(gomock.Any(), gomock.Any(), gomock.Any(), entity.AuditActionScheduleUpdate, "doctor_schedule", 1, gomock.Any(), gomock.Any()).
		Return(nil)

	end := "18:30"
	resp, err := f.uc.UpdateSchedule(context.Background(), doctorActor, 1, &dto.UpdateScheduleRequest{EndTime: &end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StartTime != "09:00:00" || resp.EndTime != "18:30:00" {
		t.Errorf("unexpected window %s-%s", resp.StartTime, resp.EndTime)
	}

	start := "19:00"
	if _, err := f.uc.UpdateSchedule(context.Background(), doctorActor, 1, &dto.UpdateScheduleRequest{StartTime: &start}); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
	if f.schedules.schedules[1].StartTime != "09:00:00" {
		t.Error("invalid update was stored")
	}
	assertExpectations(t, f.mock)
}

func TestUpdateScheduleForbiddenForOtherDoctor(t *testing.T) {
	f := newScheduleFixture(t, entity.DoctorSchedule{DoctorID: 2, DayOfWeek: entity.Friday, StartTime: "09:00:00", EndTime: "12:00:00"})
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	end := "13:00"
	_, err := f.uc.UpdateSchedule(context.Background(), doctorActor, 1, &dto.UpdateScheduleRequest{EndTime: &end})
	if !errors.Is(err, ErrScheduleForbidden) {
		t.Fatalf("expected ErrScheduleForbidden, got %v", err)
	}
	assertExpectations(t, f.mock)
}

func TestDeleteSchedule(t *testing.T) {
	f := newScheduleFixture(t, entity.DoctorSchedule{DoctorID: 1, DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"})
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	f.audit.EXPECT().
		LogDelete(gomock.Any(), gomock.Any(), gomock.Any(), entity.AuditActionScheduleDelete, "doctor_schedule", 1, gomock.Any()).
		Return(nil)

	if err := f.uc.DeleteSchedule(context.Background(), adminActor, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.uc.DeleteSchedule(context.Background(), adminActor, 1); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("expected ErrScheduleNotFound, got %v", err)
	}
	assertExpectations(t, f.mock)
}

func TestListByDoctor(t *testing.T) {
	f := newScheduleFixture(t,
		entity.DoctorSchedule{DoctorID: 1, DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"},
		entity.DoctorSchedule{DoctorID: 1, DayOfWeek: entity.Tuesday, StartTime: "09:00:00", EndTime: "12:00:00"},
		entity.DoctorSchedule{DoctorID: 2, DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"},
	)

	resp, err := f.uc.ListByDoctor(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("expected 2 schedules, got %d", resp.Total)
	}
	if _, err := f.uc.ListByDoctor(context.Background(), 9); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}
