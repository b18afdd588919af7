package converter

import (
	"testing"
	"time"

	"hospital-management/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestUserToResponseIncludesRoleProfile(t *testing.T) {
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	user := &entity.User{
		ID:       3,
		Username: "pat",
		Role:     entity.RolePatient,
		PatientProfile: &entity.PatientProfile{
			ID:          8,
			FirstName:   "Pat",
			DateOfBirth: &dob,
		},
		// A stale doctor profile must not leak into a patient's response.
		DoctorProfile: &entity.DoctorProfile{ID: 99, Specialization: "cardiology"},
	}

	resp := UserToResponse(user)
	if resp.Profile == nil {
		t.Fatal("expected profile")
	}
	if resp.Profile.ID != 8 || resp.Profile.DateOfBirth != "1990-05-17" {
		t.Errorf("unexpected profile: %+v", resp.Profile)
	}
	if resp.Profile.Specialization != "" {
		t.Errorf("doctor fields leaked: %+v", resp.Profile)
	}
}

func TestUserToResponseAdminHasNoProfile(t *testing.T) {
	resp := UserToResponse(&entity.User{ID: 1, Role: entity.RoleAdmin})
	if resp.Profile != nil {
		t.Errorf("expected no profile, got %+v", resp.Profile)
	}
}

func TestAppointmentToResponse(t *testing.T) {
	notes := "bring x-rays"
	appt := &entity.Appointment{
		ID:              11,
		PatientID:       2,
		DoctorID:        5,
		AppointmentDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00:00",
		Status:          entity.AppointmentStatusScheduled,
		Notes:           &notes,
		Doctor:          &entity.DoctorProfile{FirstName: "Ann", LastName: "Lee", Specialization: "cardiology"},
		Patient:         &entity.PatientProfile{FirstName: "Bob"},
	}

	resp := AppointmentToResponse(appt)
	if resp.AppointmentDate != "2024-01-01" || resp.AppointmentTime != "10:00:00" {
		t.Errorf("unexpected slot: %s %s", resp.AppointmentDate, resp.AppointmentTime)
	}
	if resp.DoctorName != "Ann Lee" || resp.PatientName != "Bob" || resp.Specialization != "cardiology" {
		t.Errorf("unexpected names: %+v", resp)
	}
	if resp.Status != "scheduled" || resp.Notes == nil || *resp.Notes != notes {
		t.Errorf("unexpected status or notes: %+v", resp)
	}
}

func TestDoctorProfileToResponse(t *testing.T) {
	resp := DoctorProfileToResponse(&entity.DoctorProfile{
		ID:              4,
		FirstName:       "Ann",
		LastName:        "Lee",
		ConsultationFee: decimal.RequireFromString("150.50"),
		User:            &entity.User{Email: "ann@example.com"},
		Schedules:       []entity.DoctorSchedule{{ID: 1, DayOfWeek: entity.Monday}},
	})

	if resp.FullName != "Ann Lee" || resp.Email != "ann@example.com" {
		t.Errorf("unexpected doctor: %+v", resp)
	}
	if !resp.ConsultationFee.Equal(decimal.RequireFromString("150.5")) {
		t.Errorf("unexpected fee: %s", resp.ConsultationFee)
	}
	if len(resp.Schedules) != 1 || resp.Schedules[0].DayOfWeek != entity.Monday {
		t.Errorf("unexpected schedules: %+v", resp.Schedules)
	}
}
