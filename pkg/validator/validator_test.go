package validator

import "testing"

type scheduleInput struct {
	DayOfWeek string `json:"day_of_week" validate:"required,dayofweek"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
}

type accountInput struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,role"`
	Status string `json:"status" validate:"omitempty,apptstatus"`
}

func TestCustomTagsAccept(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(scheduleInput{DayOfWeek: "monday", StartTime: "09:00"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.Validate(accountInput{Email: "a@b.test", Role: "receptionist", Status: "no-show"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCustomTagsReject(t *testing.T) {
	v := NewValidator()

	err := v.Validate(scheduleInput{DayOfWeek: "Funday", StartTime: "25:00"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := v.FormatValidationErrors(err)
	if _, ok := fields["day_of_week"]; !ok {
		t.Errorf("expected day_of_week error, got %v", fields)
	}
	if _, ok := fields["start_time"]; !ok {
		t.Errorf("expected start_time error, got %v", fields)
	}

	err = v.Validate(accountInput{Email: "nope", Role: "janitor", Status: "pending"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields = v.FormatValidationErrors(err)
	for _, key := range []string{"email", "role", "status"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("expected %s error, got %v", key, fields)
		}
	}
}

func TestRequiredMessage(t *testing.T) {
	v := NewValidator()
	fields := v.FormatValidationErrors(v.Validate(accountInput{}))

	if fields["email"] != "email is required" {
		t.Errorf("unexpected message: %q", fields["email"])
	}
}
