package entity

import (
	"testing"
	"time"
)

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-01", Monday},
		{"2024-01-02", Tuesday},
		{"2024-02-29", Thursday},
		{"2024-03-03", Sunday},
		{"2025-12-27", Saturday},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := DayOfWeek(d); got != tt.want {
			t.Errorf("DayOfWeek(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestDayOfWeekIgnoresZone(t *testing.T) {
	// 23:30 on a Monday in UTC+10 is still Monday for the calendar date.
	zone := time.FixedZone("AEST", 10*3600)
	d := time.Date(2024, 1, 1, 23, 30, 0, 0, zone)
	if got := DayOfWeek(d); got != Monday {
		t.Errorf("got %s, want monday", got)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00:00", false},
		{"17:00:00", "17:00:00", false},
		{"8:05", "08:05:00", false},
		{"23:59:59", "23:59:59", false},
		{"24:00", "", true},
		{"10am", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestScheduleCoversIsInclusive(t *testing.T) {
	s := &DoctorSchedule{DayOfWeek: Monday, StartTime: "09:00:00", EndTime: "17:00:00"}

	tests := []struct {
		at   string
		want bool
	}{
		{"08:59:59", false},
		{"09:00", true},
		{"10:00", true},
		{"17:00:00", true},
		{"17:00:01", false},
	}
	for _, tt := range tests {
		tod, err := ParseTimeOfDay(tt.at)
		if err != nil {
			t.Fatal(err)
		}
		got, err := s.Covers(tod)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Covers(%s) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestIsValidDayOfWeek(t *testing.T) {
	if !IsValidDayOfWeek("sunday") {
		t.Error("sunday should be valid")
	}
	if IsValidDayOfWeek("Monday") || IsValidDayOfWeek("mon") {
		t.Error("only full lowercase names are valid")
	}
}
