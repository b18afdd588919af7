package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// DoctorSchedule is a weekly availability window for one weekday.
type DoctorSchedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;uniqueIndex:uq_doctor_schedules_day" json:"doctor_id"`
	DayOfWeek string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_doctor_schedules_day" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Covers reports whether t falls inside [StartTime, EndTime], both ends inclusive.
func (s *DoctorSchedule) Covers(t TimeOfDay) (bool, error) {
	start, err := ParseTimeOfDay(s.StartTime)
	if err != nil {
		return false, fmt.Errorf("schedule %d start: %w", s.ID, err)
	}
	end, err := ParseTimeOfDay(s.EndTime)
	if err != nil {
		return false, fmt.Errorf("schedule %d end: %w", s.ID, err)
	}
	return start <= t && t <= end, nil
}

// Day-of-week names as stored in doctor_schedules.day_of_week
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

var weekdayNames = [...]string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayOfWeek returns the lowercase English weekday of the calendar date.
// Only the year, month and day of date are used.
func DayOfWeek(date time.Time) string {
	civil := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return weekdayNames[civil.Weekday()]
}

// IsValidDayOfWeek reports whether day is a full lowercase weekday name.
func IsValidDayOfWeek(day string) bool {
	for _, d := range weekdayNames {
		if d == day {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TimeOfDay is a wall-clock time as seconds since midnight, without a zone.
type TimeOfDay int

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

// String formats the value as HH:MM:SS.
func (t TimeOfDay) String() string {
	secs := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}
