package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int             `gorm:"uniqueIndex;not null" json:"user_id"`
	FirstName       string          `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string          `gorm:"type:varchar(100);not null" json:"last_name"`
	Specialization  string          `gorm:"type:varchar(100);index" json:"specialization"`
	Qualification   string          `gorm:"type:varchar(100)" json:"qualification"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Schedules []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctors"
}

func (p *DoctorProfile) FullName() string {
	return joinName(p.FirstName, p.LastName)
}
