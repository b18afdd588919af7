package entity

import "time"

// User represents the centralized authentication table
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	DoctorProfile       *DoctorProfile       `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile      *PatientProfile      `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	ReceptionistProfile *ReceptionistProfile `gorm:"foreignKey:UserID" json:"receptionist_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Profile returns the satellite profile matching the user's role, or nil.
func (u *User) Profile() RoleProfile {
	switch u.Role {
	case RoleDoctor:
		if u.DoctorProfile != nil {
			return u.DoctorProfile
		}
	case RolePatient:
		if u.PatientProfile != nil {
			return u.PatientProfile
		}
	case RoleReceptionist:
		if u.ReceptionistProfile != nil {
			return u.ReceptionistProfile
		}
	}
	return nil
}
