package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrMalformedProfile = errors.New("malformed profile data")

// RoleProfile is the satellite row owned 1:1 by a user. The concrete type
// is chosen once from the user's role; admins have no profile.
type RoleProfile interface {
	ProfileRole() string
	ProfileID() int
	OwnerID() int
	SetOwner(userID int)
	// Apply copies the non-nil fields onto the profile.
	Apply(fields ProfileFields) error
}

// ProfileFields carries role-specific profile input. Nil means "not supplied".
type ProfileFields struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	Specialization  *string
	Qualification   *string
	ConsultationFee *decimal.Decimal
	DateOfBirth     *string // YYYY-MM-DD
	BloodGroup      *string
	Address         *string
}

// NewRoleProfile builds an empty profile variant for role. It returns nil for
// admin and for unknown roles.
func NewRoleProfile(role string) RoleProfile {
	switch role {
	case RoleDoctor:
		return &DoctorProfile{}
	case RolePatient:
		return &PatientProfile{}
	case RoleReceptionist:
		return &ReceptionistProfile{}
	}
	return nil
}

// BuildRoleProfile creates the profile variant for role populated from fields.
func BuildRoleProfile(role string, fields ProfileFields) (RoleProfile, error) {
	profile := NewRoleProfile(role)
	if profile == nil {
		return nil, nil
	}
	if err := profile.Apply(fields); err != nil {
		return nil, err
	}
	return profile, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// Apply implements RoleProfile for doctors.
func (p *DoctorProfile) Apply(f ProfileFields) error {
	setString(&p.FirstName, f.FirstName)
	setString(&p.LastName, f.LastName)
	setString(&p.Phone, f.Phone)
	setString(&p.Specialization, f.Specialization)
	setString(&p.Qualification, f.Qualification)
	if f.ConsultationFee != nil {
		if f.ConsultationFee.IsNegative() {
			return ErrMalformedProfile
		}
		p.ConsultationFee = *f.ConsultationFee
	}
	return nil
}

// Apply implements RoleProfile for patients.
func (p *PatientProfile) Apply(f ProfileFields) error {
	setString(&p.FirstName, f.FirstName)
	setString(&p.LastName, f.LastName)
	setString(&p.Phone, f.Phone)
	setString(&p.BloodGroup, f.BloodGroup)
	setString(&p.Address, f.Address)
	if f.DateOfBirth != nil {
		if *f.DateOfBirth == "" {
			p.DateOfBirth = nil
			return nil
		}
		dob, err := time.Parse(DateLayout, *f.DateOfBirth)
		if err != nil {
			return ErrMalformedProfile
		}
		p.DateOfBirth = &dob
	}
	return nil
}

// Apply implements RoleProfile for receptionists.
func (p *ReceptionistProfile) Apply(f ProfileFields) error {
	setString(&p.FirstName, f.FirstName)
	setString(&p.LastName, f.LastName)
	setString(&p.Phone, f.Phone)
	return nil
}

func (p *DoctorProfile) ProfileRole() string       { return RoleDoctor }
func (p *PatientProfile) ProfileRole() string      { return RolePatient }
func (p *ReceptionistProfile) ProfileRole() string { return RoleReceptionist }

func (p *DoctorProfile) ProfileID() int       { return p.ID }
func (p *PatientProfile) ProfileID() int      { return p.ID }
func (p *ReceptionistProfile) ProfileID() int { return p.ID }

func (p *DoctorProfile) OwnerID() int       { return p.UserID }
func (p *PatientProfile) OwnerID() int      { return p.UserID }
func (p *ReceptionistProfile) OwnerID() int { return p.UserID }

func (p *DoctorProfile) SetOwner(userID int)       { p.UserID = userID }
func (p *PatientProfile) SetOwner(userID int)      { p.UserID = userID }
func (p *ReceptionistProfile) SetOwner(userID int) { p.UserID = userID }
