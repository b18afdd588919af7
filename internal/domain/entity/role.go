package entity

// Role names as stored in users.role
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleReceptionist = "receptionist"
)

// Roles lists every recognised role.
var Roles = []string{RoleAdmin, RoleDoctor, RolePatient, RoleReceptionist}

// IsValidRole reports whether role is one of the recognised role names.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to hospital staff.
func IsStaff(role string) bool {
	return role == RoleAdmin || role == RoleDoctor || role == RoleReceptionist
}

// Actor identifies the authenticated caller of a use case.
type Actor struct {
	UserID   int
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
