package models

import "fmt"

// Role defines the account role
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// Roles lists every known role, lowest privilege first
var Roles = []Role{RoleStudent, RoleAdmin, RoleSuperAdmin}

// ParseRole converts a raw role string, rejecting unknown values
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Satisfies reports whether an account holding r may use a route that requires the given role.
// Superadmin is a superset of admin; student and admin are disjoint.
func (r Role) Satisfies(required Role) bool {
	if !r.IsValid() || !required.IsValid() {
		return false
	}
	if r == required {
		return true
	}
	return required == RoleAdmin && r == RoleSuperAdmin
}

// IsStaff reports whether the role can moderate placements and company visits
func (r Role) IsStaff() bool {
	return r.Satisfies(RoleAdmin)
}
