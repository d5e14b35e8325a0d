package model

import "fmt"

// Role determines which back-office views a user may open.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	RolePackaging Role = "packaging"
	RoleDelivery  Role = "delivery"
	RoleManager   Role = "manager"
)

var knownRoles = map[Role]struct{}{
	RoleCustomer:  {},
	RoleAdmin:     {},
	RolePackaging: {},
	RoleDelivery:  {},
	RoleManager:   {},
}

// ParseRole validates raw role name.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	if _, ok := knownRoles[r]; !ok {
		return "", fmt.Errorf("unknown role %q", raw)
	}
	return r, nil
}

// IsStaff reports whether the role belongs to operations staff.
func (r Role) IsStaff() bool {
	return r == RolePackaging || r == RoleDelivery || r == RoleManager
}
