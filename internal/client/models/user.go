// Package models defines the wastetrack entities persisted in the local
// key/value store and their JSON wire shape.
package models

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// legacyRoleUser is how older stores spell the operator role.
const legacyRoleUser = "user"

// ParseRole maps a stored role string onto the closed Role set.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleOperator), legacyRoleUser:
		return RoleOperator, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// User is an account allowed to log in. Passwords are stored in plain text.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

func (u User) GetID() string { return u.ID }

func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// DefaultUsers are seeded on first run.
func DefaultUsers() []User {
	return []User{
		{ID: "1", Username: "admin", Password: "admin123", Role: RoleAdmin, Name: "Administrador del Sistema"},
		{ID: "2", Username: "operador", Password: "op123", Role: RoleOperator, Name: "Operador de Campo"},
	}
}
