package model

import "time"

// User represents a person known to the delivery operation.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
}

// Credential is a login record for staff members.
type Credential struct {
	Email        string
	PasswordHash string
	Role         Role
}

// Identity is the authenticated principal held by a session.
type Identity struct {
	SessionID string
	UserID    string
	Name      string
	Email     string
	Role      Role
}

// Session binds identity to its issue time.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
