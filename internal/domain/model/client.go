package model

import "time"

// Role is the closed set of privilege levels a client can hold.
type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
)

// RoleFromStaffFlag converts the wire-level is_staff flag into a role.
func RoleFromStaffFlag(isStaff bool) Role {
	if isStaff {
		return RoleStaff
	}
	return RoleClient
}

// Client represents a registered account. Username and email are
// globally unique and immutable after signup.
type Client struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
}

// IsStaff reports whether the client holds the staff role.
func (c *Client) IsStaff() bool {
	return c.Role == RoleStaff
}
