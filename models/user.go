package models

import "time"

// Role is the access tier of an account. Only two tiers exist.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	Permissions  []string   `json:"permissions"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the transmission-safe projection of a User. It carries no
// credential material.
type PublicUser struct {
	ID          int        `json:"id"`
	Username    string     `json:"username"`
	Role        Role       `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin"`
	Permissions []string   `json:"permissions"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		Permissions: u.Permissions,
	}
}

// SessionUser is the identity attached to an authenticated session.
type SessionUser struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

func (u *User) SessionIdentity() SessionUser {
	return SessionUser{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

func (s SessionUser) IsAdmin() bool {
	return s.Role == RoleAdmin
}
