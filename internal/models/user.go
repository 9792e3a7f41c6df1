// Package models contains the entities persisted by the store: users
// and the lessons they author. Values returned by the store are
// snapshots; mutating them does not touch stored state.
package models

// User is an account row. PasswordHash and Salt together verify a
// password; the plaintext is never stored or logged.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Salt         string
	Role         Role
	Language     Language
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
