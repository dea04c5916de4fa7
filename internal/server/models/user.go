// Package models holds the domain types shared by repositories, services
// and transports.
package models

import "time"

// User is an account known to the credential store.
type User struct {
	ID             string
	UserName       string
	Email          string
	EmailConfirmed bool
	PasswordHash   []byte
	Roles          []string
	Claims         []Claim
	CreatedAt      time.Time
}

// HasRole reports whether role is currently assigned to u.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
