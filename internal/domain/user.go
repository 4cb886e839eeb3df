package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusBanned:
		return true
	}
	return false
}

// Label is the text shown in the status column. Anything that is not banned
// renders as active.
func (s UserStatus) Label() string {
	switch s {
	case UserStatusBanned:
		return "Banned"
	default:
		return "Active"
	}
}

type UserAccount struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phoneNumber"`
	FullName       string     `json:"fullName"`
	Gender         string     `json:"gender"`
	PasswordHash   string     `json:"-"`
	CreatedByAdmin bool       `json:"createdByAdmin"`
	Status         UserStatus `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (u *UserAccount) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

func (u *UserAccount) SearchFields() []string {
	return []string{u.Username, u.Email, u.FullName}
}

func (u *UserAccount) SourceLabel() string {
	if u.CreatedByAdmin {
		return "Admin Created"
	}
	return "Self Registered"
}
