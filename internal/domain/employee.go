package domain

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeRole string

const (
	EmployeeRoleTechnician EmployeeRole = "technician"
	EmployeeRoleSupervisor EmployeeRole = "supervisor"
	EmployeeRoleManager    EmployeeRole = "manager"
	EmployeeRoleAdmin      EmployeeRole = "admin"
)

func (r EmployeeRole) Valid() bool {
	switch r {
	case EmployeeRoleTechnician, EmployeeRoleSupervisor, EmployeeRoleManager, EmployeeRoleAdmin:
		return true
	}
	return false
}

// OrDefault treats an empty or unknown role as technician.
func (r EmployeeRole) OrDefault() EmployeeRole {
	if !r.Valid() {
		return EmployeeRoleTechnician
	}
	return r
}

type EmployeeStatus string

const (
	EmployeeStatusActive    EmployeeStatus = "active"
	EmployeeStatusInactive  EmployeeStatus = "inactive"
	EmployeeStatusSuspended EmployeeStatus = "suspended"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusSuspended:
		return true
	}
	return false
}

func (s EmployeeStatus) Label() string {
	switch s {
	case EmployeeStatusSuspended:
		return "Suspended"
	case EmployeeStatusInactive:
		return "Inactive"
	default:
		return "Active"
	}
}

// Toggled is the status the suspend/activate menu action moves to: a suspended
// employee is reactivated, everybody else is suspended.
func (s EmployeeStatus) Toggled() EmployeeStatus {
	if s == EmployeeStatusSuspended {
		return EmployeeStatusActive
	}
	return EmployeeStatusSuspended
}

type EmployeeAccount struct {
	ID           uuid.UUID      `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PhoneNumber  string         `json:"phoneNumber"`
	Role         EmployeeRole   `json:"role"`
	Status       EmployeeStatus `json:"status"`
	RealName     string         `json:"realName"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (e *EmployeeAccount) DisplayName() string {
	if e.RealName != "" {
		return e.RealName
	}
	return e.Username
}

func (e *EmployeeAccount) SearchFields() []string {
	return []string{e.Username, e.Email, e.RealName}
}
