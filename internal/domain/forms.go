package domain

import "strings"

// NewUser is the create-user form. Only username and email are required.
type NewUser struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	FullName    string `json:"fullName"`
	Gender      string `json:"gender"`
}

func (f NewUser) Complete() bool {
	return strings.TrimSpace(f.Username) != "" && strings.TrimSpace(f.Email) != ""
}

type NewEmployee struct {
	RealName    string       `json:"realName" validate:"required"`
	Username    string       `json:"username" validate:"required"`
	Email       string       `json:"email" validate:"required"`
	PhoneNumber string       `json:"phoneNumber"`
	Role        EmployeeRole `json:"role"`
}

func DefaultNewEmployee() NewEmployee {
	return NewEmployee{PhoneNumber: "+359", Role: EmployeeRoleTechnician}
}

func (f NewEmployee) Complete() bool {
	return strings.TrimSpace(f.RealName) != "" &&
		strings.TrimSpace(f.Username) != "" &&
		strings.TrimSpace(f.Email) != ""
}

type NewSimulationEmployee struct {
	EmployeeNumber int    `json:"employeeNumber" validate:"required"`
	FullName       string `json:"fullName" validate:"required"`
}

func (f NewSimulationEmployee) Complete() bool {
	return f.EmployeeNumber > 0 && strings.TrimSpace(f.FullName) != ""
}
