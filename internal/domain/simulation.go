package domain

import (
	"strconv"
	"time"
)

// SimulationEmployee is a demo technician used to answer service requests when
// no real employee is online. EmployeeNumber is meant to be unique but nothing
// enforces it.
type SimulationEmployee struct {
	ID             int64     `json:"id"`
	EmployeeNumber int       `json:"employeeNumber"`
	FullName       string    `json:"fullName"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (e *SimulationEmployee) DisplayName() string {
	return e.FullName
}

func (e *SimulationEmployee) SearchFields() []string {
	return []string{e.FullName, strconv.Itoa(e.EmployeeNumber)}
}
