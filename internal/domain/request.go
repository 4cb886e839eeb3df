package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServiceFlatTyre         ServiceType = "flat-tyre"
	ServiceOutOfFuel        ServiceType = "out-of-fuel"
	ServiceOtherCarProblems ServiceType = "other-car-problems"
	ServiceTowTruck         ServiceType = "tow-truck"
	ServiceEmergency        ServiceType = "emergency"
	ServiceSupport          ServiceType = "support"
	ServiceCarBattery       ServiceType = "car-battery"
)

var ServiceTypes = []ServiceType{
	ServiceFlatTyre,
	ServiceOutOfFuel,
	ServiceOtherCarProblems,
	ServiceTowTruck,
	ServiceEmergency,
	ServiceSupport,
	ServiceCarBattery,
}

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceFlatTyre, ServiceOutOfFuel, ServiceOtherCarProblems, ServiceTowTruck,
		ServiceEmergency, ServiceSupport, ServiceCarBattery:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// OngoingRequest is the in-flight service request of a session. It lives in
// redis only and disappears when it is cancelled, completed or expires.
type OngoingRequest struct {
	ID                uuid.UUID     `json:"id"`
	Type              ServiceType   `json:"type"`
	Status            RequestStatus `json:"status"`
	Timestamp         time.Time     `json:"timestamp"`
	Location          string        `json:"location"`
	EmployeeName      string        `json:"employeeName"`
	EmployeePhone     string        `json:"employeePhone"`
	PriceQuote        *float64      `json:"priceQuote"`
	DeclinedEmployees []string      `json:"declinedEmployees"`
}

func (r *OngoingRequest) HasDeclined(employeeName string) bool {
	for _, name := range r.DeclinedEmployees {
		if name == employeeName {
			return true
		}
	}
	return false
}

type CompletedRequest struct {
	ID            uuid.UUID   `json:"id"`
	Type          ServiceType `json:"type"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	CompletedTime string      `json:"completedTime"`
	Status        string      `json:"status"`
	User          string      `json:"user"`
	Employee      string      `json:"employee"`
}
