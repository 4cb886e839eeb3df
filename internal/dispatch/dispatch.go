// Package dispatch plays the employee side of a service request with the
// simulation roster: it assigns someone who has not been turned down for the
// request and produces their price quotes.
package dispatch

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

var ErrNoEmployeeAvailable = errors.New("no simulation employee is available for this request")

// base prices in BGN
var basePrices = map[domain.ServiceType]float64{
	domain.ServiceFlatTyre:         35,
	domain.ServiceOutOfFuel:        25,
	domain.ServiceOtherCarProblems: 50,
	domain.ServiceTowTruck:         45,
	domain.ServiceEmergency:        80,
	domain.ServiceSupport:          20,
	domain.ServiceCarBattery:       30,
}

type Dispatcher struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New(seed int64) *Dispatcher {
	return &Dispatcher{rnd: rand.New(rand.NewSource(seed))}
}

// Pick chooses an employee whose name is not in declined.
func (d *Dispatcher) Pick(roster []*domain.SimulationEmployee, declined []string) (*domain.SimulationEmployee, error) {
	candidates := make([]*domain.SimulationEmployee, 0, len(roster))
	for _, se := range roster {
		if !contains(declined, se.FullName) {
			candidates = append(candidates, se)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoEmployeeAvailable
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return candidates[d.rnd.Intn(len(candidates))], nil
}

// Quote is the base price of the service with up to 30% on top.
func (d *Dispatcher) Quote(t domain.ServiceType) float64 {
	base, ok := basePrices[t]
	if !ok {
		base = basePrices[domain.ServiceOtherCarProblems]
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return round2(base * (1 + d.rnd.Float64()*0.3))
}

// Revise lowers a declined quote by 10 to 25 percent.
func (d *Dispatcher) Revise(amount float64) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return round2(amount * (0.75 + d.rnd.Float64()*0.15))
}

func Phone(se *domain.SimulationEmployee) string {
	return fmt.Sprintf("+35988%07d", se.EmployeeNumber)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
