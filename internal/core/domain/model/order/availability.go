package order

import (
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
)

// Availability is the supplier's confirmation of one order line.
type Availability int

const (
	UnknownAvailability Availability = iota
	// Pending is the initial state; confirmed quantity is unset.
	Pending
	// Available confirms the full requested quantity.
	Available
	// Partial confirms an explicit quantity in [0, requested].
	Partial
	// Unavailable confirms zero.
	Unavailable
)

func getValidAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Pending:     "pending",
		Available:   "available",
		Partial:     "partial",
		Unavailable: "unavailable",
	}
}

// AllAvailabilities lists the valid values in workflow order.
func AllAvailabilities() []Availability {
	return []Availability{Pending, Available, Partial, Unavailable}
}

func ParseAvailability(s string) (Availability, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, str := range getValidAvailabilityStrings() {
		if str == name {
			return a, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause(
		"availability is invalid",
		fmt.Errorf("%q is not a valid availability", s),
	)
}

func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

func (a Availability) String() string {
	if str, ok := getValidAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// AvailabilitySummary counts items per availability.
type AvailabilitySummary struct {
	Pending     int
	Available   int
	Partial     int
	Unavailable int
}

// Total is the number of items counted.
func (s AvailabilitySummary) Total() int {
	return s.Pending + s.Available + s.Partial + s.Unavailable
}
