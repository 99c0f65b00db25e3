package order

import (
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Draft ──> Confirmed ──> Packing ──> Shipped ──> Completed
//	  │           │
//	  └───────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Draft
	Confirmed
	Packing
	Shipped
	Completed
	Cancelled
)

// getStatusStrings returns the persisted name of every status, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Draft:     "DRAFT",
		Confirmed: "CONFIRMED",
		Packing:   "PACKING",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may be in.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "DRAFT",
		Confirmed: "CONFIRMED",
		Packing:   "PACKING",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getTransitions is the legal edge set of the state machine.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing edges
	return map[Status][]Status{
		Draft:     {Confirmed, Cancelled},
		Confirmed: {Packing, Cancelled},
		Packing:   {Shipped},
		Shipped:   {Completed},
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Draft, Confirmed, Packing, Shipped, Completed, Cancelled}
}

// ParseStatus accepts the persisted name in any letter case.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values read from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no edge leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether s -> target is in the edge set.
// Preconditions that depend on the order contents are not checked here.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition returns target when s -> target is a legal edge and an
// IllegalTransitionError otherwise.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		reason := "no such edge"
		if s.IsTerminal() {
			reason = fmt.Sprintf("%s is terminal", s)
		}
		return Unknown, errs.NewIllegalTransitionError("order", s.String(), target.String(), reason)
	}
	return target, nil
}
