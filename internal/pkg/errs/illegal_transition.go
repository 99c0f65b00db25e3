package errs

import (
	"errors"
	"fmt"
)

var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError reports a state machine edge or precondition violation.
// Subject names what was being changed ("order", "order items", "item availability").
type IllegalTransitionError struct {
	Subject string
	From    string
	To      string
	Reason  string
}

func NewIllegalTransitionError(subject, from, to, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{
		Subject: subject,
		From:    from,
		To:      to,
		Reason:  reason,
	}
}

func (e *IllegalTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s %s -> %s", ErrIllegalTransition, e.Subject, e.From, e.To)
	if e.Reason != "" {
		return fmt.Sprintf("%s (reason: %s)", msg, e.Reason)
	}
	return msg
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
