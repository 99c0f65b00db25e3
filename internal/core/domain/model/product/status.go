package product

import (
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
)

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		StatusActive:   "active",
		StatusInactive: "inactive",
	}
}

func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("product status is invalid", fmt.Errorf("%q is not a valid product status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("product status is invalid", fmt.Errorf("%d is not a valid product status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
