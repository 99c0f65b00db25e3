package inventory

import (
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
)

// LotStatus is Active while stock remains and Depleted once it reaches zero.
type LotStatus int

const (
	UnknownLotStatus LotStatus = iota
	Active
	Depleted
)

func getValidLotStatusStrings() map[LotStatus]string {
	return map[LotStatus]string{
		Active:   "active",
		Depleted: "depleted",
	}
}

func ParseLotStatus(s string) (LotStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidLotStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return UnknownLotStatus, errs.NewValueIsInvalidErrorWithCause("lot status is invalid", fmt.Errorf("%q is not a valid lot status", s))
}

func (s LotStatus) Validate() error {
	if _, ok := getValidLotStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("lot status is invalid", fmt.Errorf("%d is not a valid lot status", s))
	}
	return nil
}

func (s LotStatus) String() string {
	if str, ok := getValidLotStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
