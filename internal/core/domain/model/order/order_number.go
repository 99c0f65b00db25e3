package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"ruboard/internal/pkg/errs"
)

var numberPattern = regexp.MustCompile(`^[A-Z]{2,5}-\d{4}-\d{2}-\d{4,}$`)

// FormatNumber builds the human readable order number <REGION>-<YYYY>-<MM>-<NNNN>.
// seq is the per-region, per-month sequence value starting at 1.
func FormatNumber(region string, orderDate time.Time, seq int64) (string, error) {
	region = strings.ToUpper(strings.TrimSpace(region))
	if seq < 1 {
		return "", errs.NewValueIsInvalidErrorWithCause("order sequence is invalid", fmt.Errorf("%d is not greater than 0", seq))
	}

	number := fmt.Sprintf("%s-%04d-%02d-%04d", region, orderDate.Year(), int(orderDate.Month()), seq)
	if err := validateNumber(number); err != nil {
		return "", err
	}
	return number, nil
}

// NumberPrefix is the sequence key shared by all orders of a region and month.
func NumberPrefix(region string, orderDate time.Time) string {
	return fmt.Sprintf("%s-%04d-%02d", strings.ToUpper(strings.TrimSpace(region)), orderDate.Year(), int(orderDate.Month()))
}

func validateNumber(number string) error {
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("order number is invalid", fmt.Errorf("%q does not match <REGION>-<YYYY>-<MM>-<NNNN>", number))
	}
	return nil
}
