package inventory

import (
	"math"
	"time"

	"ruboard/internal/core/domain/model/kernel"
)

const (
	// DefaultShelfLifeYears applies when a product does not define its own.
	DefaultShelfLifeYears = 3
	// DefaultNearExpiryMonths is the warning threshold.
	DefaultNearExpiryMonths = 12

	daysPerMonth = 30
)

// RemainingShelfLifeMonths is the number of whole 30-day months between now and
// manufactured + shelfLifeYears, rounded toward negative infinity. It is
// negative once the lot has expired.
func RemainingShelfLifeMonths(manufactured time.Time, shelfLifeYears int, now time.Time) int {
	expiry := kernel.StartOfDay(manufactured).AddDate(shelfLifeYears, 0, 0)
	days := expiry.Sub(kernel.StartOfDay(now)).Hours() / 24
	return int(math.Floor(math.Round(days) / daysPerMonth))
}

// IsNearExpiry reports whether months is below the warning threshold.
func IsNearExpiry(months, thresholdMonths int) bool {
	return months < thresholdMonths
}
