// Package pricing is the append-only price ledger of the product catalog.
// Entries are never updated: a price change is a new entry with its own
// effective date, and the authoritative price at a date is the entry with the
// latest effective date not after it.
package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is one historical price point. ID is the ledger insertion sequence and
// is zero until the entry is stored.
type Entry struct {
	id            int64
	productCode   string
	base          int64
	commission    int64
	effectiveDate time.Time
	recordedAt    time.Time

	guard guard.ConstructorGuard
}

// NewEntry validates a new price point. effectiveDate is truncated to its UTC calendar day.
func NewEntry(productCode string, base, commission int64, effectiveDate, recordedAt time.Time) (Entry, error) {
	e := Entry{
		productCode:   strings.TrimSpace(productCode),
		base:          base,
		commission:    commission,
		effectiveDate: kernel.StartOfDay(effectiveDate),
		recordedAt:    recordedAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}

	var errList []error
	if e.productCode == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if base < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("base price is invalid", fmt.Errorf("%d is negative", base)))
	}
	if commission < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("commission is invalid", fmt.Errorf("%d is negative", commission)))
	}
	if effectiveDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("effective date"))
	}
	if err := errors.Join(errList...); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// RestoreEntry rebuilds a stored entry.
func RestoreEntry(id int64, productCode string, base, commission int64, effectiveDate, recordedAt time.Time) (Entry, error) {
	e, err := NewEntry(productCode, base, commission, effectiveDate, recordedAt)
	if err != nil {
		return Entry{}, err
	}
	if id <= 0 {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("price entry id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	e.id = id
	return e, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) ID() int64 { return e.id }
func (e Entry) ProductCode() string { return e.productCode }
func (e Entry) Base() int64 { return e.base }
func (e Entry) Commission() int64 { return e.commission }
func (e Entry) EffectiveDate() time.Time { return e.effectiveDate }
func (e Entry) RecordedAt() time.Time { return e.recordedAt }

// Final is base + commission.
func (e Entry) Final() int64 {
	return e.base + e.commission
}

// SamePrice reports whether both entries carry the same base and commission.
func (e Entry) SamePrice(other Entry) bool {
	return e.base == other.base && e.commission == other.commission
}

// Resolve returns the entry with the latest effective date on or before at.
// Among entries sharing that date the one with the highest ID wins.
// It returns an ObjectNotFoundError when no entry is effective yet.
func Resolve(entries []Entry, at time.Time) (Entry, error) {
	day := kernel.StartOfDay(at)

	var (
		best  Entry
		found bool
	)
	for _, e := range entries {
		if e.effectiveDate.After(day) {
			continue
		}
		if !found || e.effectiveDate.After(best.effectiveDate) ||
			(e.effectiveDate.Equal(best.effectiveDate) && e.id > best.id) {
			best = e
			found = true
		}
	}

	if !found {
		code := ""
		if len(entries) > 0 {
			code = entries[0].productCode
		}
		return Entry{}, errs.NewObjectNotFoundError("price", fmt.Sprintf("%s at %s", code, day.Format(time.DateOnly)))
	}
	return best, nil
}
