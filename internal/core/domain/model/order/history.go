package order

import (
	"fmt"
	"time"
)

// HistoryEntry is one immutable line of the order audit log.
type HistoryEntry struct {
	At     time.Time
	Action string
	Actor  Actor
	Note   string
}

// statusChangedAction describes a transition in the audit log.
func statusChangedAction(target Status) string {
	return fmt.Sprintf("status changed: %s", target)
}

func availabilityChangedAction(item *Item) string {
	return fmt.Sprintf("item %d availability: %s", item.lineNumber, item.availability)
}

// Remarks holds free-text notes, one per role.
type Remarks struct {
	Buyer    string
	Manager  string
	Supplier string
}
