// Package order holds the Order aggregate: its lifecycle state machine, the
// per-item availability workflow run by the supplier, the price snapshot each
// item carries and the explicit recomputation of order totals.
//
// Key business rules:
//   - Status moves only along DRAFT -> CONFIRMED -> PACKING -> SHIPPED -> COMPLETED,
//     with DRAFT and CONFIRMED able to branch into CANCELLED
//   - DRAFT -> CONFIRMED requires at least one item
//   - CONFIRMED -> PACKING requires every item to be resolved (no pending availability)
//   - Items and prices are editable only in DRAFT, availability only in CONFIRMED
//   - Totals are recomputed by RecomputeOrderTotals, never by setters
//   - History is append-only and ordered by timestamp
//
// A failed operation leaves the aggregate unmodified.
package order
