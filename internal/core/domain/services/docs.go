// Package services holds the aggregation engine: read-only rollups computed
// from order items for order detail pages, the destination matrix export and
// the executive dashboard.
//
// Every function is pure and deterministic. The same input in any order
// yields the same output, and sums use integer or decimal arithmetic only.
package services
