package services

import (
	"sort"
	"strings"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
)

// UnspecifiedDestination labels items without a destination.
const UnspecifiedDestination = "unspecified"

// AggregationItem is the projection of an order item the engine works on.
// Qty is the effective quantity and Subtotal the final amount of the line.
type AggregationItem struct {
	ProductCode string
	ProductName string
	Destination string
	Qty         int64
	Subtotal    int64
}

// ItemsFromOrder projects the items of o.
func ItemsFromOrder(o *order.Order) []AggregationItem {
	items := o.Items()
	result := make([]AggregationItem, 0, len(items))
	for _, item := range items {
		result = append(result, AggregationItem{
			ProductCode: item.ProductCode(),
			ProductName: item.ProductName(),
			Destination: item.Destination(),
			Qty:         item.EffectiveQty(),
			Subtotal:    item.Subtotal().Final,
		})
	}
	return result
}

// DestinationCell is the rollup of one product at one destination.
type DestinationCell struct {
	Qty      int64
	Subtotal int64
}

// ProductGroup is one row of the product by destination matrix.
type ProductGroup struct {
	ProductCode   string
	ProductName   string
	ByDestination map[string]DestinationCell
	TotalQty      int64
	TotalAmount   int64
}

// DestinationTotal is the rollup of all products at one destination.
type DestinationTotal struct {
	Qty    int64
	Amount int64
}

// Aggregator computes rollups over order items. It is stateless.
type Aggregator struct{}

func NewAggregator() Aggregator {
	return Aggregator{}
}

// GroupByProduct groups items by product code, sorted by code.
func (Aggregator) GroupByProduct(items []AggregationItem) []ProductGroup {
	groups := make(map[string]*ProductGroup)
	for _, item := range items {
		g, ok := groups[item.ProductCode]
		if !ok {
			g = &ProductGroup{
				ProductCode:   item.ProductCode,
				ProductName:   item.ProductName,
				ByDestination: make(map[string]DestinationCell),
			}
			groups[item.ProductCode] = g
		}
		g.ProductName = pickName(g.ProductName, item.ProductName)

		dest := destinationLabel(item.Destination)
		cell := g.ByDestination[dest]
		cell.Qty += item.Qty
		cell.Subtotal += item.Subtotal
		g.ByDestination[dest] = cell

		g.TotalQty += item.Qty
		g.TotalAmount += item.Subtotal
	}

	result := make([]ProductGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductCode < result[j].ProductCode })
	return result
}

// TotalsByDestination sums quantity and amount per destination.
func (Aggregator) TotalsByDestination(items []AggregationItem) map[string]DestinationTotal {
	totals := make(map[string]DestinationTotal)
	for _, item := range items {
		dest := destinationLabel(item.Destination)
		t := totals[dest]
		t.Qty += item.Qty
		t.Amount += item.Subtotal
		totals[dest] = t
	}
	return totals
}

// Destinations lists the distinct destination labels in sorted order.
func (Aggregator) Destinations(items []AggregationItem) []string {
	seen := make(map[string]struct{})
	for _, item := range items {
		seen[destinationLabel(item.Destination)] = struct{}{}
	}
	result := make([]string, 0, len(seen))
	for dest := range seen {
		result = append(result, dest)
	}
	sort.Strings(result)
	return result
}

func destinationLabel(dest string) string {
	if d := strings.TrimSpace(dest); d != "" {
		return d
	}
	return UnspecifiedDestination
}

// pickName keeps the smallest non-empty name so the result does not depend on input order.
func pickName(current, candidate string) string {
	switch {
	case candidate == "":
		return current
	case current == "" || candidate < current:
		return candidate
	default:
		return current
	}
}

// BuyerOrder is the projection of an order used by the buyer leaderboard.
type BuyerOrder struct {
	OrderID     kernel.UUID
	BuyerID     kernel.UUID
	BuyerName   string
	Status      order.Status
	TotalAmount int64
}

type BuyerStat struct {
	BuyerID        kernel.UUID
	BuyerName      string
	OrderCount     int
	CompletedCount int
	TotalAmount    int64
}

// DefaultBuyerLeaderboardSize is the number of buyers shown on the dashboard.
const DefaultBuyerLeaderboardSize = 10

// BuyerLeaderboard ranks buyers by total amount, then order count, then name.
// Every order counts whatever its status. n <= 0 returns every buyer.
func (Aggregator) BuyerLeaderboard(orders []BuyerOrder, n int) []BuyerStat {
	stats := make(map[kernel.UUID]*BuyerStat)
	for _, o := range orders {
		s, ok := stats[o.BuyerID]
		if !ok {
			s = &BuyerStat{BuyerID: o.BuyerID, BuyerName: o.BuyerName}
			stats[o.BuyerID] = s
		}
		s.BuyerName = pickName(s.BuyerName, o.BuyerName)
		s.OrderCount++
		if o.Status == order.Completed {
			s.CompletedCount++
		}
		s.TotalAmount += o.TotalAmount
	}

	result := make([]BuyerStat, 0, len(stats))
	for _, s := range stats {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		if a.OrderCount != b.OrderCount {
			return a.OrderCount > b.OrderCount
		}
		if a.BuyerName != b.BuyerName {
			return a.BuyerName < b.BuyerName
		}
		return a.BuyerID.String() < b.BuyerID.String()
	})
	return capped(result, n)
}

// ProductSale is one order line as seen by the product leaderboard.
type ProductSale struct {
	OrderID     kernel.UUID
	Status      order.Status
	ProductCode string
	ProductName string
	Qty         int64
	Amount      int64
}

type ProductStat struct {
	ProductCode string
	ProductName string
	TotalQty    int64
	TotalAmount int64
	OrderCount  int
}

// DefaultProductLeaderboardSize is the number of products shown on the dashboard.
const DefaultProductLeaderboardSize = 15

// ProductLeaderboard ranks products by quantity, then amount, then code.
// OrderCount counts distinct orders of any status.
func (Aggregator) ProductLeaderboard(sales []ProductSale, n int) []ProductStat {
	stats := make(map[string]*ProductStat)
	orders := make(map[string]map[kernel.UUID]struct{})
	for _, sale := range sales {
		s, ok := stats[sale.ProductCode]
		if !ok {
			s = &ProductStat{ProductCode: sale.ProductCode}
			stats[sale.ProductCode] = s
			orders[sale.ProductCode] = make(map[kernel.UUID]struct{})
		}
		s.ProductName = pickName(s.ProductName, sale.ProductName)
		s.TotalQty += sale.Qty
		s.TotalAmount += sale.Amount
		orders[sale.ProductCode][sale.OrderID] = struct{}{}
	}

	result := make([]ProductStat, 0, len(stats))
	for code, s := range stats {
		s.OrderCount = len(orders[code])
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.TotalQty != b.TotalQty {
			return a.TotalQty > b.TotalQty
		}
		if a.TotalAmount != b.TotalAmount {
			return a.TotalAmount > b.TotalAmount
		}
		return a.ProductCode < b.ProductCode
	})
	return capped(result, n)
}

func capped[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
