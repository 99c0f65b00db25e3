package order

// Totals is the order-level rollup of its items.
type Totals struct {
	Quantity int64
	Cartons  int64
	Amounts
}

// RecomputeOrderTotals sums every item into the order totals. Writers call it
// explicitly after each change to quantities or prices.
func RecomputeOrderTotals(o *Order) {
	var t Totals
	for _, item := range o.items {
		item.recompute()
		t.Quantity += item.EffectiveQty()
		t.Cartons += item.cartonCount
		t.Amounts = t.add(item.subtotal)
	}
	o.totals = t
}
