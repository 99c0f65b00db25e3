package http

import (
	"ruboard/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	matrixSheet     = "Matrix"
)

// DestinationMatrix renders the product by destination quantities of an
// order: one row per product, one column per destination, then row totals
// and a totals row.
func DestinationMatrix(view queries.OrderView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", matrixSheet); err != nil {
		return nil, err
	}

	header := []any{"Product code", "Product name"}
	for _, dest := range view.Destinations {
		header = append(header, dest)
	}
	header = append(header, "Total qty", "Total amount")
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, group := range view.ProductGroups {
		values := []any{group.ProductCode, group.ProductName}
		for _, dest := range view.Destinations {
			values = append(values, group.ByDestination[dest].Qty)
		}
		values = append(values, group.TotalQty, group.TotalAmount)
		if err := setRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	totals := []any{"Total", ""}
	var qty, amount int64
	for _, dest := range view.Destinations {
		t := view.DestinationTotals[dest]
		totals = append(totals, t.Qty)
		qty += t.Qty
		amount += t.Amount
	}
	totals = append(totals, qty, amount)
	if err := setRow(f, row, totals); err != nil {
		return nil, err
	}

	if err := f.SetPanes(matrixSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(matrixSheet, cell, &values)
}
