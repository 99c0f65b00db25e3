package http_test

import (
	"net/http"
	"testing"

	httpin "ruboard/internal/adapters/in/http"
	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func matrixView() queries.OrderView {
	items := []services.AggregationItem{
		{ProductCode: "KR-002", ProductName: "Ginseng tea", Destination: "Kazan", Qty: 10, Subtotal: 5000},
		{ProductCode: "KR-001", ProductName: "Red pepper paste", Destination: "Moscow", Qty: 48, Subtotal: 48000},
		{ProductCode: "KR-001", ProductName: "Red pepper paste", Destination: "Kazan", Qty: 24, Subtotal: 24000},
	}
	agg := services.NewAggregator()
	return queries.OrderView{
		ID:                kernel.NewUUID(),
		Number:            "RU-20240315-0001",
		ProductGroups:     agg.GroupByProduct(items),
		DestinationTotals: agg.TotalsByDestination(items),
		Destinations:      agg.Destinations(items),
	}
}

func TestDestinationMatrix(t *testing.T) {
	f, err := httpin.DestinationMatrix(matrixView())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Matrix")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Product code", "Product name", "Kazan", "Moscow", "Total qty", "Total amount"}, rows[0])
	assert.Equal(t, []string{"KR-001", "Red pepper paste", "24", "48", "72", "72000"}, rows[1])
	assert.Equal(t, []string{"KR-002", "Ginseng tea", "10", "0", "10", "5000"}, rows[2])
	assert.Equal(t, []string{"Total", "", "34", "48", "82", "77000"}, rows[3])
}

func TestExportDestinationMatrix(t *testing.T) {
	view := matrixView()
	get := &MockGetOrder{}
	get.On("Handle", mock.Anything, mock.Anything).Return(view, nil).Once()

	e := newTestEcho(t, httpin.Handlers{GetOrder: get}, true)
	rec := doJSON(e, http.MethodGet, "/api/v1/orders/"+view.ID.String()+"/destination-matrix", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "RU-20240315-0001.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	value, err := f.GetCellValue("Matrix", "D2")
	require.NoError(t, err)
	assert.Equal(t, "48", value)
}
