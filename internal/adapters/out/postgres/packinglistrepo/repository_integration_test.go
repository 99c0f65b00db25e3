package packinglistrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/packinglistrepo"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var packedAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

type PackingListRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgtest.Container
	repository *packinglistrepo.GormPackingListRepository
}

func (suite *PackingListRepositoryIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.Require().NoError(postgresadapter.Migrate(container.DB))
	suite.repository = packinglistrepo.NewGormPackingListRepository(container.DB)
}

func (suite *PackingListRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.DB.Exec("TRUNCATE TABLE packing_lists").Error)
}

func (suite *PackingListRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PackingListRepositoryIntegrationTestSuite) newList(orderID kernel.UUID, destinations []string) *packing.List {
	totals := packing.DefaultPlan().Totals(packing.Load{
		Qty:         1800,
		Cartons:     75,
		CBM:         decimal.RequireFromString("4.5"),
		NetWeightKg: decimal.RequireFromString("600.125"),
		Amount:      2_016_000,
	})
	l, err := packing.NewList(kernel.NewUUID(), orderID, "RU-2026-03-0001", "Volga Trade", destinations, totals, packedAt)
	suite.Require().NoError(err)
	return l
}

func (suite *PackingListRepositoryIntegrationTestSuite) TestAddAndGetByOrder() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	l := suite.newList(orderID, []string{"Kazan", "Moscow"})

	suite.Require().NoError(suite.repository.Add(ctx, l))
	got, err := suite.repository.GetByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Equal(l.ID(), got.ID())
	suite.Equal("PL-20260302-RU-2026-03-0001", got.Number())
	suite.Equal([]string{"Kazan", "Moscow"}, got.Destinations())
	suite.Equal(int64(2), got.Totals().Pallets)
	suite.True(decimal.RequireFromString("640.125").Equal(got.Totals().GrossWeightKg), got.Totals().GrossWeightKg.String())
	suite.True(decimal.RequireFromString("4.5").Equal(got.Totals().CBM))
	suite.True(packedAt.Equal(got.CreatedAt()))
}

func (suite *PackingListRepositoryIntegrationTestSuite) TestAdd_NoDestinations() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newList(orderID, nil)))
	got, err := suite.repository.GetByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Empty(got.Destinations())
}

func (suite *PackingListRepositoryIntegrationTestSuite) TestAdd_SecondListForOrderIsRejected() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newList(orderID, nil)))

	err := suite.repository.Add(ctx, suite.newList(orderID, nil))
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *PackingListRepositoryIntegrationTestSuite) TestGetByOrder_NotFound() {
	_, err := suite.repository.GetByOrder(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPackingListRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PackingListRepositoryIntegrationTestSuite))
}
