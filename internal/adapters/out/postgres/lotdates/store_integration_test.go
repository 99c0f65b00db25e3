package lotdates_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/lotdates"
	"ruboard/internal/adapters/out/postgres/lotrepo"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type StoreIntegrationTestSuite struct {
	suite.Suite
	container *pgtest.Container
	sqlDB     *sql.DB
	store     *lotdates.Store
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.Require().NoError(postgresadapter.Migrate(container.DB))

	suite.sqlDB, err = sql.Open("postgres", container.DSN)
	suite.Require().NoError(err)
	suite.store = lotdates.NewStore(suite.sqlDB)
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.DB.Exec("TRUNCATE TABLE lot_manufacturing_dates, inventory_lots").Error)
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.sqlDB != nil {
		_ = suite.sqlDB.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) addLot(number string, mfg *time.Time) {
	l, err := inventory.NewLot(kernel.NewUUID(), "KR-001", number, mfg, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 10, "WH-1")
	suite.Require().NoError(err)
	suite.Require().NoError(lotrepo.NewGormLotRepository(suite.container.DB, noopTracker{}).Add(context.Background(), l))
}

func (suite *StoreIntegrationTestSuite) manufacturedDate(number string) *time.Time {
	var dto lotrepo.LotDTO
	suite.Require().NoError(suite.container.DB.Where("lot_number = ?", number).Take(&dto).Error)
	return dto.ManufacturedDate
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *StoreIntegrationTestSuite) TestImport_BackfillsUnknownDatesOnly() {
	ctx := context.Background()
	known := day(2024, 1, 5)
	suite.addLot("HX-1", nil)
	suite.addLot("HX-2", &known)

	res, err := suite.store.Import(ctx, []lotdates.Row{
		{LotNumber: "HX-1", ManufacturedDate: day(2025, 6, 13)},
		{LotNumber: "HX-2", ManufacturedDate: day(2025, 6, 14)},
		{LotNumber: "HX-9", ManufacturedDate: day(2025, 6, 15)},
	})
	suite.Require().NoError(err)
	suite.Equal(lotdates.Result{Loaded: 3, Inserted: 3, Backfilled: 1}, res)

	suite.Require().NotNil(suite.manufacturedDate("HX-1"))
	suite.True(day(2025, 6, 13).Equal(suite.manufacturedDate("HX-1").UTC()))
	suite.True(known.Equal(suite.manufacturedDate("HX-2").UTC()))
}

func (suite *StoreIntegrationTestSuite) TestImport_IgnoresDuplicates() {
	ctx := context.Background()
	rows := []lotdates.Row{
		{LotNumber: "HX-1", ManufacturedDate: day(2025, 6, 13)},
		{LotNumber: "HX-1", ManufacturedDate: day(2025, 6, 13)},
	}

	first, err := suite.store.Import(ctx, rows)
	suite.Require().NoError(err)
	suite.Equal(int64(1), first.Inserted)

	second, err := suite.store.Import(ctx, rows)
	suite.Require().NoError(err)
	suite.Equal(int64(0), second.Inserted)

	var count int64
	suite.Require().NoError(suite.container.DB.Model(&lotdates.LotManufacturingDateDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *StoreIntegrationTestSuite) TestImport_EarliestCandidateWins() {
	ctx := context.Background()
	suite.addLot("HX-1", nil)

	_, err := suite.store.Import(ctx, []lotdates.Row{
		{LotNumber: "HX-1", ManufacturedDate: day(2025, 6, 20)},
		{LotNumber: "HX-1", ManufacturedDate: day(2025, 6, 13)},
	})
	suite.Require().NoError(err)
	suite.True(day(2025, 6, 13).Equal(suite.manufacturedDate("HX-1").UTC()))
}

func (suite *StoreIntegrationTestSuite) TestImport_Empty() {
	res, err := suite.store.Import(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Equal(lotdates.Result{}, res)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(StoreIntegrationTestSuite))
}
