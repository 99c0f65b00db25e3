package pricerepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/adapters/out/postgres/pricerepo"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type PriceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgtest.Container
	repository *pricerepo.GormPriceRepository
}

func (suite *PriceRepositoryIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.Require().NoError(postgresadapter.Migrate(container.DB))
	suite.repository = pricerepo.NewGormPriceRepository(container.DB)
}

func (suite *PriceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.DB.Exec("TRUNCATE TABLE price_entries RESTART IDENTITY").Error)
}

func (suite *PriceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PriceRepositoryIntegrationTestSuite) appendEntry(code, effective string, base, commission int64) pricing.Entry {
	date, err := time.Parse(time.DateOnly, effective)
	suite.Require().NoError(err)
	e, err := pricing.NewEntry(code, base, commission, date, time.Now())
	suite.Require().NoError(err)
	stored, err := suite.repository.Append(context.Background(), e)
	suite.Require().NoError(err)
	return stored
}

func (suite *PriceRepositoryIntegrationTestSuite) TestLatestAt() {
	ctx := context.Background()
	suite.appendEntry("A", "2024-01-01", 1000, 100)
	jun := suite.appendEntry("A", "2024-06-01", 1200, 150)
	suite.appendEntry("B", "2024-06-15", 99, 1)

	got, err := suite.repository.LatestAt(ctx, "A", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(jun.ID(), got.ID())
	suite.Equal(int64(1350), got.Final())
}

func (suite *PriceRepositoryIntegrationTestSuite) TestLatestAt_SameDayUsesLatestInsert() {
	suite.appendEntry("A", "2024-06-01", 1200, 150)
	correction := suite.appendEntry("A", "2024-06-01", 1210, 150)

	got, err := suite.repository.LatestAt(context.Background(), "A", time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal(correction.ID(), got.ID())
}

func (suite *PriceRepositoryIntegrationTestSuite) TestLatestAt_NotFound() {
	suite.appendEntry("A", "2024-06-01", 1200, 150)

	_, err := suite.repository.LatestAt(context.Background(), "A", time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.LatestAt(context.Background(), "Z", time.Now())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PriceRepositoryIntegrationTestSuite) TestHistory_MatchesResolve() {
	suite.appendEntry("A", "2024-06-01", 1200, 150)
	suite.appendEntry("A", "2024-01-01", 1000, 100)

	history, err := suite.repository.History(context.Background(), "A")
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.True(history[0].EffectiveDate().Before(history[1].EffectiveDate()))

	at := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	resolved, err := pricing.Resolve(history, at)
	suite.Require().NoError(err)
	stored, err := suite.repository.LatestAt(context.Background(), "A", at)
	suite.Require().NoError(err)
	suite.Equal(resolved.ID(), stored.ID())
}

func TestPriceRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(PriceRepositoryIntegrationTestSuite))
}
