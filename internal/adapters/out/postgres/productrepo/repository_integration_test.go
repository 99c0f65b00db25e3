package productrepo_test

import (
	"context"
	"testing"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/adapters/out/postgres/productrepo"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgtest.Container
	repository *productrepo.GormProductRepository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.Require().NoError(postgresadapter.Migrate(container.DB))
	suite.repository = productrepo.NewGormProductRepository(container.DB)
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.container.DB.Exec("TRUNCATE TABLE products").Error)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	p, err := product.NewProduct("KR-001", "홍삼 캔디", "Red ginseng candy", 24, product.Dimensions{
		WidthCm:  decimal.RequireFromString("40.5"),
		HeightCm: decimal.RequireFromString("30"),
		DepthCm:  decimal.RequireFromString("25.25"),
		WeightKg: decimal.RequireFromString("8.125"),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, p))
	got, err := suite.repository.Get(ctx, "KR-001")

	suite.Require().NoError(err)
	suite.Equal("홍삼 캔디", got.NameKo())
	suite.Equal(24, got.PcsPerCarton())
	suite.True(p.CBM().Equal(got.CBM()), got.CBM().String())
	suite.True(decimal.RequireFromString("8.125").Equal(got.Carton().WeightKg))
	suite.True(got.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateCode() {
	ctx := context.Background()
	p, err := product.NewProduct("KR-001", "김", "", 10, product.Dimensions{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	err = suite.repository.Add(ctx, p)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate() {
	ctx := context.Background()
	p, err := product.NewProduct("KR-001", "홍삼 캔디", "", 24, product.Dimensions{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, p))

	nameEn := "Red ginseng candy"
	carton := product.Dimensions{
		WidthCm:  decimal.RequireFromString("50"),
		HeightCm: decimal.RequireFromString("40"),
		DepthCm:  decimal.RequireFromString("30"),
		WeightKg: decimal.RequireFromString("11.5"),
	}
	suite.Require().NoError(p.Apply(product.Changes{NameEn: &nameEn, Carton: &carton}))
	p.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, p))

	got, err := suite.repository.Get(ctx, "KR-001")
	suite.Require().NoError(err)
	suite.Equal("Red ginseng candy", got.NameEn())
	suite.True(decimal.RequireFromString("0.06").Equal(got.CBM()), got.CBM().String())
	suite.False(got.IsActive())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	p, err := product.NewProduct("KR-404", "김", "", 10, product.Dimensions{})
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(context.Background(), p), errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
