package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *catalogrepo.GormCatalogRepository
}

func TestCatalogRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.RestaurantDTO{}, &catalogrepo.DishDTO{}))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE restaurants, dishes").Error)
	suite.repository = catalogrepo.NewGormCatalogRepository(suite.db)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestRestaurantsAndDishes() {
	ctx := context.Background()
	owner := uuid.New()
	restaurant := catalogrepo.RestaurantDTO{ID: uuid.New(), Name: "Taqueria", OwnerID: owner}
	other := catalogrepo.RestaurantDTO{ID: uuid.New(), Name: "Noodles", OwnerID: owner}
	dish := catalogrepo.DishDTO{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		Name:         "Burrito",
		Price:        decimal.RequireFromString("9.50"),
		Options: []catalog.DishOption{
			{Name: "salsa", Choices: []catalog.DishChoice{{Name: "verde"}, {Name: "habanero", Extra: decimal.NewFromInt(1)}}},
		},
	}
	suite.Require().NoError(suite.db.Create(&[]catalogrepo.RestaurantDTO{restaurant, other}).Error)
	suite.Require().NoError(suite.db.Create(&dish).Error)

	restaurantID, err := kernel.UUIDFromBytes(restaurant.ID[:])
	suite.Require().NoError(err)
	gotRestaurant, err := suite.repository.GetRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Equal("Taqueria", gotRestaurant.Name())

	dishID, err := kernel.UUIDFromBytes(dish.ID[:])
	suite.Require().NoError(err)
	gotDish, err := suite.repository.GetDish(ctx, dishID)
	suite.Require().NoError(err)
	suite.True(gotDish.BasePrice().Equal(decimal.RequireFromString("9.50")))
	salsa, ok := gotDish.FindOption("salsa")
	suite.Require().True(ok)
	habanero, ok := salsa.FindChoice("habanero")
	suite.Require().True(ok)
	suite.True(habanero.Extra.Equal(decimal.NewFromInt(1)))

	ownerID, err := kernel.UUIDFromBytes(owner[:])
	suite.Require().NoError(err)
	ids, err := suite.repository.ListRestaurantIDsByOwner(ctx, ownerID)
	suite.Require().NoError(err)
	suite.Len(ids, 2)

	none, err := suite.repository.ListRestaurantIDsByOwner(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMissingRecords() {
	_, err := suite.repository.GetRestaurant(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetDish(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
