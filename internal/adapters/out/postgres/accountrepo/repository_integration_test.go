package accountrepo_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres/accountrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *accountrepo.GormAccountRepository
}

func TestAccountRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&accountrepo.AccountDTO{}))
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)
	suite.repository = accountrepo.NewGormAccountRepository(suite.db)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) newAccount(email string) *principal.Account {
	a, err := principal.NewAccount(kernel.NewUUID(), email, "correct horse", principal.Owner, time.Now().UTC())
	suite.Require().NoError(err)
	return a
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ThenLookup() {
	ctx := context.Background()
	a := suite.newAccount("Owner@Eats.test")
	suite.Require().NoError(suite.repository.Add(ctx, a))

	byID, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(a.Principal(), byID.Principal())
	suite.NoError(byID.CheckPassword("correct horse"))

	byEmail, err := suite.repository.GetByEmail(ctx, " OWNER@eats.test ")
	suite.Require().NoError(err)
	suite.Equal(a.ID(), byEmail.ID())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAccount("dup@eats.test")))

	err := suite.repository.Add(ctx, suite.newAccount("DUP@eats.test"))

	suite.Require().ErrorIs(err, principal.ErrEmailTaken)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_Missing() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByEmail(context.Background(), "nobody@eats.test")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
