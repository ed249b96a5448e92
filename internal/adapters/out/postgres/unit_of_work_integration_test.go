package postgres_test

import (
	"context"
	"testing"
	"time"

	"restobot/internal/adapters/out/postgres"
	"restobot/internal/adapters/out/postgres/menurepo"
	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
	suite.Require().NoError(menurepo.NewGormMenuCatalog(db).Seed(ctx))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM order_items").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM orders").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) placeOrder() *order.Order {
	price, err := kernel.MoneyFromString("12.99")
	suite.Require().NoError(err)
	item, err := order.NewItem("1", "Margherita Pizza", 1, price)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), "Alice", []order.Item{item}, time.Now())
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsChanges() {
	ctx := context.Background()
	placed := suite.placeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.TransitionTo(order.Confirmed, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	placed := suite.placeOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.TransitionTo(order.Confirmed, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, loaded.Status())
}

// TestConcurrentTransitionsSerialize drives two transactions at the same
// order. The first moves it to Preparing and commits while the second waits
// on the row lock; once the lock is released the second sees the Preparing
// state and its Confirmed request fails the transition check, so exactly one
// of the two conflicting updates wins.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTransitionsSerialize() {
	ctx := context.Background()
	placed := suite.placeOrder()

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))

	aggregate, err := first.OrderRepository().GetForUpdate(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.TransitionTo(order.Preparing, time.Now()))
	suite.Require().NoError(first.OrderRepository().Update(ctx, aggregate))

	secondDone := make(chan error, 1)
	go func() {
		second := suite.factory.Create()
		if beginErr := second.Begin(ctx); beginErr != nil {
			secondDone <- beginErr
			return
		}
		defer func() {
			_ = second.Rollback(ctx)
		}()

		// Blocks on the row lock until the first transaction commits.
		locked, lockErr := second.OrderRepository().GetForUpdate(ctx, placed.ID())
		if lockErr != nil {
			secondDone <- lockErr
			return
		}
		secondDone <- locked.TransitionTo(order.Confirmed, time.Now())
	}()

	// Give the second transaction time to queue on the lock, then release it.
	time.Sleep(200 * time.Millisecond)
	suite.Require().NoError(first.Commit(ctx))

	err = <-secondDone
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)

	loaded, getErr := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(getErr)
	suite.Equal(order.Preparing, loaded.Status())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
