package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/earningsrepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/qcrepo"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.DeclineDTO{},
		&inventoryrepo.ItemDTO{},
		&earningsrepo.RecordDTO{},
		&qcrepo.RecordDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_line_items, order_declines, " +
		"inventory_items, earnings_records, qc_records, audit_entries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newOrder() *order.Order {
	lineItem, err := order.NewLineItem(kernel.NewUUID(), 2)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), []order.LineItem{lineItem})
	suite.Require().NoError(err)

	return aggregate
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsOrderWithLineItems() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Created, restored.Status())
	suite.Equal(1, restored.Version())
	suite.Require().Len(restored.LineItems(), 1)
	suite.Equal(2, restored.LineItems()[0].Quantity())
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	item, err := inventory.NewItem(kernel.NewUUID(), "wax seal kit", 10)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, item))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestUpdate_IncrementsVersion() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(aggregate.ConfirmPayment())

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(2, aggregate.Version())

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, restored.Status())
	suite.Equal(2, restored.Version())
}

func (suite *UnitOfWorkTestSuite) TestUpdate_StaleVersionIsConflict() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// Two loads of the same order race; the second writer must lose.
	first, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmPayment())
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(second.ConfirmPayment())
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkTestSuite) TestDeclineHistory_SurvivesRoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	writerID := kernel.NewUUID()

	suite.Require().NoError(aggregate.ConfirmPayment())
	suite.Require().NoError(aggregate.Offer(time.Now()))
	suite.Require().NoError(aggregate.Decline(writerID, "outside my writing style", time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.HasDeclined(writerID))
	suite.Require().Len(restored.DeclineHistory(), 1)
	suite.Equal("outside my writing style", restored.DeclineHistory()[0].Reason())
}

func (suite *UnitOfWorkTestSuite) TestGetAllOfferedBefore_FiltersByCutoff() {
	ctx := context.Background()

	stale := suite.newOrder()
	suite.Require().NoError(stale.ConfirmPayment())
	suite.Require().NoError(stale.Offer(time.Now().Add(-time.Hour)))

	fresh := suite.newOrder()
	suite.Require().NoError(fresh.ConfirmPayment())
	suite.Require().NoError(fresh.Offer(time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, stale))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, fresh))
	suite.Require().NoError(uow.Commit(ctx))

	found, err := suite.factory.Create().OrderRepository().
		GetAllOfferedBefore(ctx, time.Now().Add(-30*time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(stale.ID().IsEqual(found[0].ID()))
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
