package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/audit"
	"fulfillment/internal/core/domain/model/earnings"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/qc"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOfferedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

type MockEarningsRepository struct{ mock.Mock }

func (m *MockEarningsRepository) Add(ctx context.Context, record *earnings.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEarningsRepository) Update(ctx context.Context, record *earnings.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEarningsRepository) Get(ctx context.Context, id kernel.UUID) (*earnings.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*earnings.Record), args.Error(1)
}

func (m *MockEarningsRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*earnings.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*earnings.Record), args.Error(1)
}

type MockQCRepository struct{ mock.Mock }

func (m *MockQCRepository) Add(ctx context.Context, record *qc.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockQCRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*qc.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*qc.Record), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockUoW implements every UoW shape the handlers use; tests wire only
// the repositories a handler actually asks for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) EarningsRepository() ports.EarningsRepository {
	args := m.Called()
	return args.Get(0).(ports.EarningsRepository)
}

func (m *MockUoW) QCRepository() ports.QCRepository {
	args := m.Called()
	return args.Get(0).(ports.QCRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func newLineItems(t *testing.T, quantities ...int) []order.LineItem {
	t.Helper()
	lineItems := make([]order.LineItem, 0, len(quantities))
	for _, quantity := range quantities {
		li, err := order.NewLineItem(kernel.NewUUID(), quantity)
		require.NoError(t, err)
		lineItems = append(lineItems, li)
	}
	return lineItems
}

// newPaidOrder builds an order whose payment settled.
func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), newLineItems(t, 1))
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPayment())
	return o
}

// newOfferedOrder builds an order sitting in the writer pool.
func newOfferedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), newLineItems(t, 1))
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPayment())
	require.NoError(t, o.Offer(time.Now()))
	return o
}

// newAssignedOrder builds an order claimed by the given writer.
func newAssignedOrder(t *testing.T, writerID kernel.UUID) *order.Order {
	t.Helper()
	o := newOfferedOrder(t)
	require.NoError(t, o.Accept(writerID))
	return o
}

// newReviewableOrder builds an order with a submitted draft in QCReview.
func newReviewableOrder(t *testing.T, writerID kernel.UUID) *order.Order {
	t.Helper()
	o := newAssignedOrder(t, writerID)
	require.NoError(t, o.SubmitDraft("s3://drafts/poem-1.pdf"))
	require.NoError(t, o.EnqueueQC())
	return o
}
