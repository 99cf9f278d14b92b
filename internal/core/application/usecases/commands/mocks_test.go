package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taproom/internal/core/application/usecases/commands"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 19, 0, 0, 0, time.UTC)

// MockSessionRepository records calls like any testify mock and, for Modify,
// runs fn on a clone of the stored session the way the real repository does.
type MockSessionRepository struct {
	mock.Mock

	stored *session.Session
}

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		m.stored = s
	}
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionRepository) Modify(ctx context.Context, id kernel.UUID, fn func(s *session.Session) error) error {
	args := m.Called(ctx, id)
	if err := args.Error(0); err != nil {
		return err
	}

	clone := m.stored.Clone()
	if err := fn(clone); err != nil {
		return err
	}
	m.stored = clone
	return nil
}

func (m *MockSessionRepository) DeleteIdle(ctx context.Context, now time.Time, ttl time.Duration) (int, error) {
	args := m.Called(ctx, now, ttl)
	return args.Int(0), args.Error(1)
}

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

func (m *MockOrderRepository) GetAllSubmitted(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderHandoff struct{ mock.Mock }

func (m *MockOrderHandoff) Handoff(ctx context.Context, o *order.Order) (ports.HandoffReceipt, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(ports.HandoffReceipt), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderSubmitted(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type engine struct {
	guard services.CartGuard
	flow  services.CheckoutFlow
}

func newEngine(t *testing.T) engine {
	t.Helper()

	cat, err := catalog.DefaultCatalog()
	require.NoError(t, err)
	table, err := catalog.DefaultPriceTable()
	require.NoError(t, err)

	resolver := services.NewPricingResolver(table)
	guard := services.NewCartGuard(cat, resolver)
	recommender := services.NewUpsellRecommender(cat, resolver, services.DefaultAlwaysSuggest()...)

	return engine{
		guard: guard,
		flow:  services.NewCheckoutFlow(guard, recommender, services.NewOrderAssembler(kernel.Reais(10))),
	}
}

// storedSession puts a browsing session at location into repo.
func storedSession(t *testing.T, repo *MockSessionRepository, location kernel.Location) *session.Session {
	t.Helper()

	s, err := session.NewSession(kernel.NewUUID(), now)
	require.NoError(t, err)
	if location.IsKnown() {
		require.NoError(t, s.SelectLocation(location))
	}
	repo.stored = s
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
