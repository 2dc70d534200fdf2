package impl

import (
	"context"
	"io"
	"log/slog"

	"belleza/internal/domain/entity"
	"belleza/internal/domain/repository"
	"belleza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- repository mocks ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	args := m.Called(ctx, id, role)

	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) FindByOwnerAndService(ctx context.Context, email string, serviceID uuid.UUID) (*entity.CartEntry, error) {
	args := m.Called(ctx, email, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CartEntry), args.Error(1)
}

func (m *mockCartRepo) FindByEmail(ctx context.Context, email string) ([]*entity.CartEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.CartEntry), args.Error(1)
}

func (m *mockCartRepo) Create(ctx context.Context, entry *entity.CartEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *mockCartRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockCartRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)

	return args.Get(0).(int64), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}

func (m *mockPaymentRepo) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockPaymentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPaymentRepo) SumPrice(ctx context.Context) (float64, error) {
	args := m.Called(ctx)

	return args.Get(0).(float64), args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) FindAll(ctx context.Context) ([]*entity.ServiceItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ServiceItem), args.Error(1)
}

func (m *mockCatalogRepo) FindByCategory(ctx context.Context, category string) ([]*entity.ServiceItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ServiceItem), args.Error(1)
}

func (m *mockCatalogRepo) Create(ctx context.Context, item *entity.ServiceItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockCatalogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockCatalogRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)

	return args.Error(0)
}

func (m *mockReviewRepo) FindAll(ctx context.Context) ([]*entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

// --- service mocks ---

type mockPaymentGateway struct {
	mock.Mock
}

func (m *mockPaymentGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*service.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.PaymentIntent), args.Error(1)
}

// --- transaction fakes ---

// fakeRepoFactory hands the payment and cart mocks to the settle-phase
// callback as if they were transaction-bound repositories.
type fakeRepoFactory struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
}

func (f *fakeRepoFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.paymentRepo
}

func (f *fakeRepoFactory) NewCartRepository() repository.CartRepository {
	return f.cartRepo
}

// fakeTxManager runs the callback directly, without a database.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
