package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock record repositories ---

// MockRecordRepository mocks the generic record store for any record type.
type MockRecordRepository[T domain.Record] struct {
	mock.Mock
}

func (m *MockRecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// hand out a copy so the stored fixture survives in-place mutation
	rec := *args.Get(0).(*T)
	return &rec, args.Error(1)
}

func (m *MockRecordRepository[T]) List(ctx context.Context, filter portsrepo.ListFilter) ([]T, error) {
	args := m.Called(ctx, filter)
	var list []T
	if args.Get(0) != nil {
		list = args.Get(0).([]T)
	}
	return list, args.Error(1)
}

func (m *MockRecordRepository[T]) Save(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockExpenseRepository struct {
	MockRecordRepository[domain.Expense]
}

func (m *MockExpenseRepository) FindRecurring(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	var list []domain.Expense
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Expense)
	}
	return list, args.Error(1)
}

func (m *MockExpenseRepository) SaveOccurrence(ctx context.Context, template domain.Expense, occurrence domain.Expense) error {
	args := m.Called(ctx, template, occurrence)
	return args.Error(0)
}

type MockInventoryRepository struct {
	MockRecordRepository[domain.Inventory]
}

func (m *MockInventoryRepository) ListByStall(ctx context.Context, stallID string, filter portsrepo.ListFilter) ([]domain.Inventory, error) {
	args := m.Called(ctx, stallID, filter)
	var list []domain.Inventory
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Inventory)
	}
	return list, args.Error(1)
}

// --- Mock stall repository ---

type MockStallRepository struct {
	mock.Mock
}

func (m *MockStallRepository) FindStallByID(ctx context.Context, stallID string) (*domain.Stall, error) {
	args := m.Called(ctx, stallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	stall := *args.Get(0).(*domain.Stall)
	return &stall, args.Error(1)
}

func (m *MockStallRepository) ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	var list []domain.Stall
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Stall)
	}
	return list, args.Error(1)
}

func (m *MockStallRepository) SaveStall(ctx context.Context, stall domain.Stall) error {
	args := m.Called(ctx, stall)
	return args.Error(0)
}

func (m *MockStallRepository) UpdateStall(ctx context.Context, stall domain.Stall) error {
	args := m.Called(ctx, stall)
	return args.Error(0)
}

// --- Mock collaborators ---

type MockStallGuard struct {
	mock.Mock
}

func (m *MockStallGuard) EnsureStallActive(ctx context.Context, stallID string) error {
	args := m.Called(ctx, stallID)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockReceiptStorage struct {
	mock.Mock
}

func (m *MockReceiptStorage) PutReceipt(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, size, body)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptStorage) DeleteReceipt(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Shared fixtures ---

var (
	testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	testOwner      = domain.Actor{UserID: "user-owner", UserName: "Asha", UserRole: domain.RoleOwner}
	testManager    = domain.Actor{UserID: "user-manager", UserName: "Ravi", UserRole: domain.RoleManager}
	testAccountant = domain.Actor{UserID: "user-accounts", UserName: "Farah", UserRole: domain.RoleAccountant}
	testStaff      = domain.Actor{UserID: "user-staff", UserName: "Kiran", UserRole: domain.RoleStaff}
)

func fixedClock() time.Time { return testNow }

func int64Ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// withVersion matches an Update call carrying the given version.
func withVersion[T domain.Record](version int64) any {
	return mock.MatchedBy(func(rec T) bool { return rec.CurrentVersion() == version })
}
