package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/core/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockInventoryRepository
	mockGuard    *MockStallGuard
	mockNotifier *MockNotifier
	service      portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.mockGuard = new(MockStallGuard)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewInventoryService(suite.mockRepo,
		services.WithClock(fixedClock),
		services.WithStallGuard(suite.mockGuard),
		services.WithNotifier(suite.mockNotifier))
}

// paneerBatch expires daysLeft days after testNow and is refreshed at testNow.
func paneerBatch(id string, daysLeft int) *domain.Inventory {
	b := &domain.Inventory{
		BatchID:              id,
		BatchNumber:          "PN-" + id,
		ItemName:             "Paneer",
		ItemKind:             domain.ItemRawMaterial,
		Unit:                 "kg",
		ExpiryDate:           testNow.AddDate(0, 0, daysLeft),
		CostPerUnit:          dec("250"),
		ProductionHouseStock: dec("40"),
		StallWiseStock:       []domain.StallStock{{StallID: "stall-1", Quantity: dec("10")}},
		MinimumStockLevel:    dec("20"),
		NearExpiryAlert:      domain.NearExpiryAlert{Enabled: true, DaysBeforeExpiry: 3},
		WastageRecords:       []domain.WastageRecord{},
		IsActive:             true,
		Versioned:            domain.Versioned{Version: 6},
	}
	b.Refresh(testNow)
	return b
}

func batchID(id string) any {
	return mock.MatchedBy(func(b domain.Inventory) bool { return b.BatchID == id })
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestCreateBatch_Success() {
	ctx := context.Background()
	req := dto.CreateBatchRequest{
		BatchNumber:           "PN-0615",
		ItemName:              "Paneer",
		ItemKind:              "raw-material",
		Unit:                  "kg",
		ExpiryDate:            testNow.AddDate(0, 0, 2),
		CostPerUnit:           dec("250"),
		ProductionHouseStock:  dec("30"),
		StallWiseStock:        []dto.StallStockRequest{{StallID: "stall-1", Quantity: dec("5")}},
		AlertEnabled:          true,
		AlertDaysBeforeExpiry: 3,
	}

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(b domain.Inventory) bool {
		return b.Version == 1 && b.IsActive && b.StallWiseStock[0].LastUpdated.Equal(testNow)
	})).Return(nil).Once()

	b, err := suite.service.CreateBatch(ctx, req, testManager)

	suite.Require().NoError(err)
	suite.Equal(domain.BatchNearExpiry, b.BatchStatus)
	suite.Equal(2, b.DaysUntilExpiry)
	suite.True(dec("35").Equal(b.TotalStockQuantity))
	suite.True(dec("8750").Equal(b.TotalBatchValue))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateBatch_AlreadyExpired() {
	req := dto.CreateBatchRequest{
		BatchNumber: "PN-OLD",
		ItemName:    "Paneer",
		ItemKind:    "raw-material",
		Unit:        "kg",
		ExpiryDate:  testNow.AddDate(0, 0, -2),
	}

	b, err := suite.service.CreateBatch(context.Background(), req, testManager)

	suite.Nil(b)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestListBatches_ByStall() {
	ctx := context.Background()
	filter := portsrepo.ListFilter{StallID: "stall-1"}

	suite.mockRepo.On("ListByStall", ctx, "stall-1", filter).Return([]domain.Inventory{*paneerBatch("b-1", 10)}, nil).Once()

	list, err := suite.service.ListBatches(ctx, filter)

	suite.Require().NoError(err)
	suite.Len(list, 1)
	suite.mockRepo.AssertNotCalled(suite.T(), "List", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestTransferStock() {
	ctx := context.Background()

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-2").Return(nil).Twice()
	suite.mockRepo.On("FindByID", ctx, "b-1").Return(paneerBatch("b-1", 10), nil).Twice()
	suite.mockRepo.On("Update", ctx, withVersion[domain.Inventory](7)).Return(nil).Once()

	b, err := suite.service.TransferStock(ctx, "b-1", dto.TransferStockRequest{StallID: "stall-2", Quantity: dec("15")}, testManager)
	suite.Require().NoError(err)
	suite.True(dec("25").Equal(b.ProductionHouseStock))
	at, ok := b.StockAt("stall-2")
	suite.True(ok)
	suite.True(dec("15").Equal(at))
	suite.True(dec("50").Equal(b.TotalStockQuantity))

	_, err = suite.service.TransferStock(ctx, "b-1", dto.TransferStockRequest{StallID: "stall-2", Quantity: dec("41")}, testManager)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *InventoryServiceTestSuite) TestRemoveStock_LowStockAlertOnTransition() {
	ctx := context.Background()
	req := dto.StockMovementRequest{Quantity: dec("35")}

	suite.mockRepo.On("FindByID", ctx, "b-1").Return(paneerBatch("b-1", 10), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotifyBatchLowStock && n.Details["stock"] == "15 kg" && n.Details["minimum"] == "20 kg"
	})).Return(nil).Once()

	b, err := suite.service.RemoveStock(ctx, "b-1", req, testStaff)

	suite.Require().NoError(err)
	suite.True(dec("5").Equal(b.ProductionHouseStock))
	suite.True(b.IsLowStock())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRemoveStock_AlreadyLowIsQuiet() {
	ctx := context.Background()
	low := paneerBatch("b-1", 10)
	low.ProductionHouseStock = dec("5")
	low.Refresh(testNow)

	suite.mockGuard.On("EnsureStallActive", ctx, "stall-1").Return(nil).Once()
	suite.mockRepo.On("FindByID", ctx, "b-1").Return(low, nil).Once()
	suite.mockRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

	b, err := suite.service.RemoveStock(ctx, "b-1", dto.StockMovementRequest{Location: "stall-1", Quantity: dec("50")}, testStaff)

	suite.Require().NoError(err)
	at, _ := b.StockAt("stall-1")
	suite.True(at.IsZero(), "stock never goes negative")
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestExpiredBatch_StockCanStillLeave() {
	ctx := context.Background()
	expired := func() *domain.Inventory { return paneerBatch("b-old", -1) }

	suite.Run("remove", func() {
		suite.mockRepo.On("FindByID", ctx, "b-old").Return(expired(), nil).Once()
		suite.mockRepo.On("Update", ctx, batchID("b-old")).Return(nil).Once()

		b, err := suite.service.RemoveStock(ctx, "b-old", dto.StockMovementRequest{Quantity: dec("25")}, testStaff)

		suite.Require().NoError(err)
		suite.False(b.IsActive)
		suite.True(dec("15").Equal(b.ProductionHouseStock))
	})

	suite.Run("add is refused", func() {
		suite.mockRepo.On("FindByID", ctx, "b-old").Return(expired(), nil).Once()

		b, err := suite.service.AddStock(ctx, "b-old", dto.StockMovementRequest{Quantity: dec("5")}, testStaff)

		suite.Nil(b)
		suite.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (suite *InventoryServiceTestSuite) TestRecordWastage() {
	ctx := context.Background()
	req := dto.WastageRequest{Location: "stall-1", Quantity: dec("4"), Reason: "spoiled"}

	suite.mockRepo.On("FindByID", ctx, "b-1").Return(paneerBatch("b-1", 10), nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(b domain.Inventory) bool {
		return len(b.WastageRecords) == 1 && b.TotalWastageCost.Equal(dec("1000"))
	})).Return(nil).Once()

	rec, err := suite.service.RecordWastage(ctx, "b-1", req, testStaff)

	suite.Require().NoError(err)
	suite.True(dec("1000").Equal(rec.CostImpact))
	suite.Equal(testStaff, rec.RecordedBy)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)

	suite.mockRepo.On("FindByID", ctx, "b-1").Return(paneerBatch("b-1", 10), nil).Once()
	_, err = suite.service.RecordWastage(ctx, "b-1", dto.WastageRequest{Location: "stall-1", Quantity: dec("11"), Reason: "spoiled"}, testStaff)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *InventoryServiceTestSuite) TestRefreshAllBatches() {
	ctx := context.Background()
	fresh := paneerBatch("b-fresh", 10)
	nearing := paneerBatch("b-near", 2)
	nearing.BatchStatus = domain.BatchFresh // stale from a previous run
	expired := paneerBatch("b-expired", 5)
	expired.ExpiryDate = testNow.AddDate(0, 0, -1)
	broken := paneerBatch("b-broken", 1)
	broken.DaysUntilExpiry = 2

	suite.mockRepo.On("List", ctx, portsrepo.ListFilter{}).
		Return([]domain.Inventory{*fresh, *nearing, *expired, *broken}, nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(b domain.Inventory) bool {
		return b.BatchID == "b-near" && b.Version == 7 && b.NearExpiryAlert.LastAlertSentAt != nil && b.LastUpdatedBy == "system"
	})).Return(nil).Once()
	suite.mockRepo.On("Update", ctx, mock.MatchedBy(func(b domain.Inventory) bool {
		return b.BatchID == "b-expired" && !b.IsActive && b.BatchStatus == domain.BatchExpired
	})).Return(nil).Once()
	suite.mockRepo.On("Update", ctx, batchID("b-broken")).Return(errors.New("conflict")).Once()
	suite.mockNotifier.On("Notify", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotifyBatchNearExpiry && n.RecordID == "b-near" && n.Details["daysUntilExpiry"] == "2"
	})).Return(nil).Once()

	summary, err := suite.service.RefreshAllBatches(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, summary.Refreshed)
	suite.Equal([]string{"b-expired"}, summary.Expired)
	suite.Equal([]string{"b-near"}, summary.NearExpiry)
	suite.Equal([]string{"b-broken"}, summary.Failed)
	suite.Equal(1, summary.AlertsQueued)
	suite.Empty(summary.LowStock)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", ctx, batchID("b-fresh"))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRefreshAllBatches_AlertThrottled() {
	ctx := context.Background()
	nearing := paneerBatch("b-near", 2)
	sent := testNow.Add(-6 * time.Hour)
	nearing.NearExpiryAlert.LastAlertSentAt = &sent

	suite.mockRepo.On("List", ctx, portsrepo.ListFilter{}).Return([]domain.Inventory{*nearing}, nil).Once()

	summary, err := suite.service.RefreshAllBatches(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Refreshed)
	suite.Zero(summary.AlertsQueued)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything)
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
