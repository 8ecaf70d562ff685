package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actor domain.Actor) (*domain.User, error) {
	args := m.Called(ctx, userID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, actor domain.Actor) error {
	return m.Called(ctx, userID, actor).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock StallService ---
type MockStallService struct {
	mock.Mock
}

func (m *MockStallService) GetStallByID(ctx context.Context, stallID string) (*domain.Stall, error) {
	args := m.Called(ctx, stallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stall), args.Error(1)
}
func (m *MockStallService) ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error) {
	args := m.Called(ctx, includeInactive, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stall), args.Error(1)
}
func (m *MockStallService) CreateStall(ctx context.Context, req dto.CreateStallRequest, actor domain.Actor) (*domain.Stall, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stall), args.Error(1)
}
func (m *MockStallService) UpdateStall(ctx context.Context, stallID string, req dto.UpdateStallRequest, actor domain.Actor) (*domain.Stall, error) {
	args := m.Called(ctx, stallID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stall), args.Error(1)
}
func (m *MockStallService) DeactivateStall(ctx context.Context, stallID string, expectedVersion *int64, actor domain.Actor) error {
	return m.Called(ctx, stallID, expectedVersion, actor).Error(0)
}
func (m *MockStallService) EnsureStallActive(ctx context.Context, stallID string) error {
	return m.Called(ctx, stallID).Error(0)
}

var _ portssvc.StallSvcFacade = (*MockStallService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) order(args mock.Arguments) (*domain.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return m.order(m.Called(ctx, orderID))
}
func (m *MockOrderService) ListOrders(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest, actor domain.Actor) (*domain.Order, error) {
	return m.order(m.Called(ctx, req, actor))
}
func (m *MockOrderService) AssignRider(ctx context.Context, orderID string, req dto.AssignRiderRequest, actor domain.Actor) (*domain.Order, error) {
	return m.order(m.Called(ctx, orderID, req, actor))
}
func (m *MockOrderService) AdvanceOrder(ctx context.Context, orderID string, req dto.AdvanceOrderRequest, actor domain.Actor) (*domain.Order, error) {
	return m.order(m.Called(ctx, orderID, req, actor))
}
func (m *MockOrderService) CancelOrder(ctx context.Context, orderID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Order, error) {
	return m.order(m.Called(ctx, orderID, req, actor))
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) expense(args mock.Arguments) (*domain.Expense, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseService) GetExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID))
}
func (m *MockExpenseService) ListExpenses(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, req, actor))
}
func (m *MockExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) DeleteExpense(ctx context.Context, expenseID string, expectedVersion *int64, actor domain.Actor) error {
	return m.Called(ctx, expenseID, expectedVersion, actor).Error(0)
}
func (m *MockExpenseService) AttachReceipt(ctx context.Context, expenseID string, file dto.ReceiptUpload, body io.Reader, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, file, body, actor))
}
func (m *MockExpenseService) SubmitExpense(ctx context.Context, expenseID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) ApproveExpense(ctx context.Context, expenseID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) RejectExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) PayExpense(ctx context.Context, expenseID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) CancelExpense(ctx context.Context, expenseID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Expense, error) {
	return m.expense(m.Called(ctx, expenseID, req, actor))
}
func (m *MockExpenseService) GenerateRecurringExpenses(ctx context.Context) (*dto.RecurringRunResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecurringRunResponse), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) payroll(args mock.Arguments) (*domain.Payroll, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID))
}
func (m *MockPayrollService) ListPayrolls(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Payroll, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) CreatePayroll(ctx context.Context, req dto.CreatePayrollRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, req, actor))
}
func (m *MockPayrollService) UpdatePayroll(ctx context.Context, payrollID string, req dto.UpdatePayrollRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}
func (m *MockPayrollService) DeletePayroll(ctx context.Context, payrollID string, expectedVersion *int64, actor domain.Actor) error {
	return m.Called(ctx, payrollID, expectedVersion, actor).Error(0)
}
func (m *MockPayrollService) SubmitPayroll(ctx context.Context, payrollID string, req dto.TransitionRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}
func (m *MockPayrollService) ApprovePayroll(ctx context.Context, payrollID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}
func (m *MockPayrollService) ProcessPayroll(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}
func (m *MockPayrollService) MarkPayrollPaid(ctx context.Context, payrollID string, req dto.PaymentRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}
func (m *MockPayrollService) CancelPayroll(ctx context.Context, payrollID string, req dto.ReasonRequest, actor domain.Actor) (*domain.Payroll, error) {
	return m.payroll(m.Called(ctx, payrollID, req, actor))
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock InvestorService ---
type MockInvestorService struct {
	mock.Mock
}

func (m *MockInvestorService) investor(args mock.Arguments) (*domain.Investor, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investor), args.Error(1)
}
func (m *MockInvestorService) GetInvestor(ctx context.Context, investorID string) (*domain.Investor, error) {
	return m.investor(m.Called(ctx, investorID))
}
func (m *MockInvestorService) ListInvestors(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Investor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investor), args.Error(1)
}
func (m *MockInvestorService) ProjectROI(ctx context.Context, investorID string, months int) (*domain.ROIProjection, error) {
	args := m.Called(ctx, investorID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ROIProjection), args.Error(1)
}
func (m *MockInvestorService) CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, actor domain.Actor) (*domain.Investor, error) {
	return m.investor(m.Called(ctx, req, actor))
}
func (m *MockInvestorService) AddPayout(ctx context.Context, investorID string, req dto.PayoutRequest, actor domain.Actor) (*domain.PayoutRecord, error) {
	args := m.Called(ctx, investorID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayoutRecord), args.Error(1)
}
func (m *MockInvestorService) ChangeInvestorStatus(ctx context.Context, investorID string, req dto.InvestorStatusRequest, actor domain.Actor) (*domain.Investor, error) {
	return m.investor(m.Called(ctx, investorID, req, actor))
}

var _ portssvc.InvestorSvcFacade = (*MockInvestorService)(nil)

// --- Mock ProfitLossService ---
type MockProfitLossService struct {
	mock.Mock
}

func (m *MockProfitLossService) report(args mock.Arguments) (*domain.ProfitLoss, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitLoss), args.Error(1)
}
func (m *MockProfitLossService) GetReport(ctx context.Context, reportID string) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID))
}
func (m *MockProfitLossService) ListReports(ctx context.Context, filter portsrepo.ListFilter) ([]domain.ProfitLoss, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProfitLoss), args.Error(1)
}
func (m *MockProfitLossService) CreateReport(ctx context.Context, req dto.CreateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, req, actor))
}
func (m *MockProfitLossService) GenerateReport(ctx context.Context, req dto.GenerateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, req, actor))
}
func (m *MockProfitLossService) RecalculateReport(ctx context.Context, reportID string, req dto.RecalculateProfitLossRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}
func (m *MockProfitLossService) DeleteReport(ctx context.Context, reportID string, expectedVersion *int64, actor domain.Actor) error {
	return m.Called(ctx, reportID, expectedVersion, actor).Error(0)
}
func (m *MockProfitLossService) SetOwnerShare(ctx context.Context, reportID string, req dto.OwnerShareRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}
func (m *MockProfitLossService) AddInvestorShare(ctx context.Context, reportID string, req dto.InvestorShareRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}
func (m *MockProfitLossService) RemoveInvestorShare(ctx context.Context, reportID, investorID string, expectedVersion *int64, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, investorID, expectedVersion, actor))
}
func (m *MockProfitLossService) FinalizeReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}
func (m *MockProfitLossService) ApproveReport(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}
func (m *MockProfitLossService) PublishReport(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.ProfitLoss, error) {
	return m.report(m.Called(ctx, reportID, req, actor))
}

var _ portssvc.ProfitLossSvcFacade = (*MockProfitLossService)(nil)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) batch(args mock.Arguments) (*domain.Inventory, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}
func (m *MockInventoryService) GetBatch(ctx context.Context, batchID string) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, batchID))
}
func (m *MockInventoryService) ListBatches(ctx context.Context, filter portsrepo.ListFilter) ([]domain.Inventory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Inventory), args.Error(1)
}
func (m *MockInventoryService) CreateBatch(ctx context.Context, req dto.CreateBatchRequest, actor domain.Actor) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, req, actor))
}
func (m *MockInventoryService) AddStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, batchID, req, actor))
}
func (m *MockInventoryService) RemoveStock(ctx context.Context, batchID string, req dto.StockMovementRequest, actor domain.Actor) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, batchID, req, actor))
}
func (m *MockInventoryService) TransferStock(ctx context.Context, batchID string, req dto.TransferStockRequest, actor domain.Actor) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, batchID, req, actor))
}
func (m *MockInventoryService) RecordWastage(ctx context.Context, batchID string, req dto.WastageRequest, actor domain.Actor) (*domain.WastageRecord, error) {
	args := m.Called(ctx, batchID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WastageRecord), args.Error(1)
}
func (m *MockInventoryService) RefreshBatch(ctx context.Context, batchID string, actor domain.Actor) (*domain.Inventory, error) {
	return m.batch(m.Called(ctx, batchID, actor))
}
func (m *MockInventoryService) RefreshAllBatches(ctx context.Context) (*dto.BatchRefreshSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchRefreshSummary), args.Error(1)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Mock DeliveryZoneService ---
type MockDeliveryZoneService struct {
	mock.Mock
}

func (m *MockDeliveryZoneService) zone(args mock.Arguments) (*domain.DeliveryZone, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryZone), args.Error(1)
}
func (m *MockDeliveryZoneService) GetZone(ctx context.Context, zoneID string) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID))
}
func (m *MockDeliveryZoneService) ListZones(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DeliveryZone, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeliveryZone), args.Error(1)
}
func (m *MockDeliveryZoneService) CreateZone(ctx context.Context, req dto.CreateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, req, actor))
}
func (m *MockDeliveryZoneService) UpdateZone(ctx context.Context, zoneID string, req dto.UpdateDeliveryZoneRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID, req, actor))
}
func (m *MockDeliveryZoneService) DeactivateZone(ctx context.Context, zoneID string, expectedVersion *int64, actor domain.Actor) error {
	return m.Called(ctx, zoneID, expectedVersion, actor).Error(0)
}
func (m *MockDeliveryZoneService) QuoteDelivery(ctx context.Context, zoneID string, req dto.DeliveryQuoteRequest) (*dto.DeliveryQuoteResponse, error) {
	args := m.Called(ctx, zoneID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeliveryQuoteResponse), args.Error(1)
}
func (m *MockDeliveryZoneService) PeakStatus(ctx context.Context, zoneID string) (*dto.PeakStatusResponse, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PeakStatusResponse), args.Error(1)
}
func (m *MockDeliveryZoneService) AssignDeliveryPerson(ctx context.Context, zoneID string, req dto.AssignDeliveryPersonRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID, req, actor))
}
func (m *MockDeliveryZoneService) RemoveDeliveryPerson(ctx context.Context, zoneID, personID string, expectedVersion *int64, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID, personID, expectedVersion, actor))
}
func (m *MockDeliveryZoneService) SetPersonAvailability(ctx context.Context, zoneID, personID string, req dto.PersonAvailabilityRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID, personID, req, actor))
}
func (m *MockDeliveryZoneService) RecordDelivery(ctx context.Context, zoneID string, req dto.RecordDeliveryRequest, actor domain.Actor) (*domain.DeliveryZone, error) {
	return m.zone(m.Called(ctx, zoneID, req, actor))
}

var _ portssvc.DeliveryZoneSvcFacade = (*MockDeliveryZoneService)(nil)

// --- Mock StallPerformanceService ---
type MockStallPerformanceService struct {
	mock.Mock
}

func (m *MockStallPerformanceService) scorecard(args mock.Arguments) (*domain.StallPerformance, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StallPerformance), args.Error(1)
}
func (m *MockStallPerformanceService) GetScorecard(ctx context.Context, reportID string) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID))
}
func (m *MockStallPerformanceService) ListScorecards(ctx context.Context, filter portsrepo.ListFilter) ([]domain.StallPerformance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StallPerformance), args.Error(1)
}
func (m *MockStallPerformanceService) CreateScorecard(ctx context.Context, req dto.CreateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, req, actor))
}
func (m *MockStallPerformanceService) UpdateScorecard(ctx context.Context, reportID string, req dto.UpdateScorecardRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID, req, actor))
}
func (m *MockStallPerformanceService) SubmitScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID, req, actor))
}
func (m *MockStallPerformanceService) ReviewScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID, req, actor))
}
func (m *MockStallPerformanceService) ApproveScorecard(ctx context.Context, reportID string, req dto.ApprovalRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID, req, actor))
}
func (m *MockStallPerformanceService) ArchiveScorecard(ctx context.Context, reportID string, req dto.TransitionRequest, actor domain.Actor) (*domain.StallPerformance, error) {
	return m.scorecard(m.Called(ctx, reportID, req, actor))
}

var _ portssvc.StallPerformanceSvcFacade = (*MockStallPerformanceService)(nil)
