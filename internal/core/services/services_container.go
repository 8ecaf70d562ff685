package services

import (
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stallchain/internal/core/ports/services"
	"github.com/SscSPs/stallchain/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// opts apply to every service; expenseOpts only to the expense service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, expenseOpts []ExpenseOption, opts ...Option) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the stall service first since the others check stalls through it
	container.Stall = NewStallService(repos.StallRepo, opts...)
	scoped := append(append([]Option{}, opts...), WithStallGuard(container.Stall))

	container.User = NewUserService(repos.UserRepo, opts...)
	container.Token = NewTokenService(cfg, opts...)

	container.DeliveryZone = NewDeliveryZoneService(repos.DeliveryZoneRepo, scoped...)
	container.Order = NewOrderService(repos.OrderRepo, repos.DeliveryZoneRepo, scoped...)
	container.Payroll = NewPayrollService(repos.PayrollRepo, scoped...)
	container.Investor = NewInvestorService(repos.InvestorRepo, scoped...)
	container.Expense = NewExpenseService(repos.ExpenseRepo, expenseOpts, scoped...)
	container.ProfitLoss = NewProfitLossService(repos, scoped...)
	container.Inventory = NewInventoryService(repos.InventoryRepo, scoped...)
	container.StallPerformance = NewStallPerformanceService(repos.StallPerformanceRepo, repos.OrderRepo, scoped...)

	return container
}
