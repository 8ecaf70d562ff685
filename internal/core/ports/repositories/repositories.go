package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo             UserRepositoryFacade
	StallRepo            StallRepositoryFacade
	DeliveryZoneRepo     DeliveryZoneRepositoryFacade
	OrderRepo            OrderRepositoryFacade
	PayrollRepo          PayrollRepositoryFacade
	InvestorRepo         InvestorRepositoryFacade
	ExpenseRepo          ExpenseRepositoryFacade
	ProfitLossRepo       ProfitLossRepositoryFacade
	InventoryRepo        InventoryRepositoryFacade
	StallPerformanceRepo StallPerformanceRepositoryFacade
}
