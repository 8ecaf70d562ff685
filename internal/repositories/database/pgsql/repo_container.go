package pgsql

import (
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:             newPgxUserRepository(dbPool),
		StallRepo:            newPgxStallRepository(dbPool),
		DeliveryZoneRepo:     newPgxRecordRepository[domain.DeliveryZone](dbPool, kindDeliveryZone),
		OrderRepo:            newPgxRecordRepository[domain.Order](dbPool, kindOrder),
		PayrollRepo:          newPgxRecordRepository[domain.Payroll](dbPool, kindPayroll),
		InvestorRepo:         newPgxRecordRepository[domain.Investor](dbPool, kindInvestor),
		ExpenseRepo:          newPgxExpenseRepository(dbPool),
		ProfitLossRepo:       newPgxRecordRepository[domain.ProfitLoss](dbPool, kindProfitLoss),
		InventoryRepo:        newPgxInventoryRepository(dbPool),
		StallPerformanceRepo: newPgxRecordRepository[domain.StallPerformance](dbPool, kindStallPerformance),
	}
}
