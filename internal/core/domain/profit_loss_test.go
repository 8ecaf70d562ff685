package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReport() *domain.ProfitLoss {
	return &domain.ProfitLoss{
		ReportID:   "pl-1",
		StallID:    "stall-1",
		PeriodType: domain.PeriodMonthly,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Revenue:    domain.RevenueSummary{TotalSales: dec("100000"), TotalDiscountGiven: dec("5000")},
		Expenses:   domain.ExpenseSummary{TotalExpenses: dec("30000"), CostOfGoodsSold: dec("25000")},
		Deductions: domain.OperatingDeductions{Depreciation: dec("2000"), Commission: dec("3000")},
		TaxDetails: domain.TaxDetails{TaxPayable: dec("5000")},
		Status:     domain.ReportDraft,
		IsActive:   true,
	}
}

func TestProfitLoss_CalculateAll(t *testing.T) {
	r := newReport()
	require.NoError(t, r.CalculateAll())

	s := r.ProfitLoss
	assert.True(t, dec("95000").Equal(s.GrossRevenue))
	assert.True(t, dec("55000").Equal(s.TotalCost))
	assert.True(t, dec("40000").Equal(s.GrossProfit))
	assert.True(t, dec("5000").Equal(s.OperatingExpenses))
	assert.True(t, dec("30000").Equal(s.NetProfitLoss))
	assert.True(t, dec("31.58").Equal(s.ProfitMarginPercentage), "margin %s", s.ProfitMarginPercentage)
	assert.Equal(t, domain.StatusProfit, s.Status)
}

func TestProfitLoss_CalculateAll_Status(t *testing.T) {
	tests := []struct {
		name   string
		sales  string
		want   domain.ProfitStatus
		margin string
	}{
		{"loss", "60000", domain.StatusLoss, "-18.18"},
		{"breakeven", "70000", domain.StatusBreakeven, "0"},
		{"no revenue", "5000", domain.StatusLoss, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReport()
			r.Revenue.TotalSales = dec(tt.sales)
			require.NoError(t, r.CalculateAll())
			assert.Equal(t, tt.want, r.ProfitLoss.Status)
			assert.True(t, dec(tt.margin).Equal(r.ProfitLoss.ProfitMarginPercentage), "margin %s", r.ProfitLoss.ProfitMarginPercentage)
		})
	}
}

func TestProfitLoss_CalculateAll_Idempotent(t *testing.T) {
	r := newReport()
	require.NoError(t, r.SetOwnerShare(dec("50")))
	_, err := r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-1", SharePercentage: dec("20")})
	require.NoError(t, err)

	require.NoError(t, r.CalculateAll())
	first := r.ProfitLoss
	firstDist := r.ProfitDistribution
	require.NoError(t, r.CalculateAll())

	assert.Equal(t, first, r.ProfitLoss)
	assert.True(t, firstDist.RetainedEarnings.Equal(r.ProfitDistribution.RetainedEarnings))
	assert.True(t, firstDist.TotalInvestorShare.Equal(r.ProfitDistribution.TotalInvestorShare))
}

func TestProfitLoss_Distribution(t *testing.T) {
	r := newReport()
	require.NoError(t, r.CalculateAll())
	require.NoError(t, r.SetOwnerShare(dec("50")))

	share, err := r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-1", InvestorName: "Anil", SharePercentage: dec("20")})
	require.NoError(t, err)
	assert.True(t, dec("6000").Equal(share.ShareAmount))

	_, err = r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-2", SharePercentage: dec("10")})
	require.NoError(t, err)

	d := r.ProfitDistribution
	assert.True(t, dec("15000").Equal(d.OwnerShare.Amount))
	assert.True(t, dec("9000").Equal(d.TotalInvestorShare))
	assert.True(t, dec("6000").Equal(d.RetainedEarnings))

	_, err = r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-1", SharePercentage: dec("1")})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	_, err = r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-3", SharePercentage: dec("25")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorIs(t, r.SetOwnerShare(dec("75")), apperrors.ErrValidation)

	require.NoError(t, r.RemoveInvestorShare("inv-2"))
	assert.True(t, dec("6000").Equal(r.ProfitDistribution.TotalInvestorShare))
	assert.True(t, dec("9000").Equal(r.ProfitDistribution.RetainedEarnings))
	assert.ErrorIs(t, r.RemoveInvestorShare("inv-2"), apperrors.ErrNotFound)
}

func TestProfitLoss_Lifecycle(t *testing.T) {
	now := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	r := newReport()

	assert.ErrorIs(t, r.Approve(approver, "", now), apperrors.ErrInvalidStateTransition)
	require.NoError(t, r.Finalize(approver, now))
	assert.Equal(t, domain.ReportFinalized, r.Status)
	assert.True(t, dec("30000").Equal(r.ProfitLoss.NetProfitLoss))

	r.Revenue.TotalSales = dec("1")
	assert.ErrorIs(t, r.CalculateAll(), apperrors.ErrInvalidStateTransition)
	assert.True(t, dec("30000").Equal(r.ProfitLoss.NetProfitLoss))

	_, err := r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-1", SharePercentage: dec("10")})
	require.NoError(t, err, "shares stay editable after finalization")

	assert.ErrorIs(t, r.Publish(now), apperrors.ErrInvalidStateTransition)
	require.NoError(t, r.Approve(approver, "ok", now))
	require.NoError(t, r.Publish(now))
	assert.Equal(t, domain.ReportPublished, r.Status)

	_, err = r.AddInvestorShare(domain.InvestorShare{InvestorID: "inv-2", SharePercentage: dec("10")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestProfitLoss_ApplyExpenses(t *testing.T) {
	r := newReport()
	mk := func(id string, typ domain.ExpenseType, amount string, status domain.ExpenseStatus, date time.Time) domain.Expense {
		return domain.Expense{
			ExpenseID:      id,
			StallID:        "stall-1",
			ExpenseDetails: domain.ExpenseDetails{ExpenseType: typ, ExpenseAmount: dec(amount), ExpenseDate: date},
			TotalWithTax:   dec(amount),
			Status:         status,
			IsActive:       true,
		}
	}
	inJune := time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC)
	expenses := []domain.Expense{
		mk("1", domain.ExpenseRent, "20000", domain.ExpensePaid, inJune),
		mk("2", domain.ExpenseGas, "2400", domain.ExpenseApproved, inJune),
		mk("3", domain.ExpenseGas, "600", domain.ExpensePaid, inJune),
		mk("4", domain.ExpenseGas, "999", domain.ExpenseSubmitted, inJune),
		mk("5", domain.ExpenseGas, "999", domain.ExpensePaid, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
	}
	other := mk("6", domain.ExpenseRent, "999", domain.ExpensePaid, inJune)
	other.StallID = "stall-2"
	expenses = append(expenses, other)

	require.NoError(t, r.ApplyExpenses(expenses))
	assert.True(t, dec("23000").Equal(r.Expenses.TotalExpenses))
	assert.True(t, dec("3000").Equal(r.Expenses.Breakdown[domain.ExpenseGas]))
	assert.Len(t, r.Expenses.Breakdown, 2)
}

func TestProfitLoss_ApplyOrders(t *testing.T) {
	r := newReport()
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	delivered := placeOrder(t, domain.OrderTakeaway, now)
	for _, s := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady, domain.OrderDelivered} {
		require.NoError(t, delivered.AdvanceStatus(s, clerk, "", now))
	}
	pending := placeOrder(t, domain.OrderDineIn, now)

	require.NoError(t, r.ApplyOrders([]domain.Order{*delivered, *pending}))
	assert.Equal(t, 1, r.Revenue.OrderCount)
	assert.True(t, dec("220").Equal(r.Revenue.TotalSales))
	assert.True(t, dec("20").Equal(r.Revenue.TotalDiscountGiven))
	assert.True(t, dec("220").Equal(r.Revenue.Breakdown.Takeaway))
	require.Len(t, r.Revenue.TopProducts, 2)
	assert.Equal(t, "p-dosa", r.Revenue.TopProducts[0].ProductID)
	assert.True(t, decimal.NewFromInt(160).Equal(r.Revenue.TopProducts[0].Revenue))
}
