package domain

import "time"

// Record is implemented by every stall-scoped document the document store
// persists. The accessors feed the indexed columns next to the JSON body.
type Record interface {
	RecordID() string
	RecordStallID() string
	RecordStatus() string
	RecordDate() time.Time
	RecordActive() bool
	CurrentVersion() int64
}

var (
	_ Record = DeliveryZone{}
	_ Record = Payroll{}
	_ Record = Investor{}
	_ Record = Expense{}
	_ Record = ProfitLoss{}
	_ Record = Inventory{}
	_ Record = StallPerformance{}
	_ Record = Order{}
)

func (z DeliveryZone) RecordID() string      { return z.ZoneID }
func (z DeliveryZone) RecordStallID() string { return z.StallID }
func (z DeliveryZone) RecordDate() time.Time { return z.CreatedAt }
func (z DeliveryZone) RecordActive() bool    { return z.IsActive }
func (z DeliveryZone) RecordStatus() string {
	if z.IsActive {
		return "active"
	}
	return "inactive"
}

func (p Payroll) RecordID() string      { return p.PayrollID }
func (p Payroll) RecordStallID() string { return p.StallID }
func (p Payroll) RecordStatus() string  { return string(p.Status) }
func (p Payroll) RecordDate() time.Time { return p.Period.StartDate }
func (p Payroll) RecordActive() bool    { return p.IsActive }

func (i Investor) RecordID() string      { return i.InvestorID }
func (i Investor) RecordStallID() string { return i.StallID }
func (i Investor) RecordStatus() string  { return string(i.Status) }
func (i Investor) RecordDate() time.Time { return i.InvestmentDate }
func (i Investor) RecordActive() bool    { return i.IsActive }

func (e Expense) RecordID() string      { return e.ExpenseID }
func (e Expense) RecordStallID() string { return e.StallID }
func (e Expense) RecordStatus() string  { return string(e.Status) }
func (e Expense) RecordDate() time.Time { return e.ExpenseDate }
func (e Expense) RecordActive() bool    { return e.IsActive }

func (r ProfitLoss) RecordID() string      { return r.ReportID }
func (r ProfitLoss) RecordStallID() string { return r.StallID }
func (r ProfitLoss) RecordStatus() string  { return string(r.Status) }
func (r ProfitLoss) RecordDate() time.Time { return r.StartDate }
func (r ProfitLoss) RecordActive() bool    { return r.IsActive }

func (b Inventory) RecordID() string      { return b.BatchID }
func (b Inventory) RecordStallID() string { return "" } // batches span stalls
func (b Inventory) RecordStatus() string  { return string(b.BatchStatus) }
func (b Inventory) RecordDate() time.Time { return b.ExpiryDate }
func (b Inventory) RecordActive() bool    { return b.IsActive }

func (p StallPerformance) RecordID() string      { return p.ReportID }
func (p StallPerformance) RecordStallID() string { return p.StallID }
func (p StallPerformance) RecordStatus() string  { return string(p.Status) }
func (p StallPerformance) RecordDate() time.Time { return p.StartDate }
func (p StallPerformance) RecordActive() bool    { return p.IsActive }

func (o Order) RecordID() string      { return o.OrderID }
func (o Order) RecordStallID() string { return o.StallID }
func (o Order) RecordStatus() string  { return string(o.Status) }
func (o Order) RecordDate() time.Time { return o.PlacedAt }
func (o Order) RecordActive() bool    { return o.IsActive }
