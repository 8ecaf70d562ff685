package dto

import (
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// CreatePayrollRequest defines the data needed to open a payroll record.
type CreatePayrollRequest struct {
	StallID      string    `json:"stallID" binding:"required"`
	EmployeeID   string    `json:"employeeID" binding:"required"`
	EmployeeName string    `json:"employeeName" binding:"required"`
	Designation  string    `json:"designation"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	Notes        string    `json:"notes"`
	domain.PayrollComponents
}

// UpdatePayrollRequest replaces the salary components of a draft.
type UpdatePayrollRequest struct {
	domain.PayrollComponents
	VersionGuard
}
