package domain

// Stall is a single outlet of the chain. Every business record is scoped to
// one stall.
type Stall struct {
	StallID      string `json:"stallID"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ManagerID    string `json:"managerID"`
	ContactPhone string `json:"contactPhone"`
	IsActive     bool   `json:"isActive"` // Soft delete flag
	Versioned
	AuditFields
}
