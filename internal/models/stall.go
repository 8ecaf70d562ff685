package models

// Stall is a row of the stalls table.
type Stall struct {
	StallID      string `db:"stall_id"`
	Name         string `db:"name"`
	Code         string `db:"code"`
	Address      string `db:"address"`
	City         string `db:"city"`
	ManagerID    string `db:"manager_id"`
	ContactPhone string `db:"contact_phone"`
	IsActive     bool   `db:"is_active"`
	Version      int64  `db:"version"`
	AuditFields
}
