package domain

import "time"

// UserRole defines what a staff member may do across the chain.
type UserRole string

const (
	RoleOwner      UserRole = "owner"
	RoleManager    UserRole = "manager"
	RoleAccountant UserRole = "accountant"
	RoleStaff      UserRole = "staff"
)

// IsValid reports whether the role is known.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleAccountant, RoleStaff:
		return true
	}
	return false
}

// CanApprove reports whether the role may run approval-type transitions.
func (r UserRole) CanApprove() bool {
	return r == RoleOwner || r == RoleManager || r == RoleAccountant
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	IsActive     bool     `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Actor returns the identity this user acts as.
func (u User) Actor() Actor {
	return Actor{UserID: u.UserID, UserName: u.Name, UserRole: u.Role}
}
