package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Touch stamps the update half of the audit fields.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}

// NewAuditFields returns audit fields for a freshly created record.
func NewAuditFields(userID string, now time.Time) AuditFields {
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	UserID   string   `json:"userId"`
	UserName string   `json:"userName"`
	UserRole UserRole `json:"userRole"`
}

// Validate ensures the actor identifies somebody.
func (a Actor) Validate() error {
	if strings.TrimSpace(a.UserID) == "" {
		return fmt.Errorf("%w: actor user id is required", apperrors.ErrValidation)
	}
	return nil
}

// IsZero reports whether no actor was recorded.
func (a Actor) IsZero() bool {
	return a.UserID == ""
}

// Versioned is implemented by every persisted record. The version advances on
// each successful write and is used for optimistic concurrency checks.
type Versioned struct {
	Version int64 `json:"version"`
}

// CurrentVersion returns the stored version.
func (v Versioned) CurrentVersion() int64 {
	return v.Version
}

// BumpVersion advances the version ahead of a write.
func (v *Versioned) BumpVersion() {
	v.Version++
}

// CheckVersion compares a caller supplied version with the stored one. A nil
// expectation skips the check.
func (v Versioned) CheckVersion(entity, id string, expected *int64) error {
	if expected == nil || *expected == v.Version {
		return nil
	}
	return apperrors.NewVersionConflictError(entity, id)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func requireReason(reason, what string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, what)
	}
	return nil
}
