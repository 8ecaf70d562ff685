package dto

import (
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
)

// CreateStallRequest defines data for opening a new stall.
type CreateStallRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Code         string `json:"code" binding:"required,alphanum,max=20"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ManagerID    string `json:"managerID"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,e164"`
}

// UpdateStallRequest defines the data allowed for updating a stall.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateStallRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	ManagerID    *string `json:"managerID"`
	ContactPhone *string `json:"contactPhone" binding:"omitempty,e164"`
	VersionGuard
}

// StallResponse defines data returned for a stall.
type StallResponse struct {
	StallID       string    `json:"stallID"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	ManagerID     string    `json:"managerID"`
	ContactPhone  string    `json:"contactPhone"`
	IsActive      bool      `json:"isActive"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToStallResponse converts domain.Stall to DTO.
func ToStallResponse(s *domain.Stall) StallResponse {
	return StallResponse{
		StallID:       s.StallID,
		Name:          s.Name,
		Code:          s.Code,
		Address:       s.Address,
		City:          s.City,
		ManagerID:     s.ManagerID,
		ContactPhone:  s.ContactPhone,
		IsActive:      s.IsActive,
		Version:       s.Version,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}

// ListStallsResponse wraps a list of stalls.
type ListStallsResponse struct {
	Stalls []StallResponse `json:"stalls"`
}

// ToListStallsResponse converts a slice of domain.Stall to DTO.
func ToListStallsResponse(ss []domain.Stall) ListStallsResponse {
	list := make([]StallResponse, len(ss))
	for i, s := range ss {
		list[i] = ToStallResponse(&s)
	}
	return ListStallsResponse{Stalls: list}
}
