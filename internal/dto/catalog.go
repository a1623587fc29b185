package dto

import (
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateChangeTypeRequest defines the data needed to create a change type.
type CreateChangeTypeRequest struct {
	Name                string                 `json:"name" binding:"required"`
	Direction           domain.ChangeDirection `json:"direction" binding:"required,oneof=ENTITLEMENT DEDUCTION"`
	UsesFinalSalaryBase bool                   `json:"usesFinalSalaryBase"`
}

// CreateChangeOptionRequest defines the data needed to create a change option.
type CreateChangeOptionRequest struct {
	IsPercentage bool            `json:"isPercentage"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	Description  string          `json:"description"`
}

// ChangeTypeResponse defines the data returned for a change type.
type ChangeTypeResponse struct {
	ChangeTypeID        string                 `json:"changeTypeID"`
	Name                string                 `json:"name"`
	Direction           domain.ChangeDirection `json:"direction"`
	UsesFinalSalaryBase bool                   `json:"usesFinalSalaryBase"`
	IsActive            bool                   `json:"isActive"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// ChangeOptionResponse defines the data returned for a change option.
type ChangeOptionResponse struct {
	ChangeOptionID string          `json:"changeOptionID"`
	ChangeTypeID   string          `json:"changeTypeID"`
	IsPercentage   bool            `json:"isPercentage"`
	Value          decimal.Decimal `json:"value"`
	Description    string          `json:"description"`
	IsActive       bool            `json:"isActive"`
}

// ListChangeTypesParams defines query parameters for listing change types.
type ListChangeTypesParams struct {
	Direction *domain.ChangeDirection `form:"direction" binding:"omitempty,oneof=ENTITLEMENT DEDUCTION"`
}

// ToChangeTypeResponse converts a domain.ChangeType to ChangeTypeResponse DTO
func ToChangeTypeResponse(t *domain.ChangeType) ChangeTypeResponse {
	return ChangeTypeResponse{
		ChangeTypeID:        t.ChangeTypeID,
		Name:                t.Name,
		Direction:           t.Direction,
		UsesFinalSalaryBase: t.UsesFinalSalaryBase,
		IsActive:            t.IsActive,
		CreatedAt:           t.CreatedAt,
	}
}

// ToChangeOptionResponse converts a domain.ChangeOption to ChangeOptionResponse DTO
func ToChangeOptionResponse(o *domain.ChangeOption) ChangeOptionResponse {
	return ChangeOptionResponse{
		ChangeOptionID: o.ChangeOptionID,
		ChangeTypeID:   o.ChangeTypeID,
		IsPercentage:   o.IsPercentage,
		Value:          o.Value,
		Description:    o.Description,
		IsActive:       o.IsActive,
	}
}
