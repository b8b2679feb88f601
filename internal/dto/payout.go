package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutRequestDTO struct {
	Amount decimal.Decimal `json:"amount" example:"60.00"`
	Method string          `json:"method" validate:"required,oneof=bank_transfer planettalk_credit" example:"bank_transfer"`
}

type ApprovePayoutRequestDTO struct {
	StaffID int `json:"staff_id" validate:"required,gt=0" example:"3"`
}

type ReviewPayoutRequestDTO struct {
	Message string `json:"message" validate:"required,max=500" example:"bank details missing"`
}

type PayoutResponseDTO struct {
	ID            int             `json:"id" example:"5"`
	Reference     string          `json:"reference" example:"4f1c9df7-83a1-4f6e-9af1-2b7c1c3d4e5f"`
	AgentID       int             `json:"agent_id" example:"7"`
	Status        string          `json:"status" example:"pending"`
	Method        string          `json:"method" example:"bank_transfer"`
	Amount        decimal.Decimal `json:"amount" example:"60.00"`
	Fees          decimal.Decimal `json:"fees" example:"0.90"`
	NetAmount     decimal.Decimal `json:"net_amount" example:"59.10"`
	ReviewMessage string          `json:"review_message,omitempty" example:""`
	RequestedAt   time.Time       `json:"requested_at"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
}
