package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateEarningRequestDTO struct {
	Type        string          `json:"type" validate:"required,oneof=referral_commission bonus penalty adjustment promotion_bonus" example:"bonus"`
	Amount      decimal.Decimal `json:"amount" example:"25.00"`
	Description string          `json:"description" validate:"max=255" example:"Q3 volume bonus"`
}

type EarningResponseDTO struct {
	ID          int             `json:"id" example:"3"`
	AgentID     int             `json:"agent_id" example:"7"`
	UsageID     *int            `json:"usage_id,omitempty" example:"11"`
	Type        string          `json:"type" example:"referral_commission"`
	Status      string          `json:"status" example:"pending"`
	Amount      decimal.Decimal `json:"amount" example:"15.00"`
	Description string          `json:"description" example:"referral commission"`
	EarnedAt    time.Time       `json:"earned_at"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}
