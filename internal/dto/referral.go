package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type IssueCodeRequestDTO struct {
	Type    string `json:"type" validate:"omitempty,oneof=standard promotion" example:"standard"`
	Prefix  string `json:"prefix" validate:"omitempty,alphanum,max=10" example:"PROMO"`
	MaxUses *int   `json:"max_uses" validate:"omitempty,gt=0" example:"50"`
	TTLDays int    `json:"ttl_days" validate:"omitempty,gte=-1" example:"90"`
}

type CodeResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	AgentID     int        `json:"agent_id" example:"7"`
	Code        string     `json:"code" example:"PROMO-X7K2M9QA"`
	Status      string     `json:"status" example:"active"`
	Type        string     `json:"type" example:"standard"`
	MaxUses     *int       `json:"max_uses,omitempty" example:"50"`
	CurrentUses int        `json:"current_uses" example:"3"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type RecordUsageRequestDTO struct {
	ReferredUserID *int   `json:"referred_user_id" example:"42"`
	ReferredName   string `json:"referred_name" validate:"omitempty,max=120" example:"John Smith"`
	ReferredPhone  string `json:"referred_phone" validate:"omitempty,max=20" example:"+447700900123"`
}

type ConfirmUsageRequestDTO struct {
	ReferenceAmount decimal.Decimal `json:"reference_amount" example:"150.00"`
}

type UsageResponseDTO struct {
	ID               int             `json:"id" example:"11"`
	Reference        string          `json:"reference" example:"7d5d55ee-0f30-4b1a-bd2c-3a1c7b6a9f6e"`
	CodeID           int             `json:"code_id" example:"1"`
	AgentID          int             `json:"agent_id" example:"7"`
	Status           string          `json:"status" example:"pending"`
	CommissionRate   decimal.Decimal `json:"commission_rate" example:"10.00"`
	CommissionEarned decimal.Decimal `json:"commission_earned" example:"15.00"`
	CreatedAt        time.Time       `json:"created_at"`
	ConfirmedAt      *time.Time      `json:"confirmed_at,omitempty"`
}
