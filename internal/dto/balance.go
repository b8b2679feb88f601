package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	AgentID          int             `json:"agent_id" example:"7"`
	TotalEarnings    decimal.Decimal `json:"total_earnings" example:"500.50"`
	AvailableBalance decimal.Decimal `json:"available_balance" example:"320.25"`
	PendingBalance   decimal.Decimal `json:"pending_balance" example:"180.25"`
	TotalReferrals   int             `json:"total_referrals" example:"12"`
	ActiveReferrals  int             `json:"active_referrals" example:"9"`
}

type ReconcileReportDTO struct {
	AgentID           int             `json:"agent_id" example:"7"`
	Match             bool            `json:"match" example:"true"`
	TotalExpected     decimal.Decimal `json:"total_expected" example:"500.50"`
	TotalActual       decimal.Decimal `json:"total_actual" example:"500.50"`
	PendingExpected   decimal.Decimal `json:"pending_expected" example:"180.25"`
	PendingActual     decimal.Decimal `json:"pending_actual" example:"180.25"`
	AvailableExpected decimal.Decimal `json:"available_expected" example:"320.25"`
	AvailableActual   decimal.Decimal `json:"available_actual" example:"320.25"`
}
