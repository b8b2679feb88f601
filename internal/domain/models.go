package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Agent struct {
	ID               int             `db:"id"`
	Status           AgentStatus     `db:"status"`
	Tier             string          `db:"tier"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	PendingBalance   decimal.Decimal `db:"pending_balance"`
	TotalReferrals   int             `db:"total_referrals"`
	ActiveReferrals  int             `db:"active_referrals"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type ReferralCode struct {
	ID          int        `db:"id"`
	AgentID     int        `db:"agent_id"`
	Code        string     `db:"code"`
	Status      CodeStatus `db:"status"`
	Type        CodeType   `db:"type"`
	MaxUses     *int       `db:"max_uses"`
	CurrentUses int        `db:"current_uses"`
	ExpiresAt   *time.Time `db:"expires_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Expired reports whether the code's expiry window has passed, independent
// of the stored status column.
func (c *ReferralCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// Exhausted reports whether the usage cap, when set, has been reached.
func (c *ReferralCode) Exhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}

type ReferralUsage struct {
	ID               int             `db:"id"`
	Reference        uuid.UUID       `db:"reference"`
	CodeID           int             `db:"code_id"`
	AgentID          int             `db:"agent_id"`
	ReferredUserID   *int            `db:"referred_user_id"`
	ReferredName     string          `db:"referred_name"`
	ReferredPhone    string          `db:"referred_phone"`
	Status           UsageStatus     `db:"status"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	CommissionEarned decimal.Decimal `db:"commission_earned"`
	CreatedAt        time.Time       `db:"created_at"`
	ConfirmedAt      *time.Time      `db:"confirmed_at"`
}

type AgentEarning struct {
	ID          int             `db:"id"`
	AgentID     int             `db:"agent_id"`
	UsageID     *int            `db:"usage_id"`
	Type        EarningType     `db:"type"`
	Status      EarningStatus   `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	EarnedAt    time.Time       `db:"earned_at"`
	ConfirmedAt *time.Time      `db:"confirmed_at"`
	PaidAt      *time.Time      `db:"paid_at"`
}

type Payout struct {
	ID            int             `db:"id"`
	Reference     uuid.UUID       `db:"reference"`
	AgentID       int             `db:"agent_id"`
	Status        PayoutStatus    `db:"status"`
	Method        PayoutMethod    `db:"method"`
	Amount        decimal.Decimal `db:"amount"`
	Fees          decimal.Decimal `db:"fees"`
	NetAmount     decimal.Decimal `db:"net_amount"`
	Reserved      bool            `db:"reserved"`
	ReviewMessage string          `db:"review_message"`
	RequestedAt   time.Time       `db:"requested_at"`
	ApprovedAt    *time.Time      `db:"approved_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// EarningTotals carries per-status amount sums over one agent's ledger,
// consumed by balance reconciliation.
type EarningTotals struct {
	Pending   decimal.Decimal
	Confirmed decimal.Decimal
	Paid      decimal.Decimal
}
