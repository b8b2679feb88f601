package domain

import "fmt"

type AgentStatus string

const (
	AgentActive     AgentStatus = "active"
	AgentSuspended  AgentStatus = "suspended"
	AgentTerminated AgentStatus = "terminated"
)

type CodeStatus string

const (
	CodeActive    CodeStatus = "active"
	CodeInactive  CodeStatus = "inactive"
	CodeExpired   CodeStatus = "expired"
	CodeSuspended CodeStatus = "suspended"
)

type CodeType string

const (
	CodeStandard  CodeType = "standard"
	CodePromotion CodeType = "promotion"
)

type UsageStatus string

const (
	UsagePending   UsageStatus = "pending"
	UsageConfirmed UsageStatus = "confirmed"
	UsageCancelled UsageStatus = "cancelled"
	UsageExpired   UsageStatus = "expired"
)

type EarningType string

const (
	EarningReferralCommission EarningType = "referral_commission"
	EarningBonus              EarningType = "bonus"
	EarningPenalty            EarningType = "penalty"
	EarningAdjustment         EarningType = "adjustment"
	EarningPromotionBonus     EarningType = "promotion_bonus"
)

func ValidEarningType(t EarningType) bool {
	switch t {
	case EarningReferralCommission, EarningBonus, EarningPenalty, EarningAdjustment, EarningPromotionBonus:
		return true
	}
	return false
}

type EarningStatus string

const (
	EarningPending   EarningStatus = "pending"
	EarningConfirmed EarningStatus = "confirmed"
	EarningPaid      EarningStatus = "paid"
	EarningCancelled EarningStatus = "cancelled"
	EarningDisputed  EarningStatus = "disputed"
)

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutReview   PayoutStatus = "review"
)

type PayoutMethod string

const (
	PayoutBankTransfer     PayoutMethod = "bank_transfer"
	PayoutPlanetTalkCredit PayoutMethod = "planettalk_credit"
)

func ValidPayoutMethod(m PayoutMethod) bool {
	return m == PayoutBankTransfer || m == PayoutPlanetTalkCredit
}

// Transition tables. Every status mutation site checks these before writing;
// a status absent from the map is terminal.

var usageTransitions = map[UsageStatus][]UsageStatus{
	UsagePending: {UsageConfirmed, UsageCancelled, UsageExpired},
}

var earningTransitions = map[EarningStatus][]EarningStatus{
	EarningPending:   {EarningConfirmed, EarningCancelled},
	EarningConfirmed: {EarningPaid, EarningDisputed, EarningCancelled},
}

var payoutTransitions = map[PayoutStatus][]PayoutStatus{
	PayoutPending:  {PayoutApproved, PayoutReview},
	PayoutApproved: {PayoutReview},
	PayoutReview:   {PayoutPending, PayoutApproved},
}

func (s UsageStatus) CanTransitionTo(to UsageStatus) bool {
	return containsStatus(usageTransitions[s], to)
}

func (s EarningStatus) CanTransitionTo(to EarningStatus) bool {
	return containsStatus(earningTransitions[s], to)
}

func (s PayoutStatus) CanTransitionTo(to PayoutStatus) bool {
	return containsStatus(payoutTransitions[s], to)
}

func containsStatus[T comparable](valid []T, to T) bool {
	for _, v := range valid {
		if v == to {
			return true
		}
	}
	return false
}

// TransitionError reports a state machine violation with enough context to
// render an actionable message.
type TransitionError struct {
	Entity string
	ID     int
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition for %s %d: %s -> %s", e.Entity, e.ID, e.From, e.To)
}

func NewTransitionError(entity string, id int, from, to string) *TransitionError {
	return &TransitionError{Entity: entity, ID: id, From: from, To: to}
}
