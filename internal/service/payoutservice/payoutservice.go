package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	GetByIDForUpdate(ctx context.Context, payoutID int) (*domain.Payout, error)
	Update(ctx context.Context, payout *domain.Payout) error
	ListByAgent(ctx context.Context, agentID int) ([]domain.Payout, error)
	ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error)
}

type AgentRepo interface {
	GetByIDForUpdate(ctx context.Context, agentID int) (*domain.Agent, error)
}

// Aggregator moves reserved funds in and out of the agent's available
// balance inside the workflow transaction.
type Aggregator interface {
	ApplyPayoutReserved(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error)
	ApplyPayoutReleased(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error)
	ApplyPayoutCompleted(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error)
}

// Ledger settles confirmed earnings once a payout is approved.
type Ledger interface {
	MarkPaid(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	ConfirmedOldestFirst(ctx context.Context, agentID int) ([]domain.AgentEarning, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrAgentNotFound       = errors.New("agent not found")
	ErrInvalidAmount       = errors.New("payout amount must be positive")
	ErrInvalidMethod       = errors.New("unknown payout method")
)

// Fees holds the per-method fee percentage applied at request time.
type Fees struct {
	BankTransferPct     decimal.Decimal
	PlanetTalkCreditPct decimal.Decimal
}

func (f Fees) pctFor(method domain.PayoutMethod) decimal.Decimal {
	if method == domain.PayoutBankTransfer {
		return f.BankTransferPct
	}
	return f.PlanetTalkCreditPct
}

type Service struct {
	payoutRepo PayoutRepo
	agentRepo  AgentRepo
	aggregator Aggregator
	ledger     Ledger
	txManager  pg.TXManager
	notifier   notify.Notifier
	fees       Fees
}

func New(payoutRepo PayoutRepo, agentRepo AgentRepo, aggregator Aggregator, ledger Ledger, txManager pg.TXManager, notifier notify.Notifier, fees Fees) *Service {
	return &Service{
		payoutRepo: payoutRepo,
		agentRepo:  agentRepo,
		aggregator: aggregator,
		ledger:     ledger,
		txManager:  txManager,
		notifier:   notifier,
		fees:       fees,
	}
}

// Request validates the amount against availableBalance and reserves it in
// the same transaction that creates the payout row: the balance check and
// the decrement can never see different states. An amount over the balance
// performs no mutation at all.
func (s *Service) Request(ctx context.Context, agentID int, amount decimal.Decimal, method domain.PayoutMethod) (*domain.Payout, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !domain.ValidPayoutMethod(method) {
		return nil, ErrInvalidMethod
	}

	var result *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agent, err := s.agentRepo.GetByIDForUpdate(ctx, agentID)
		if err != nil {
			return err
		}
		if agent == nil {
			return ErrAgentNotFound
		}
		if agent.AvailableBalance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		if _, err := s.aggregator.ApplyPayoutReserved(ctx, agentID, amount); err != nil {
			return err
		}

		fees := domain.FeeFor(amount, s.fees.pctFor(method))
		created, err := s.payoutRepo.Create(ctx, &domain.Payout{
			Reference: uuid.New(),
			AgentID:   agentID,
			Status:    domain.PayoutPending,
			Method:    method,
			Amount:    amount,
			Fees:      fees,
			NetAmount: amount.Sub(fees),
			Reserved:  true,
		})
		if err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payout requested",
		zap.Int("agent_id", agentID),
		zap.String("amount", amount.String()),
		zap.String("reference", result.Reference.String()),
	)
	return result, nil
}

// Approve disburses a pending or review payout. A payout whose reservation
// was released on a return-to-pending consumes the funds here, under the
// same row lock as the balance check, so approval can never spend
// unreserved funds. On the first approval the oldest confirmed earnings
// whose full amounts fit within the payout are marked paid.
func (s *Service) Approve(ctx context.Context, payoutID, staffID int) (*domain.Payout, error) {
	var result *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payout, err := s.lock(ctx, payoutID)
		if err != nil {
			return err
		}
		if !payout.Status.CanTransitionTo(domain.PayoutApproved) {
			return domain.NewTransitionError("payout", payout.ID, string(payout.Status), string(domain.PayoutApproved))
		}

		if !payout.Reserved {
			agent, err := s.agentRepo.GetByIDForUpdate(ctx, payout.AgentID)
			if err != nil {
				return err
			}
			if agent == nil {
				return ErrAgentNotFound
			}
			if agent.AvailableBalance.LessThan(payout.Amount) {
				return ErrInsufficientBalance
			}
			if _, err := s.aggregator.ApplyPayoutCompleted(ctx, payout.AgentID, payout.Amount); err != nil {
				return err
			}
			payout.Reserved = true
		}

		firstApproval := payout.ApprovedAt == nil
		now := time.Now()
		payout.Status = domain.PayoutApproved
		payout.ApprovedAt = &now
		if err := s.payoutRepo.Update(ctx, payout); err != nil {
			return err
		}

		if firstApproval {
			if err := s.settleEarnings(ctx, payout); err != nil {
				return err
			}
		}
		result = payout
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, notify.Event{
		Type:    notify.EventPayoutApproved,
		AgentID: result.AgentID,
		Amount:  result.Amount,
		Summary: fmt.Sprintf("payout %s approved by staff %d", result.Reference, staffID),
	})
	return result, nil
}

// settleEarnings marks confirmed earnings paid, oldest first, while their
// cumulative amount stays within the payout.
func (s *Service) settleEarnings(ctx context.Context, payout *domain.Payout) error {
	earnings, err := s.ledger.ConfirmedOldestFirst(ctx, payout.AgentID)
	if err != nil {
		return err
	}

	settled := decimal.Zero
	for _, earning := range earnings {
		if settled.Add(earning.Amount).GreaterThan(payout.Amount) {
			break
		}
		if _, err := s.ledger.MarkPaid(ctx, earning.ID); err != nil {
			return err
		}
		settled = settled.Add(earning.Amount)
	}
	return nil
}

// FlagForReview parks a pending or approved payout for manual follow-up.
func (s *Service) FlagForReview(ctx context.Context, payoutID int, message string) (*domain.Payout, error) {
	var result *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payout, err := s.lock(ctx, payoutID)
		if err != nil {
			return err
		}
		if !payout.Status.CanTransitionTo(domain.PayoutReview) {
			return domain.NewTransitionError("payout", payout.ID, string(payout.Status), string(domain.PayoutReview))
		}

		payout.Status = domain.PayoutReview
		payout.ReviewMessage = message
		if err := s.payoutRepo.Update(ctx, payout); err != nil {
			return err
		}
		result = payout
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, notify.Event{
		Type:    notify.EventPayoutReview,
		AgentID: result.AgentID,
		Amount:  result.Amount,
		Summary: fmt.Sprintf("payout %s flagged for review: %s", result.Reference, message),
	})
	return result, nil
}

// ReturnToPending pushes a reviewed payout back for resubmission. The
// reserved amount goes back to availableBalance if and only if no approval
// consumed it; the reserved flag flips in the same transaction, so the
// release can never happen twice.
func (s *Service) ReturnToPending(ctx context.Context, payoutID int) (*domain.Payout, error) {
	var result *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payout, err := s.lock(ctx, payoutID)
		if err != nil {
			return err
		}
		if payout.Status != domain.PayoutReview {
			return domain.NewTransitionError("payout", payout.ID, string(payout.Status), string(domain.PayoutPending))
		}

		if payout.Reserved && payout.ApprovedAt == nil {
			if _, err := s.aggregator.ApplyPayoutReleased(ctx, payout.AgentID, payout.Amount); err != nil {
				return err
			}
			payout.Reserved = false
		}

		payout.Status = domain.PayoutPending
		if err := s.payoutRepo.Update(ctx, payout); err != nil {
			return err
		}
		result = payout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) lock(ctx context.Context, payoutID int) (*domain.Payout, error) {
	payout, err := s.payoutRepo.GetByIDForUpdate(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}
	return payout, nil
}

func (s *Service) ListByAgent(ctx context.Context, agentID int) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListByAgent(ctx, agentID)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (s *Service) ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to list payouts by status", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
