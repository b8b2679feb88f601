package earningsservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
)

type EarningsRepo interface {
	Create(ctx context.Context, earning *domain.AgentEarning) (*domain.AgentEarning, error)
	GetByID(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	GetByIDForUpdate(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	GetByUsageID(ctx context.Context, usageID int) (*domain.AgentEarning, error)
	UpdateStatus(ctx context.Context, earning *domain.AgentEarning) error
	ListByAgent(ctx context.Context, agentID int, status *domain.EarningStatus) ([]domain.AgentEarning, error)
	ListConfirmedOldestFirst(ctx context.Context, agentID int) ([]domain.AgentEarning, error)
}

// Aggregator is the balance projection; every ledger transition notifies it
// inside the same transaction.
type Aggregator interface {
	ApplyEarningCreated(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error)
	ApplyEarningConfirmed(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error)
	ApplyEarningReversed(ctx context.Context, agentID int, amount decimal.Decimal, bucket balanceservice.Bucket) (*domain.Agent, error)
}

var (
	ErrEarningNotFound = errors.New("earning not found")
	ErrInvalidAmount   = errors.New("earning amount must be positive")
	ErrInvalidType     = errors.New("unknown earning type")
)

type Service struct {
	repo       EarningsRepo
	aggregator Aggregator
	txManager  pg.TXManager
	notifier   notify.Notifier
}

func New(repo EarningsRepo, aggregator Aggregator, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		repo:       repo,
		aggregator: aggregator,
		txManager:  txManager,
		notifier:   notifier,
	}
}

// Create appends a pending ledger entry and adds its amount to the agent's
// pending balance in one transaction. When sourceUsageID is set and an
// entry for that usage already exists, the existing entry is returned
// unchanged so retried confirmations never double-credit.
func (s *Service) Create(ctx context.Context, agentID int, typ domain.EarningType, amount decimal.Decimal, description string, sourceUsageID *int) (*domain.AgentEarning, error) {
	if !domain.ValidEarningType(typ) {
		return nil, ErrInvalidType
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *domain.AgentEarning
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if sourceUsageID != nil {
			existing, err := s.repo.GetByUsageID(ctx, *sourceUsageID)
			if err != nil {
				return err
			}
			if existing != nil {
				result = existing
				return nil
			}
		}

		created, err := s.repo.Create(ctx, &domain.AgentEarning{
			AgentID:     agentID,
			UsageID:     sourceUsageID,
			Type:        typ,
			Status:      domain.EarningPending,
			Amount:      amount,
			Description: description,
		})
		if err != nil {
			return err
		}
		if _, err := s.aggregator.ApplyEarningCreated(ctx, agentID, amount); err != nil {
			return err
		}
		result = created
		return nil
	})
	if err != nil {
		zap.L().Error("failed to create earning", zap.Int("agent_id", agentID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Confirm moves a pending entry to confirmed and its amount from pending to
// available balance. Confirming an already-confirmed entry is a no-op.
func (s *Service) Confirm(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	var result *domain.AgentEarning
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		earning, err := s.lock(ctx, earningID)
		if err != nil {
			return err
		}
		if earning.Status == domain.EarningConfirmed {
			result = earning
			return nil
		}
		if !earning.Status.CanTransitionTo(domain.EarningConfirmed) {
			return domain.NewTransitionError("earning", earning.ID, string(earning.Status), string(domain.EarningConfirmed))
		}

		now := time.Now()
		earning.Status = domain.EarningConfirmed
		earning.ConfirmedAt = &now
		if err := s.repo.UpdateStatus(ctx, earning); err != nil {
			return err
		}
		if _, err := s.aggregator.ApplyEarningConfirmed(ctx, earning.AgentID, earning.Amount); err != nil {
			return err
		}
		result = earning
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Emit(ctx, notify.Event{
		Type:    notify.EventEarningConfirmed,
		AgentID: result.AgentID,
		Amount:  result.Amount,
		Summary: fmt.Sprintf("earning %d confirmed for %s", result.ID, result.Amount),
	})
	return result, nil
}

// MarkPaid finalizes a confirmed entry once its amount has been disbursed
// through an approved payout. Idempotent: a paid entry stays paid.
func (s *Service) MarkPaid(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	var result *domain.AgentEarning
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		earning, err := s.lock(ctx, earningID)
		if err != nil {
			return err
		}
		if earning.Status == domain.EarningPaid {
			result = earning
			return nil
		}
		if !earning.Status.CanTransitionTo(domain.EarningPaid) {
			return domain.NewTransitionError("earning", earning.ID, string(earning.Status), string(domain.EarningPaid))
		}

		now := time.Now()
		earning.Status = domain.EarningPaid
		earning.PaidAt = &now
		if err := s.repo.UpdateStatus(ctx, earning); err != nil {
			return err
		}
		// The payout reservation already removed the funds from
		// availableBalance; no aggregator delta here.
		result = earning
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel reverses an entry from pending or confirmed state.
func (s *Service) Cancel(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	return s.reverse(ctx, earningID, domain.EarningCancelled)
}

// Dispute freezes out a confirmed entry and claws its amount back from the
// available balance.
func (s *Service) Dispute(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	return s.reverse(ctx, earningID, domain.EarningDisputed)
}

func (s *Service) reverse(ctx context.Context, earningID int, to domain.EarningStatus) (*domain.AgentEarning, error) {
	var result *domain.AgentEarning
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		earning, err := s.lock(ctx, earningID)
		if err != nil {
			return err
		}
		if !earning.Status.CanTransitionTo(to) {
			return domain.NewTransitionError("earning", earning.ID, string(earning.Status), string(to))
		}

		bucket := balanceservice.BucketAvailable
		if earning.Status == domain.EarningPending {
			bucket = balanceservice.BucketPending
		}

		earning.Status = to
		if err := s.repo.UpdateStatus(ctx, earning); err != nil {
			return err
		}
		if _, err := s.aggregator.ApplyEarningReversed(ctx, earning.AgentID, earning.Amount, bucket); err != nil {
			return err
		}
		result = earning
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reverse earning", zap.Int("earning_id", earningID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) lock(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	earning, err := s.repo.GetByIDForUpdate(ctx, earningID)
	if err != nil {
		return nil, err
	}
	if earning == nil {
		return nil, ErrEarningNotFound
	}
	return earning, nil
}

func (s *Service) ListByAgent(ctx context.Context, agentID int, status *domain.EarningStatus) ([]domain.AgentEarning, error) {
	earnings, err := s.repo.ListByAgent(ctx, agentID, status)
	if err != nil {
		zap.L().Error("failed to list earnings", zap.Error(err))
		return nil, err
	}
	return earnings, nil
}

// ConfirmedOldestFirst exposes the settlement ordering used by payout
// approval.
func (s *Service) ConfirmedOldestFirst(ctx context.Context, agentID int) ([]domain.AgentEarning, error) {
	return s.repo.ListConfirmedOldestFirst(ctx, agentID)
}
