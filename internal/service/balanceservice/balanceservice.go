package balanceservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

type AgentRepo interface {
	GetByID(ctx context.Context, agentID int) (*domain.Agent, error)
	GetByIDForUpdate(ctx context.Context, agentID int) (*domain.Agent, error)
	ApplyBalanceDelta(ctx context.Context, agentID int, dTotal, dAvailable, dPending decimal.Decimal) (*domain.Agent, error)
	ListIDs(ctx context.Context) ([]int, error)
}

type EarningsRepo interface {
	SumByAgent(ctx context.Context, agentID int) (*domain.EarningTotals, error)
}

type PayoutRepo interface {
	SumOutstandingByAgent(ctx context.Context, agentID int) (decimal.Decimal, error)
}

var (
	ErrAgentNotFound = errors.New("agent not found")
	// ErrIntegrityViolation marks a balance mutation or reconciliation
	// result that contradicts the ledger. Never auto-corrected.
	ErrIntegrityViolation = errors.New("balance integrity violation")
)

// Bucket names the balance column an earning amount currently occupies.
type Bucket string

const (
	BucketPending   Bucket = "pending"
	BucketAvailable Bucket = "available"
)

const reconcileParallelism = 8

// Service is the balance aggregator: the only writer of the three
// materialized balance columns on agents. Every Apply method runs inside
// the caller's ledger transaction (the context carries it) so balance and
// ledger commit or roll back together.
type Service struct {
	agentRepo    AgentRepo
	earningsRepo EarningsRepo
	payoutRepo   PayoutRepo
	txManager    pg.TXManager
}

func New(agentRepo AgentRepo, earningsRepo EarningsRepo, payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		agentRepo:    agentRepo,
		earningsRepo: earningsRepo,
		payoutRepo:   payoutRepo,
		txManager:    txManager,
	}
}

func (s *Service) lockAgent(ctx context.Context, agentID int) (*domain.Agent, error) {
	agent, err := s.agentRepo.GetByIDForUpdate(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}

// ApplyEarningCreated adds a new pending earning: pendingBalance and
// totalEarnings both grow by amount.
func (s *Service) ApplyEarningCreated(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative earning amount %s", ErrIntegrityViolation, amount)
	}
	if _, err := s.lockAgent(ctx, agentID); err != nil {
		return nil, err
	}
	return s.agentRepo.ApplyBalanceDelta(ctx, agentID, amount, decimal.Zero, amount)
}

// ApplyEarningConfirmed moves amount from pending to available. Total is
// untouched.
func (s *Service) ApplyEarningConfirmed(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error) {
	agent, err := s.lockAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.PendingBalance.LessThan(amount) {
		return nil, fmt.Errorf("%w: confirming %s exceeds pending balance %s for agent %d",
			ErrIntegrityViolation, amount, agent.PendingBalance, agentID)
	}
	return s.agentRepo.ApplyBalanceDelta(ctx, agentID, decimal.Zero, amount, amount.Neg())
}

// ApplyEarningReversed backs an amount out of the bucket that holds it and
// out of totalEarnings. Underflow is a fatal consistency error, not a clamp.
func (s *Service) ApplyEarningReversed(ctx context.Context, agentID int, amount decimal.Decimal, bucket Bucket) (*domain.Agent, error) {
	agent, err := s.lockAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	switch bucket {
	case BucketPending:
		if agent.PendingBalance.LessThan(amount) {
			return nil, fmt.Errorf("%w: reversing %s exceeds pending balance %s for agent %d",
				ErrIntegrityViolation, amount, agent.PendingBalance, agentID)
		}
		return s.agentRepo.ApplyBalanceDelta(ctx, agentID, amount.Neg(), decimal.Zero, amount.Neg())
	case BucketAvailable:
		if agent.AvailableBalance.LessThan(amount) {
			return nil, fmt.Errorf("%w: reversing %s exceeds available balance %s for agent %d",
				ErrIntegrityViolation, amount, agent.AvailableBalance, agentID)
		}
		return s.agentRepo.ApplyBalanceDelta(ctx, agentID, amount.Neg(), amount.Neg(), decimal.Zero)
	default:
		return nil, fmt.Errorf("%w: unknown balance bucket %q", ErrIntegrityViolation, bucket)
	}
}

// ApplyPayoutReserved removes amount from availableBalance at payout
// request time. The payout workflow validates the balance beforehand; an
// underflow here means the check and the reservation were not atomic.
func (s *Service) ApplyPayoutReserved(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error) {
	agent, err := s.lockAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.AvailableBalance.LessThan(amount) {
		return nil, fmt.Errorf("%w: reserving %s exceeds available balance %s for agent %d",
			ErrIntegrityViolation, amount, agent.AvailableBalance, agentID)
	}
	return s.agentRepo.ApplyBalanceDelta(ctx, agentID, decimal.Zero, amount.Neg(), decimal.Zero)
}

// ApplyPayoutCompleted consumes the funds behind an approval whose hold
// was released on a return-to-pending. A payout that still holds its
// reservation took the funds out of availableBalance at request time and
// never reaches this path.
func (s *Service) ApplyPayoutCompleted(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error) {
	agent, err := s.lockAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent.AvailableBalance.LessThan(amount) {
		return nil, fmt.Errorf("%w: completing %s exceeds available balance %s for agent %d",
			ErrIntegrityViolation, amount, agent.AvailableBalance, agentID)
	}
	return s.agentRepo.ApplyBalanceDelta(ctx, agentID, decimal.Zero, amount.Neg(), decimal.Zero)
}

// ApplyPayoutReleased returns a never-consumed reservation to
// availableBalance.
func (s *Service) ApplyPayoutReleased(ctx context.Context, agentID int, amount decimal.Decimal) (*domain.Agent, error) {
	if _, err := s.lockAgent(ctx, agentID); err != nil {
		return nil, err
	}
	return s.agentRepo.ApplyBalanceDelta(ctx, agentID, decimal.Zero, amount, decimal.Zero)
}

func (s *Service) GetBalance(ctx context.Context, agentID int) (*domain.Agent, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		zap.L().Error("failed to get agent balance", zap.Error(err))
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}

// ReconcileReport compares the materialized balance columns with values
// recomputed from the earnings ledger and the payout ledger.
type ReconcileReport struct {
	AgentID           int
	Match             bool
	TotalExpected     decimal.Decimal
	TotalActual       decimal.Decimal
	PendingExpected   decimal.Decimal
	PendingActual     decimal.Decimal
	AvailableExpected decimal.Decimal
	AvailableActual   decimal.Decimal
}

// Reconcile recomputes all three balances from the ledgers inside one
// snapshot transaction. A mismatch returns the report together with
// ErrIntegrityViolation; the stored balances are left untouched.
func (s *Service) Reconcile(ctx context.Context, agentID int) (*ReconcileReport, error) {
	var report *ReconcileReport

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		agent, err := s.agentRepo.GetByID(ctx, agentID)
		if err != nil {
			return err
		}
		if agent == nil {
			return ErrAgentNotFound
		}

		totals, err := s.earningsRepo.SumByAgent(ctx, agentID)
		if err != nil {
			return err
		}
		outstanding, err := s.payoutRepo.SumOutstandingByAgent(ctx, agentID)
		if err != nil {
			return err
		}

		report = &ReconcileReport{
			AgentID:           agentID,
			TotalExpected:     totals.Pending.Add(totals.Confirmed).Add(totals.Paid),
			TotalActual:       agent.TotalEarnings,
			PendingExpected:   totals.Pending,
			PendingActual:     agent.PendingBalance,
			AvailableExpected: totals.Confirmed.Add(totals.Paid).Sub(outstanding),
			AvailableActual:   agent.AvailableBalance,
		}
		report.Match = report.TotalExpected.Equal(report.TotalActual) &&
			report.PendingExpected.Equal(report.PendingActual) &&
			report.AvailableExpected.Equal(report.AvailableActual)
		return nil
	})
	if err != nil {
		zap.L().Error("reconciliation failed", zap.Int("agent_id", agentID), zap.Error(err))
		return nil, err
	}

	if !report.Match {
		zap.L().Error("balance mismatch detected",
			zap.Int("agent_id", agentID),
			zap.String("total_expected", report.TotalExpected.String()),
			zap.String("total_actual", report.TotalActual.String()),
			zap.String("pending_expected", report.PendingExpected.String()),
			zap.String("pending_actual", report.PendingActual.String()),
			zap.String("available_expected", report.AvailableExpected.String()),
			zap.String("available_actual", report.AvailableActual.String()),
		)
		return report, fmt.Errorf("%w: agent %d", ErrIntegrityViolation, agentID)
	}
	return report, nil
}

// ReconcileAll checks every agent and returns the mismatched reports.
func (s *Service) ReconcileAll(ctx context.Context) ([]ReconcileReport, error) {
	ids, err := s.agentRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileParallelism)
	mismatches := make(chan ReconcileReport, len(ids))

	for _, id := range ids {
		id := id
		g.Go(func() error {
			report, err := s.Reconcile(gctx, id)
			if err != nil && !errors.Is(err, ErrIntegrityViolation) {
				return err
			}
			if report != nil && !report.Match {
				mismatches <- *report
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(mismatches)

	var result []ReconcileReport
	for report := range mismatches {
		result = append(result, report)
	}
	return result, nil
}
