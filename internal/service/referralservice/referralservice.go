package referralservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	coderepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/code-repo"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/codes"
)

type CodeRepo interface {
	Create(ctx context.Context, code *domain.ReferralCode) (*domain.ReferralCode, error)
	FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error)
	ConsumeSlot(ctx context.Context, code string, now time.Time) (*domain.ReferralCode, error)
	UpdateStatus(ctx context.Context, codeID int, status domain.CodeStatus) error
	ListByAgent(ctx context.Context, agentID int) ([]domain.ReferralCode, error)
}

type UsageRepo interface {
	Create(ctx context.Context, usage *domain.ReferralUsage) (*domain.ReferralUsage, error)
	GetByIDForUpdate(ctx context.Context, usageID int) (*domain.ReferralUsage, error)
	FindByReference(ctx context.Context, reference uuid.UUID) (*domain.ReferralUsage, error)
	Update(ctx context.Context, usage *domain.ReferralUsage) error
	ListByAgent(ctx context.Context, agentID int) ([]domain.ReferralUsage, error)
}

type AgentRepo interface {
	GetByID(ctx context.Context, agentID int) (*domain.Agent, error)
	IncrementReferrals(ctx context.Context, agentID int, totalDelta, activeDelta int) error
}

// Ledger creates the commission entry when a usage is confirmed.
type Ledger interface {
	Create(ctx context.Context, agentID int, typ domain.EarningType, amount decimal.Decimal, description string, sourceUsageID *int) (*domain.AgentEarning, error)
}

var (
	ErrCodeNotFound   = errors.New("referral code not found")
	ErrCodeInactive   = errors.New("referral code is inactive")
	ErrCodeSuspended  = errors.New("referral code is suspended")
	ErrCodeExpired    = errors.New("referral code has expired")
	ErrCodeExhausted  = errors.New("referral code usage limit reached")
	ErrAgentNotFound  = errors.New("agent not found")
	ErrAgentNotActive = errors.New("agent is not active")
	ErrUsageNotFound  = errors.New("referral usage not found")
	ErrInvalidAmount  = errors.New("reference amount must be positive")
)

const issueAttempts = 5

type IssueOptions struct {
	Type    domain.CodeType
	Prefix  string
	MaxUses *int
	// TTLDays overrides the configured code lifetime; negative means no
	// expiry.
	TTLDays int
}

type ReferredUser struct {
	UserID *int
	Name   string
	Phone  string
}

type Service struct {
	codeRepo   CodeRepo
	usageRepo  UsageRepo
	agentRepo  AgentRepo
	ledger     Ledger
	txManager  pg.TXManager
	defaultTTL time.Duration
}

func New(codeRepo CodeRepo, usageRepo UsageRepo, agentRepo AgentRepo, ledger Ledger, txManager pg.TXManager, codeTTLDays int) *Service {
	return &Service{
		codeRepo:   codeRepo,
		usageRepo:  usageRepo,
		agentRepo:  agentRepo,
		ledger:     ledger,
		txManager:  txManager,
		defaultTTL: time.Duration(codeTTLDays) * 24 * time.Hour,
	}
}

// IssueCode mints a unique code for an active agent. Uniqueness is enforced
// case-insensitively by the database; collisions regenerate up to
// issueAttempts times.
func (s *Service) IssueCode(ctx context.Context, agentID int, opts IssueOptions) (*domain.ReferralCode, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	if agent.Status != domain.AgentActive {
		return nil, ErrAgentNotActive
	}

	codeType := opts.Type
	if codeType == "" {
		codeType = domain.CodeStandard
	}
	expiresAt := s.expiry(opts.TTLDays)

	for attempt := 1; attempt <= issueAttempts; attempt++ {
		value, err := codes.Generate(opts.Prefix, codes.DefaultLength)
		if err != nil {
			return nil, err
		}

		created, err := s.codeRepo.Create(ctx, &domain.ReferralCode{
			AgentID:   agentID,
			Code:      value,
			Status:    domain.CodeActive,
			Type:      codeType,
			MaxUses:   opts.MaxUses,
			ExpiresAt: expiresAt,
		})
		if errors.Is(err, coderepo.ErrCodeCollision) {
			zap.L().Warn("referral code collision, regenerating", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	return nil, fmt.Errorf("can't issue unique referral code after %d attempts", issueAttempts)
}

func (s *Service) expiry(ttlDays int) *time.Time {
	ttl := s.defaultTTL
	switch {
	case ttlDays < 0:
		return nil
	case ttlDays > 0:
		ttl = time.Duration(ttlDays) * 24 * time.Hour
	}
	if ttl == 0 {
		return nil
	}
	at := time.Now().Add(ttl)
	return &at
}

// ValidateCode returns the code when it is currently usable, or the
// sentinel naming the specific reason it is not. A code past its expiry
// that still reads active is moved to expired on the way out.
func (s *Service) ValidateCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	found, err := s.codeRepo.FindByCode(ctx, codes.Normalize(code))
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrCodeNotFound
	}

	switch found.Status {
	case domain.CodeSuspended:
		return nil, ErrCodeSuspended
	case domain.CodeInactive:
		return nil, ErrCodeInactive
	case domain.CodeExpired:
		return nil, ErrCodeExpired
	}

	if found.Expired(time.Now()) {
		if err := s.codeRepo.UpdateStatus(ctx, found.ID, domain.CodeExpired); err != nil {
			zap.L().Warn("can't mark referral code expired", zap.Int("code_id", found.ID), zap.Error(err))
		}
		return nil, ErrCodeExpired
	}
	if found.Exhausted() {
		return nil, ErrCodeExhausted
	}
	return found, nil
}

// RecordUsage converts a referred-user event into a pending usage. The
// conditional increment on the code row and the usage insert share one
// transaction, so a capped code is never oversold: validation and increment
// are a single statement, re-checked under the row lock.
func (s *Service) RecordUsage(ctx context.Context, code string, referred ReferredUser) (*domain.ReferralUsage, error) {
	var result *domain.ReferralUsage

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		consumed, err := s.codeRepo.ConsumeSlot(ctx, codes.Normalize(code), time.Now())
		if err != nil {
			return err
		}
		if consumed == nil {
			// No slot consumed; reread to report the specific reason.
			if _, err := s.ValidateCode(ctx, code); err != nil {
				return err
			}
			return ErrCodeExhausted
		}

		agent, err := s.agentRepo.GetByID(ctx, consumed.AgentID)
		if err != nil {
			return err
		}
		if agent == nil {
			return ErrAgentNotFound
		}

		usage, err := s.usageRepo.Create(ctx, &domain.ReferralUsage{
			Reference:      uuid.New(),
			CodeID:         consumed.ID,
			AgentID:        consumed.AgentID,
			ReferredUserID: referred.UserID,
			ReferredName:   referred.Name,
			ReferredPhone:  referred.Phone,
			Status:         domain.UsagePending,
			CommissionRate: agent.CommissionRate,
		})
		if err != nil {
			return err
		}
		if err := s.agentRepo.IncrementReferrals(ctx, consumed.AgentID, 1, 0); err != nil {
			return err
		}
		result = usage
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("referral usage recorded",
		zap.String("code", codes.Normalize(code)),
		zap.Int("agent_id", result.AgentID),
		zap.String("reference", result.Reference.String()),
	)
	return result, nil
}

// ConfirmUsage settles a pending usage against the reference amount
// reported by billing: commission is computed from the rate snapshotted at
// recording time and ledgered exactly once. Re-confirming is a no-op.
func (s *Service) ConfirmUsage(ctx context.Context, usageID int, referenceAmount decimal.Decimal) (*domain.ReferralUsage, error) {
	if !referenceAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *domain.ReferralUsage
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		usage, err := s.usageRepo.GetByIDForUpdate(ctx, usageID)
		if err != nil {
			return err
		}
		if usage == nil {
			return ErrUsageNotFound
		}
		if usage.Status == domain.UsageConfirmed {
			result = usage
			return nil
		}
		if !usage.Status.CanTransitionTo(domain.UsageConfirmed) {
			return domain.NewTransitionError("usage", usage.ID, string(usage.Status), string(domain.UsageConfirmed))
		}

		now := time.Now()
		usage.Status = domain.UsageConfirmed
		usage.ConfirmedAt = &now
		usage.CommissionEarned = domain.Commission(referenceAmount, usage.CommissionRate)
		if err := s.usageRepo.Update(ctx, usage); err != nil {
			return err
		}

		description := fmt.Sprintf("referral commission (%s%% of %s)", usage.CommissionRate, referenceAmount)
		if _, err := s.ledger.Create(ctx, usage.AgentID, domain.EarningReferralCommission, usage.CommissionEarned, description, &usage.ID); err != nil {
			return err
		}
		if err := s.agentRepo.IncrementReferrals(ctx, usage.AgentID, 0, 1); err != nil {
			return err
		}
		result = usage
		return nil
	})
	if err != nil {
		zap.L().Error("failed to confirm referral usage", zap.Int("usage_id", usageID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// CancelUsage terminates a pending usage without creating an earning. A
// confirmed usage cannot be cancelled: its earning already exists and must
// be reversed through the ledger instead.
func (s *Service) CancelUsage(ctx context.Context, usageID int) (*domain.ReferralUsage, error) {
	return s.terminate(ctx, usageID, domain.UsageCancelled)
}

// ExpireUsage terminates a pending usage whose follow-up window lapsed.
func (s *Service) ExpireUsage(ctx context.Context, usageID int) (*domain.ReferralUsage, error) {
	return s.terminate(ctx, usageID, domain.UsageExpired)
}

func (s *Service) terminate(ctx context.Context, usageID int, to domain.UsageStatus) (*domain.ReferralUsage, error) {
	var result *domain.ReferralUsage
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		usage, err := s.usageRepo.GetByIDForUpdate(ctx, usageID)
		if err != nil {
			return err
		}
		if usage == nil {
			return ErrUsageNotFound
		}
		if !usage.Status.CanTransitionTo(to) {
			return domain.NewTransitionError("usage", usage.ID, string(usage.Status), string(to))
		}

		usage.Status = to
		if err := s.usageRepo.Update(ctx, usage); err != nil {
			return err
		}
		result = usage
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) ListCodes(ctx context.Context, agentID int) ([]domain.ReferralCode, error) {
	list, err := s.codeRepo.ListByAgent(ctx, agentID)
	if err != nil {
		zap.L().Error("failed to list referral codes", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListUsages(ctx context.Context, agentID int) ([]domain.ReferralUsage, error) {
	list, err := s.usageRepo.ListByAgent(ctx, agentID)
	if err != nil {
		zap.L().Error("failed to list referral usages", zap.Error(err))
		return nil, err
	}
	return list, nil
}
