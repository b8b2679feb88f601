package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/config"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/balance"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/earnings"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/payouts"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/referrals"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo"
	balanceservice "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
	earningsservice "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/earningsservice"
	payoutservice "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/payoutservice"
	referralservice "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/referralservice"
)

type Services struct {
	ReferralService referrals.Service
	EarningsService earnings.Service
	PayoutService   payouts.Service
	BalanceService  *balanceservice.Service
}

var _ balance.Service = (*balanceservice.Service)(nil)

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier) *Services {
	balanceService := balanceservice.New(repo.Agents, repo.Earnings, repo.Payouts, txManager)
	earningsService := earningsservice.New(repo.Earnings, balanceService, txManager, notifier)
	referralService := referralservice.New(repo.Codes, repo.Usages, repo.Agents, earningsService, txManager, cfg.CodeTTLDays)
	payoutService := payoutservice.New(repo.Payouts, repo.Agents, balanceService, earningsService, txManager, notifier, payoutFees(cfg))

	return &Services{
		ReferralService: referralService,
		EarningsService: earningsService,
		PayoutService:   payoutService,
		BalanceService:  balanceService,
	}
}

// payoutFees parses the configured fee percentages. A malformed value is
// treated as zero fee rather than refusing to start.
func payoutFees(cfg *config.Config) payoutservice.Fees {
	return payoutservice.Fees{
		BankTransferPct:     feePct(cfg.BankFeePct),
		PlanetTalkCreditPct: feePct(cfg.CreditFeePct),
	}
}

func feePct(raw string) decimal.Decimal {
	pct, err := decimal.NewFromString(raw)
	if err != nil {
		zap.L().Warn("invalid payout fee percentage, using zero", zap.String("value", raw), zap.Error(err))
		return decimal.Zero
	}
	return pct
}
