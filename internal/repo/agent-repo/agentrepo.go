package agentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

const agentColumns = `id, status, tier, commission_rate, total_earnings, available_balance, pending_balance, total_referrals, active_referrals, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	err := row.Scan(&a.ID, &a.Status, &a.Tier, &a.CommissionRate, &a.TotalEarnings, &a.AvailableBalance,
		&a.PendingBalance, &a.TotalReferrals, &a.ActiveReferrals, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByID(ctx context.Context, agentID int) (*domain.Agent, error) {
	query := `
        SELECT ` + agentColumns + `
        FROM agents
        WHERE id = $1
    `
	agent, err := scanAgent(r.db.QueryRow(ctx, query, agentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find agent", zap.Error(err))
		return nil, err
	}
	return agent, nil
}

// GetByIDForUpdate locks the agent row for the remainder of the current
// transaction. Every balance-touching operation goes through this lock.
func (r *Repository) GetByIDForUpdate(ctx context.Context, agentID int) (*domain.Agent, error) {
	query := `
        SELECT ` + agentColumns + `
        FROM agents
        WHERE id = $1
        FOR UPDATE
    `
	agent, err := scanAgent(r.db.QueryRow(ctx, query, agentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock agent", zap.Error(err))
		return nil, err
	}
	return agent, nil
}

// ApplyBalanceDelta adjusts the three materialized balance columns in one
// statement. Callers hold the row lock and have validated the deltas.
func (r *Repository) ApplyBalanceDelta(ctx context.Context, agentID int, dTotal, dAvailable, dPending decimal.Decimal) (*domain.Agent, error) {
	query := `
        UPDATE agents
        SET total_earnings = total_earnings + $1,
            available_balance = available_balance + $2,
            pending_balance = pending_balance + $3,
            updated_at = now()
        WHERE id = $4
        RETURNING ` + agentColumns + `
    `
	agent, err := scanAgent(r.db.QueryRow(ctx, query, dTotal, dAvailable, dPending, agentID))
	if err != nil {
		zap.L().Error("can't apply balance delta", zap.Error(err))
		return nil, err
	}
	return agent, nil
}

func (r *Repository) IncrementReferrals(ctx context.Context, agentID int, totalDelta, activeDelta int) error {
	query := `
        UPDATE agents
        SET total_referrals = total_referrals + $1,
            active_referrals = active_referrals + $2,
            updated_at = now()
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, totalDelta, activeDelta, agentID); err != nil {
		zap.L().Error("can't increment referral counters", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListIDs(ctx context.Context) ([]int, error) {
	query := `
        SELECT id
        FROM agents
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list agent ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan agent id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
