package earningsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

const earningColumns = `id, agent_id, usage_id, type, status, amount, description, earned_at, confirmed_at, paid_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEarning(row pgx.Row) (*domain.AgentEarning, error) {
	var e domain.AgentEarning
	err := row.Scan(&e.ID, &e.AgentID, &e.UsageID, &e.Type, &e.Status, &e.Amount, &e.Description,
		&e.EarnedAt, &e.ConfirmedAt, &e.PaidAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Create(ctx context.Context, earning *domain.AgentEarning) (*domain.AgentEarning, error) {
	query := `
        INSERT INTO agent_earnings (agent_id, usage_id, type, status, amount, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + earningColumns + `
    `
	created, err := scanEarning(r.db.QueryRow(ctx, query, earning.AgentID, earning.UsageID, earning.Type,
		earning.Status, earning.Amount, earning.Description))
	if err != nil {
		zap.L().Error("can't save earning", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM agent_earnings
        WHERE id = $1
    `
	earning, err := scanEarning(r.db.QueryRow(ctx, query, earningID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find earning", zap.Error(err))
		return nil, err
	}
	return earning, nil
}

// GetByIDForUpdate locks the earning row so no two transitions run
// concurrently on the same entry.
func (r *Repository) GetByIDForUpdate(ctx context.Context, earningID int) (*domain.AgentEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM agent_earnings
        WHERE id = $1
        FOR UPDATE
    `
	earning, err := scanEarning(r.db.QueryRow(ctx, query, earningID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock earning", zap.Error(err))
		return nil, err
	}
	return earning, nil
}

func (r *Repository) GetByUsageID(ctx context.Context, usageID int) (*domain.AgentEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM agent_earnings
        WHERE usage_id = $1
    `
	earning, err := scanEarning(r.db.QueryRow(ctx, query, usageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find earning by usage", zap.Error(err))
		return nil, err
	}
	return earning, nil
}

// UpdateStatus writes a transition. Ledger entries are never deleted;
// status and the transition timestamps are the only mutable columns.
func (r *Repository) UpdateStatus(ctx context.Context, earning *domain.AgentEarning) error {
	query := `
        UPDATE agent_earnings
        SET status = $1, confirmed_at = $2, paid_at = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, earning.Status, earning.ConfirmedAt, earning.PaidAt, earning.ID); err != nil {
		zap.L().Error("can't update earning status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID int, status *domain.EarningStatus) ([]domain.AgentEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM agent_earnings
        WHERE agent_id = $1 AND ($2::text IS NULL OR status = $2)
        ORDER BY earned_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID, status)
	if err != nil {
		zap.L().Error("can't list earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectEarnings(rows)
}

// ListConfirmedOldestFirst feeds payout approval, which settles the oldest
// confirmed entries first.
func (r *Repository) ListConfirmedOldestFirst(ctx context.Context, agentID int) ([]domain.AgentEarning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM agent_earnings
        WHERE agent_id = $1 AND status = 'confirmed'
        ORDER BY earned_at ASC
        FOR UPDATE
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list confirmed earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectEarnings(rows)
}

// SumByAgent recomputes the per-status amount totals straight from the
// ledger, bypassing the materialized agent columns.
func (r *Repository) SumByAgent(ctx context.Context, agentID int) (*domain.EarningTotals, error) {
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'confirmed'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)
        FROM agent_earnings
        WHERE agent_id = $1
    `
	var totals domain.EarningTotals
	err := r.db.QueryRow(ctx, query, agentID).Scan(&totals.Pending, &totals.Confirmed, &totals.Paid)
	if err != nil {
		zap.L().Error("can't sum earnings", zap.Error(err))
		return nil, err
	}
	return &totals, nil
}

func collectEarnings(rows pgx.Rows) ([]domain.AgentEarning, error) {
	var result []domain.AgentEarning
	for rows.Next() {
		var e domain.AgentEarning
		err := rows.Scan(&e.ID, &e.AgentID, &e.UsageID, &e.Type, &e.Status, &e.Amount, &e.Description,
			&e.EarnedAt, &e.ConfirmedAt, &e.PaidAt)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}
