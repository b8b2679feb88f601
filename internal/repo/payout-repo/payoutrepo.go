package payoutrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

const payoutColumns = `id, reference, agent_id, status, method, amount, fees, net_amount, reserved, review_message, requested_at, approved_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(&p.ID, &p.Reference, &p.AgentID, &p.Status, &p.Method, &p.Amount, &p.Fees, &p.NetAmount,
		&p.Reserved, &p.ReviewMessage, &p.RequestedAt, &p.ApprovedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (reference, agent_id, status, method, amount, fees, net_amount, reserved)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + payoutColumns + `
    `
	created, err := scanPayout(r.db.QueryRow(ctx, query, payout.Reference, payout.AgentID, payout.Status,
		payout.Method, payout.Amount, payout.Fees, payout.NetAmount, payout.Reserved))
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, payoutID int) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
    `
	payout, err := scanPayout(r.db.QueryRow(ctx, query, payoutID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

// GetByIDForUpdate serializes workflow transitions on the same payout.
func (r *Repository) GetByIDForUpdate(ctx context.Context, payoutID int) (*domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE id = $1
        FOR UPDATE
    `
	payout, err := scanPayout(r.db.QueryRow(ctx, query, payoutID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (r *Repository) Update(ctx context.Context, payout *domain.Payout) error {
	query := `
        UPDATE payouts
        SET status = $1, reserved = $2, review_message = $3, approved_at = $4, updated_at = now()
        WHERE id = $5
    `
	if _, err := r.db.Exec(ctx, query, payout.Status, payout.Reserved, payout.ReviewMessage, payout.ApprovedAt, payout.ID); err != nil {
		zap.L().Error("can't update payout", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID int) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE agent_id = $1
        ORDER BY requested_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectPayouts(rows)
}

func (r *Repository) ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error) {
	query := `
        SELECT ` + payoutColumns + `
        FROM payouts
        WHERE status = $1
        ORDER BY requested_at ASC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list payouts by status", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectPayouts(rows)
}

// SumOutstandingByAgent totals payout amounts still holding agent funds:
// anything approved plus anything with a live reservation.
func (r *Repository) SumOutstandingByAgent(ctx context.Context, agentID int) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM payouts
        WHERE agent_id = $1 AND (status = 'approved' OR reserved)
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, agentID).Scan(&sum); err != nil {
		zap.L().Error("can't sum outstanding payouts", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func collectPayouts(rows pgx.Rows) ([]domain.Payout, error) {
	var result []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.Reference, &p.AgentID, &p.Status, &p.Method, &p.Amount, &p.Fees, &p.NetAmount,
			&p.Reserved, &p.ReviewMessage, &p.RequestedAt, &p.ApprovedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}
