package usagerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

const usageColumns = `id, reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate, commission_earned, created_at, confirmed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUsage(row pgx.Row) (*domain.ReferralUsage, error) {
	var u domain.ReferralUsage
	err := row.Scan(&u.ID, &u.Reference, &u.CodeID, &u.AgentID, &u.ReferredUserID, &u.ReferredName, &u.ReferredPhone,
		&u.Status, &u.CommissionRate, &u.CommissionEarned, &u.CreatedAt, &u.ConfirmedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, usage *domain.ReferralUsage) (*domain.ReferralUsage, error) {
	query := `
        INSERT INTO referral_usages (reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + usageColumns + `
    `
	created, err := scanUsage(r.db.QueryRow(ctx, query, usage.Reference, usage.CodeID, usage.AgentID,
		usage.ReferredUserID, usage.ReferredName, usage.ReferredPhone, usage.Status, usage.CommissionRate))
	if err != nil {
		zap.L().Error("can't save referral usage", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, usageID int) (*domain.ReferralUsage, error) {
	query := `
        SELECT ` + usageColumns + `
        FROM referral_usages
        WHERE id = $1
    `
	usage, err := scanUsage(r.db.QueryRow(ctx, query, usageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find referral usage", zap.Error(err))
		return nil, err
	}
	return usage, nil
}

// GetByIDForUpdate serializes concurrent transitions on the same usage.
func (r *Repository) GetByIDForUpdate(ctx context.Context, usageID int) (*domain.ReferralUsage, error) {
	query := `
        SELECT ` + usageColumns + `
        FROM referral_usages
        WHERE id = $1
        FOR UPDATE
    `
	usage, err := scanUsage(r.db.QueryRow(ctx, query, usageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock referral usage", zap.Error(err))
		return nil, err
	}
	return usage, nil
}

func (r *Repository) FindByReference(ctx context.Context, reference uuid.UUID) (*domain.ReferralUsage, error) {
	query := `
        SELECT ` + usageColumns + `
        FROM referral_usages
        WHERE reference = $1
    `
	usage, err := scanUsage(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find referral usage by reference", zap.Error(err))
		return nil, err
	}
	return usage, nil
}

func (r *Repository) Update(ctx context.Context, usage *domain.ReferralUsage) error {
	query := `
        UPDATE referral_usages
        SET status = $1, commission_earned = $2, confirmed_at = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, usage.Status, usage.CommissionEarned, usage.ConfirmedAt, usage.ID); err != nil {
		zap.L().Error("can't update referral usage", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID int) ([]domain.ReferralUsage, error) {
	query := `
        SELECT ` + usageColumns + `
        FROM referral_usages
        WHERE agent_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list referral usages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ReferralUsage
	for rows.Next() {
		var u domain.ReferralUsage
		err := rows.Scan(&u.ID, &u.Reference, &u.CodeID, &u.AgentID, &u.ReferredUserID, &u.ReferredName, &u.ReferredPhone,
			&u.Status, &u.CommissionRate, &u.CommissionEarned, &u.CreatedAt, &u.ConfirmedAt)
		if err != nil {
			zap.L().Error("can't scan referral usage row", zap.Error(err))
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
