package coderepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

const codeColumns = `id, agent_id, code, status, type, max_uses, current_uses, expires_at, created_at`

// ErrCodeCollision is returned when an insert hits the case-insensitive
// unique index on the code column.
var ErrCodeCollision = errors.New("referral code already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanCode(row pgx.Row) (*domain.ReferralCode, error) {
	var c domain.ReferralCode
	err := row.Scan(&c.ID, &c.AgentID, &c.Code, &c.Status, &c.Type, &c.MaxUses, &c.CurrentUses, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, code *domain.ReferralCode) (*domain.ReferralCode, error) {
	query := `
        INSERT INTO referral_codes (agent_id, code, status, type, max_uses, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + codeColumns + `
    `
	created, err := scanCode(r.db.QueryRow(ctx, query, code.AgentID, code.Code, code.Status, code.Type, code.MaxUses, code.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeCollision
		}
		zap.L().Error("can't save referral code", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	query := `
        SELECT ` + codeColumns + `
        FROM referral_codes
        WHERE upper(code) = upper($1)
    `
	found, err := scanCode(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find referral code", zap.Error(err))
		return nil, err
	}
	return found, nil
}

// ConsumeSlot is the sole mutator of current_uses. The WHERE clause
// revalidates status, expiry and the usage cap in the same statement as the
// increment, so two concurrent uses of a code with one remaining slot admit
// exactly one. A nil result means no slot was consumed; the caller rereads
// the code to report the specific reason.
func (r *Repository) ConsumeSlot(ctx context.Context, code string, now time.Time) (*domain.ReferralCode, error) {
	query := `
        UPDATE referral_codes
        SET current_uses = current_uses + 1
        WHERE upper(code) = upper($1)
          AND status = 'active'
          AND (expires_at IS NULL OR expires_at > $2)
          AND (max_uses IS NULL OR current_uses < max_uses)
        RETURNING ` + codeColumns + `
    `
	updated, err := scanCode(r.db.QueryRow(ctx, query, code, now))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't consume referral code slot", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, codeID int, status domain.CodeStatus) error {
	query := `
        UPDATE referral_codes
        SET status = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, codeID); err != nil {
		zap.L().Error("can't update referral code status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAgent(ctx context.Context, agentID int) ([]domain.ReferralCode, error) {
	query := `
        SELECT ` + codeColumns + `
        FROM referral_codes
        WHERE agent_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, agentID)
	if err != nil {
		zap.L().Error("can't list referral codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.ReferralCode
	for rows.Next() {
		var c domain.ReferralCode
		err := rows.Scan(&c.ID, &c.AgentID, &c.Code, &c.Status, &c.Type, &c.MaxUses, &c.CurrentUses, &c.ExpiresAt, &c.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan referral code row", zap.Error(err))
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
