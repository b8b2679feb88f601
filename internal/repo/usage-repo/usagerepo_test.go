package usagerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var usageCols = []string{"id", "reference", "code_id", "agent_id", "referred_user_id", "referred_name",
	"referred_phone", "status", "commission_rate", "commission_earned", "created_at", "confirmed_at"}

func usageRow(reference uuid.UUID, now time.Time) *pgxmock.Rows {
	referredUser := 42
	return pgxmock.NewRows(usageCols).
		AddRow(11, reference, 1, 7, &referredUser, "John Smith", "+447700900123",
			domain.UsagePending, decimal.RequireFromString("10.00"), decimal.Zero, now, (*time.Time)(nil))
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := uuid.New()
	referredUser := 42

	query := regexp.QuoteMeta(`
        INSERT INTO referral_usages (reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate, commission_earned, created_at, confirmed_at
    `)

	usage := &domain.ReferralUsage{
		Reference:      reference,
		CodeID:         1,
		AgentID:        7,
		ReferredUserID: &referredUser,
		ReferredName:   "John Smith",
		ReferredPhone:  "+447700900123",
		Status:         domain.UsagePending,
		CommissionRate: decimal.RequireFromString("10.00"),
	}

	t.Run("successfully creates usage", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(reference, 1, 7, &referredUser, "John Smith", "+447700900123",
				domain.UsagePending, decimal.RequireFromString("10.00")).
			WillReturnRows(usageRow(reference, now))

		created, err := repo.Create(context.Background(), usage)
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, 11, created.ID)
		assert.True(t, created.CommissionRate.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(reference, 1, 7, &referredUser, "John Smith", "+447700900123",
				domain.UsagePending, decimal.RequireFromString("10.00")).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), usage)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := uuid.New()

	query := regexp.QuoteMeta(`
        SELECT id, reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate, commission_earned, created_at, confirmed_at
        FROM referral_usages
        WHERE id = $1
    `)

	mock.ExpectQuery(query).WithArgs(11).WillReturnRows(usageRow(reference, now))
	usage, err := repo.GetByID(context.Background(), 11)
	assert.NoError(t, err)
	assert.NotNil(t, usage)
	assert.Equal(t, reference, usage.Reference)
	assert.Nil(t, usage.ConfirmedAt)

	mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
	usage, err = repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, usage)
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := uuid.New()

	query := regexp.QuoteMeta(`
        SELECT id, reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate, commission_earned, created_at, confirmed_at
        FROM referral_usages
        WHERE id = $1
        FOR UPDATE
    `)

	mock.ExpectQuery(query).WithArgs(11).WillReturnRows(usageRow(reference, now))
	usage, err := repo.GetByIDForUpdate(context.Background(), 11)
	assert.NoError(t, err)
	assert.NotNil(t, usage)

	mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
	usage, err = repo.GetByIDForUpdate(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, usage)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        UPDATE referral_usages
        SET status = $1, commission_earned = $2, confirmed_at = $3
        WHERE id = $4
    `)

	earned := decimal.RequireFromString("15.00")
	usage := &domain.ReferralUsage{
		ID:               11,
		Status:           domain.UsageConfirmed,
		CommissionEarned: earned,
		ConfirmedAt:      &now,
	}

	mock.ExpectExec(query).WithArgs(domain.UsageConfirmed, earned, &now, 11).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(context.Background(), usage))

	mock.ExpectExec(query).WithArgs(domain.UsageConfirmed, earned, &now, 11).
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Update(context.Background(), usage))
}

func TestRepository_ListByAgent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, reference, code_id, agent_id, referred_user_id, referred_name, referred_phone, status, commission_rate, commission_earned, created_at, confirmed_at
        FROM referral_usages
        WHERE agent_id = $1
        ORDER BY created_at DESC
    `)

	t.Run("returns all usages", func(t *testing.T) {
		rows := pgxmock.NewRows(usageCols).
			AddRow(12, uuid.New(), 1, 7, (*int)(nil), "", "",
				domain.UsageConfirmed, decimal.RequireFromString("10.00"), decimal.RequireFromString("15.00"), now, &now).
			AddRow(11, uuid.New(), 1, 7, (*int)(nil), "", "",
				domain.UsageCancelled, decimal.RequireFromString("10.00"), decimal.Zero, now.Add(-time.Hour), (*time.Time)(nil))
		mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

		list, err := repo.ListByAgent(context.Background(), 7)
		assert.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, domain.UsageConfirmed, list[0].Status)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))

		list, err := repo.ListByAgent(context.Background(), 7)
		assert.Error(t, err)
		assert.Nil(t, list)
	})
}
