package agentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func agentRow(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "status", "tier", "commission_rate", "total_earnings",
		"available_balance", "pending_balance", "total_referrals", "active_referrals", "created_at", "updated_at"}).
		AddRow(7, domain.AgentActive, "silver", decimal.RequireFromString("10.00"),
			decimal.RequireFromString("450.75"), decimal.RequireFromString("120.50"),
			decimal.RequireFromString("30.00"), 12, 8, now, now)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, status, tier, commission_rate, total_earnings, available_balance, pending_balance, total_referrals, active_referrals, created_at, updated_at
        FROM agents
        WHERE id = $1
    `)

	tests := []struct {
		name      string
		agentID   int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:    "Valid agentID returns agent",
			agentID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnRows(agentRow(now))
			},
			found: true,
		},
		{
			name:    "Non-existing agentID returns nil",
			agentID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:    "Database error",
			agentID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.agentID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if !tt.found {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.Equal(t, 7, result.ID)
			assert.Equal(t, domain.AgentActive, result.Status)
			assert.True(t, result.AvailableBalance.Equal(decimal.RequireFromString("120.50")))
		})
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, status, tier, commission_rate, total_earnings, available_balance, pending_balance, total_referrals, active_referrals, created_at, updated_at
        FROM agents
        WHERE id = $1
        FOR UPDATE
    `)

	mock.ExpectQuery(query).WithArgs(7).WillReturnRows(agentRow(now))

	result, err := repo.GetByIDForUpdate(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 7, result.ID)

	mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)
	result, err = repo.GetByIDForUpdate(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestRepository_ApplyBalanceDelta(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        UPDATE agents
        SET total_earnings = total_earnings + $1,
            available_balance = available_balance + $2,
            pending_balance = pending_balance + $3,
            updated_at = now()
        WHERE id = $4
        RETURNING id, status, tier, commission_rate, total_earnings, available_balance, pending_balance, total_referrals, active_referrals, created_at, updated_at
    `)

	dTotal := decimal.RequireFromString("15.00")
	dAvailable := decimal.Zero
	dPending := decimal.RequireFromString("15.00")

	t.Run("applies all three deltas", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(dTotal, dAvailable, dPending, 7).WillReturnRows(agentRow(now))

		result, err := repo.ApplyBalanceDelta(context.Background(), 7, dTotal, dAvailable, dPending)
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(dTotal, dAvailable, dPending, 7).WillReturnError(errors.New("database error"))

		result, err := repo.ApplyBalanceDelta(context.Background(), 7, dTotal, dAvailable, dPending)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_IncrementReferrals(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE agents
        SET total_referrals = total_referrals + $1,
            active_referrals = active_referrals + $2,
            updated_at = now()
        WHERE id = $3
    `)

	mock.ExpectExec(query).WithArgs(1, 0, 7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.IncrementReferrals(context.Background(), 7, 1, 0))

	mock.ExpectExec(query).WithArgs(0, 1, 7).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.IncrementReferrals(context.Background(), 7, 0, 1))
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id
        FROM agents
        ORDER BY id
    `)

	t.Run("returns all ids", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(
			pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(7))

		ids, err := repo.ListIDs(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 7}, ids)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		ids, err := repo.ListIDs(context.Background())
		assert.Error(t, err)
		assert.Nil(t, ids)
	})
}
