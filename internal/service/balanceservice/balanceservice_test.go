package balanceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAgentRepo, *MockEarningsRepo, *MockPayoutRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	agentRepo := NewMockAgentRepo(ctrl)
	earningsRepo := NewMockEarningsRepo(ctrl)
	payoutRepo := NewMockPayoutRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(agentRepo, earningsRepo, payoutRepo, txManager)
	defer ctrl.Finish()
	return service, agentRepo, earningsRepo, payoutRepo, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func agentFixture(total, available, pending string) *domain.Agent {
	return &domain.Agent{
		ID:               1,
		Status:           domain.AgentActive,
		TotalEarnings:    decimal.RequireFromString(total),
		AvailableBalance: decimal.RequireFromString(available),
		PendingBalance:   decimal.RequireFromString(pending),
	}
}

func TestApplyEarningCreated(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "adds amount to total and pending",
			amount: decimal.RequireFromString("15.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "40.00", "60.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.RequireFromString("15.00"), decimal.Zero, decimal.RequireFromString("15.00")).
					Return(agentFixture("115.00", "40.00", "75.00"), nil)
			},
		},
		{
			name:          "negative amount is an integrity violation",
			amount:        decimal.RequireFromString("-5.00"),
			prepareMock:   func() {},
			expectedError: ErrIntegrityViolation,
		},
		{
			name:   "unknown agent",
			amount: decimal.RequireFromString("15.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAgentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyEarningCreated(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEarningConfirmed(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "moves amount from pending to available",
			amount: decimal.RequireFromString("60.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "0.00", "100.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.Zero, decimal.RequireFromString("60.00"), decimal.RequireFromString("-60.00")).
					Return(agentFixture("100.00", "60.00", "40.00"), nil)
			},
		},
		{
			name:   "amount over pending balance is never clamped",
			amount: decimal.RequireFromString("150.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "0.00", "100.00"), nil)
			},
			expectedError: ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyEarningConfirmed(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEarningReversed(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		bucket        Bucket
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "disputed confirmed earning leaves available and total",
			amount: decimal.RequireFromString("25.00"),
			bucket: BucketAvailable,
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "40.00", "60.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.RequireFromString("-25.00"), decimal.RequireFromString("-25.00"), decimal.Zero).
					Return(agentFixture("75.00", "15.00", "60.00"), nil)
			},
		},
		{
			name:   "cancelled pending earning leaves pending and total",
			amount: decimal.RequireFromString("25.00"),
			bucket: BucketPending,
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "40.00", "60.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.RequireFromString("-25.00"), decimal.Zero, decimal.RequireFromString("-25.00")).
					Return(agentFixture("75.00", "40.00", "35.00"), nil)
			},
		},
		{
			name:   "reversal over bucket balance fails",
			amount: decimal.RequireFromString("45.00"),
			bucket: BucketAvailable,
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "40.00", "60.00"), nil)
			},
			expectedError: ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyEarningReversed(context.Background(), 1, tt.amount, tt.bucket)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyPayoutReserved(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "reserves from available balance",
			amount: decimal.RequireFromString("60.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "100.00", "0.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.Zero, decimal.RequireFromString("-60.00"), decimal.Zero).
					Return(agentFixture("100.00", "40.00", "0.00"), nil)
			},
		},
		{
			name:   "amount over available fails with no mutation",
			amount: decimal.RequireFromString("120.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "100.00", "0.00"), nil)
			},
			expectedError: ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyPayoutReserved(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyPayoutCompleted(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "consumes available balance on approval without a hold",
			amount: decimal.RequireFromString("60.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "80.00", "0.00"), nil)
				agentRepo.EXPECT().ApplyBalanceDelta(gomock.Any(), 1,
					decimal.Zero, decimal.RequireFromString("-60.00"), decimal.Zero).
					Return(agentFixture("100.00", "20.00", "0.00"), nil)
			},
		},
		{
			name:   "balance moved since the return fails with no mutation",
			amount: decimal.RequireFromString("60.00"),
			prepareMock: func() {
				agentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 1).Return(agentFixture("100.00", "10.00", "0.00"), nil)
			},
			expectedError: ErrIntegrityViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			_, err := service.ApplyPayoutCompleted(context.Background(), 1, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	service, agentRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "returns the agent snapshot",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(agentFixture("100.00", "40.00", "60.00"), nil)
			},
		},
		{
			name: "unknown agent",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAgentNotFound,
		},
		{
			name: "repo failure",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			agent, err := service.GetBalance(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, agent.ID)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	service, agentRepo, earningsRepo, payoutRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	totals := func(pending, confirmed, paid string) *domain.EarningTotals {
		return &domain.EarningTotals{
			Pending:   decimal.RequireFromString(pending),
			Confirmed: decimal.RequireFromString(confirmed),
			Paid:      decimal.RequireFromString(paid),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectMatch   bool
		expectedError error
	}{
		{
			name: "ledger and balances agree",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(agentFixture("100.00", "10.00", "30.00"), nil)
				earningsRepo.EXPECT().SumByAgent(gomock.Any(), 1).Return(totals("30.00", "40.00", "30.00"), nil)
				payoutRepo.EXPECT().SumOutstandingByAgent(gomock.Any(), 1).Return(decimal.RequireFromString("60.00"), nil)
			},
			expectMatch: true,
		},
		{
			name: "drifted available balance is reported, not corrected",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(agentFixture("100.00", "25.00", "30.00"), nil)
				earningsRepo.EXPECT().SumByAgent(gomock.Any(), 1).Return(totals("30.00", "40.00", "30.00"), nil)
				payoutRepo.EXPECT().SumOutstandingByAgent(gomock.Any(), 1).Return(decimal.RequireFromString("60.00"), nil)
			},
			expectMatch:   false,
			expectedError: ErrIntegrityViolation,
		},
		{
			name: "unknown agent",
			prepareMock: func() {
				agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAgentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			report, err := service.Reconcile(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			if report != nil {
				assert.Equal(t, tt.expectMatch, report.Match)
			}
		})
	}
}

func TestReconcileAll(t *testing.T) {
	service, agentRepo, earningsRepo, payoutRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	agentRepo.EXPECT().ListIDs(gomock.Any()).Return([]int{1, 2}, nil)

	// Agent 1 reconciles cleanly.
	agentRepo.EXPECT().GetByID(gomock.Any(), 1).Return(agentFixture("50.00", "50.00", "0.00"), nil)
	earningsRepo.EXPECT().SumByAgent(gomock.Any(), 1).Return(&domain.EarningTotals{
		Pending:   decimal.Zero,
		Confirmed: decimal.RequireFromString("50.00"),
		Paid:      decimal.Zero,
	}, nil)
	payoutRepo.EXPECT().SumOutstandingByAgent(gomock.Any(), 1).Return(decimal.Zero, nil)

	// Agent 2 carries a drifted total.
	drifted := &domain.Agent{ID: 2,
		TotalEarnings:    decimal.RequireFromString("99.00"),
		AvailableBalance: decimal.RequireFromString("50.00"),
		PendingBalance:   decimal.Zero,
	}
	agentRepo.EXPECT().GetByID(gomock.Any(), 2).Return(drifted, nil)
	earningsRepo.EXPECT().SumByAgent(gomock.Any(), 2).Return(&domain.EarningTotals{
		Pending:   decimal.Zero,
		Confirmed: decimal.RequireFromString("50.00"),
		Paid:      decimal.Zero,
	}, nil)
	payoutRepo.EXPECT().SumOutstandingByAgent(gomock.Any(), 2).Return(decimal.Zero, nil)

	mismatches, err := service.ReconcileAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mismatches, 1)
	assert.Equal(t, 2, mismatches[0].AgentID)
	assert.False(t, mismatches[0].Match)
}
