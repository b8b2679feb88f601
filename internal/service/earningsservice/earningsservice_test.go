package earningsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
)

func NewMock(t *testing.T) (*Service, *MockEarningsRepo, *MockAggregator, *notify.MockNotifier, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockEarningsRepo(ctrl)
	aggregator := NewMockAggregator(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, aggregator, txManager, notifier)
	defer ctrl.Finish()
	return service, repo, aggregator, notifier, txManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestCreate(t *testing.T) {
	service, repo, aggregator, _, txManager := NewMock(t)
	passthroughTx(txManager)

	usageID := 11
	amount := decimal.RequireFromString("15.00")

	tests := []struct {
		name          string
		typ           domain.EarningType
		amount        decimal.Decimal
		sourceUsageID *int
		prepareMock   func()
		expectedID    int
		expectedError error
	}{
		{
			name:   "creates pending entry and credits pending balance",
			typ:    domain.EarningBonus,
			amount: amount,
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, earning *domain.AgentEarning) (*domain.AgentEarning, error) {
						assert.Equal(t, domain.EarningPending, earning.Status)
						earning.ID = 3
						return earning, nil
					})
				aggregator.EXPECT().ApplyEarningCreated(gomock.Any(), 1, amount).Return(&domain.Agent{ID: 1}, nil)
			},
			expectedID: 3,
		},
		{
			name:          "existing entry for the usage is returned unchanged",
			typ:           domain.EarningReferralCommission,
			amount:        amount,
			sourceUsageID: &usageID,
			prepareMock: func() {
				repo.EXPECT().GetByUsageID(gomock.Any(), usageID).Return(&domain.AgentEarning{ID: 7, AgentID: 1, Amount: amount}, nil)
			},
			expectedID: 7,
		},
		{
			name:          "zero amount",
			typ:           domain.EarningBonus,
			amount:        decimal.Zero,
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "unknown type",
			typ:           domain.EarningType("royalty"),
			amount:        amount,
			prepareMock:   func() {},
			expectedError: ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			earning, err := service.Create(context.Background(), 1, tt.typ, tt.amount, "test", tt.sourceUsageID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, earning.ID)
		})
	}
}

func TestConfirm(t *testing.T) {
	service, repo, aggregator, notifier, txManager := NewMock(t)
	passthroughTx(txManager)

	amount := decimal.RequireFromString("15.00")

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "pending entry moves to confirmed and emits event",
			prepareMock: func() {
				repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
					ID: 3, AgentID: 1, Status: domain.EarningPending, Amount: amount,
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, earning *domain.AgentEarning) error {
						assert.Equal(t, domain.EarningConfirmed, earning.Status)
						assert.NotNil(t, earning.ConfirmedAt)
						return nil
					})
				aggregator.EXPECT().ApplyEarningConfirmed(gomock.Any(), 1, amount).Return(&domain.Agent{ID: 1}, nil)
				notifier.EXPECT().Emit(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "confirming a confirmed entry is a no-op",
			prepareMock: func() {
				repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
					ID: 3, AgentID: 1, Status: domain.EarningConfirmed, Amount: amount,
				}, nil)
				notifier.EXPECT().Emit(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "paid entry cannot be confirmed",
			prepareMock: func() {
				repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
					ID: 3, AgentID: 1, Status: domain.EarningPaid, Amount: amount,
				}, nil)
			},
			expectedError: &domain.TransitionError{},
		},
		{
			name: "unknown entry",
			prepareMock: func() {
				repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrEarningNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			earning, err := service.Confirm(context.Background(), 3)
			if tt.expectedError != nil {
				var transitionErr *domain.TransitionError
				if errors.As(tt.expectedError, &transitionErr) {
					assert.ErrorAs(t, err, &transitionErr)
				} else {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.EarningConfirmed, earning.Status)
		})
	}
}

func TestMarkPaid(t *testing.T) {
	service, repo, _, _, txManager := NewMock(t)
	passthroughTx(txManager)

	amount := decimal.RequireFromString("15.00")

	t.Run("confirmed entry becomes paid without balance delta", func(t *testing.T) {
		repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
			ID: 3, AgentID: 1, Status: domain.EarningConfirmed, Amount: amount,
		}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, earning *domain.AgentEarning) error {
				assert.Equal(t, domain.EarningPaid, earning.Status)
				assert.NotNil(t, earning.PaidAt)
				return nil
			})

		earning, err := service.MarkPaid(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.EarningPaid, earning.Status)
	})

	t.Run("marking a paid entry again is a no-op", func(t *testing.T) {
		repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
			ID: 3, AgentID: 1, Status: domain.EarningPaid, Amount: amount,
		}, nil)

		earning, err := service.MarkPaid(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.EarningPaid, earning.Status)
	})

	t.Run("pending entry cannot be paid", func(t *testing.T) {
		repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
			ID: 3, AgentID: 1, Status: domain.EarningPending, Amount: amount,
		}, nil)

		_, err := service.MarkPaid(context.Background(), 3)
		var transitionErr *domain.TransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestReverse(t *testing.T) {
	service, repo, aggregator, _, txManager := NewMock(t)
	passthroughTx(txManager)

	amount := decimal.RequireFromString("25.00")

	tests := []struct {
		name           string
		from           domain.EarningStatus
		op             func(context.Context, int) (*domain.AgentEarning, error)
		expectedBucket balanceservice.Bucket
		expectedStatus domain.EarningStatus
		transitionErr  bool
	}{
		{
			name:           "cancel pending entry deducts from pending bucket",
			from:           domain.EarningPending,
			op:             service.Cancel,
			expectedBucket: balanceservice.BucketPending,
			expectedStatus: domain.EarningCancelled,
		},
		{
			name:           "dispute confirmed entry deducts from available bucket",
			from:           domain.EarningConfirmed,
			op:             service.Dispute,
			expectedBucket: balanceservice.BucketAvailable,
			expectedStatus: domain.EarningDisputed,
		},
		{
			name:           "cancel confirmed entry deducts from available bucket",
			from:           domain.EarningConfirmed,
			op:             service.Cancel,
			expectedBucket: balanceservice.BucketAvailable,
			expectedStatus: domain.EarningCancelled,
		},
		{
			name:          "dispute pending entry is rejected",
			from:          domain.EarningPending,
			op:            service.Dispute,
			transitionErr: true,
		},
		{
			name:          "cancel paid entry is rejected",
			from:          domain.EarningPaid,
			op:            service.Cancel,
			transitionErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetByIDForUpdate(gomock.Any(), 3).Return(&domain.AgentEarning{
				ID: 3, AgentID: 1, Status: tt.from, Amount: amount,
			}, nil)
			if !tt.transitionErr {
				repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
				aggregator.EXPECT().ApplyEarningReversed(gomock.Any(), 1, amount, tt.expectedBucket).Return(&domain.Agent{ID: 1}, nil)
			}

			earning, err := tt.op(context.Background(), 3)
			if tt.transitionErr {
				var transitionErr *domain.TransitionError
				assert.ErrorAs(t, err, &transitionErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, earning.Status)
		})
	}
}

func TestListByAgent(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	status := domain.EarningConfirmed
	repo.EXPECT().ListByAgent(gomock.Any(), 1, &status).Return([]domain.AgentEarning{{ID: 1}, {ID: 2}}, nil)

	list, err := service.ListByAgent(context.Background(), 1, &status)
	assert.NoError(t, err)
	assert.Len(t, list, 2)

	repo.EXPECT().ListByAgent(gomock.Any(), 1, nil).Return(nil, errors.New("db error"))
	_, err = service.ListByAgent(context.Background(), 1, nil)
	assert.Error(t, err)
}
