package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/config"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/notify"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
)

func NewMock(t *testing.T) (*Job, *MockAggregator, *notify.MockNotifier) {
	ctrl := gomock.NewController(t)
	aggregator := NewMockAggregator(ctrl)
	notifier := notify.NewMockNotifier(ctrl)
	job := New(&config.Config{ReconcileCron: "0 3 * * *"}, aggregator, notifier)
	defer ctrl.Finish()
	return job, aggregator, notifier
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatches emit one event per agent", func(t *testing.T) {
		job, aggregator, notifier := NewMock(t)

		aggregator.EXPECT().ReconcileAll(ctx).Return([]balanceservice.ReconcileReport{
			{
				AgentID:       7,
				TotalExpected: decimal.RequireFromString("50"),
				TotalActual:   decimal.RequireFromString("99"),
			},
			{
				AgentID:       8,
				TotalExpected: decimal.RequireFromString("10"),
				TotalActual:   decimal.RequireFromString("7"),
			},
		}, nil)

		var events []notify.Event
		notifier.EXPECT().Emit(ctx, gomock.Any()).Times(2).
			Do(func(_ context.Context, event notify.Event) {
				events = append(events, event)
			})

		job.Sweep(ctx)

		assert.Len(t, events, 2)
		assert.Equal(t, notify.EventReconcileMismatch, events[0].Type)
		assert.Equal(t, 7, events[0].AgentID)
		assert.True(t, events[0].Amount.Equal(decimal.RequireFromString("49")))
		assert.Equal(t, 8, events[1].AgentID)
		assert.True(t, events[1].Amount.Equal(decimal.RequireFromString("-3")))
	})

	t.Run("clean sweep emits nothing", func(t *testing.T) {
		job, aggregator, _ := NewMock(t)
		aggregator.EXPECT().ReconcileAll(ctx).Return(nil, nil)
		job.Sweep(ctx)
	})

	t.Run("sweep failure emits nothing", func(t *testing.T) {
		job, aggregator, _ := NewMock(t)
		aggregator.EXPECT().ReconcileAll(ctx).Return(nil, errors.New("db down"))
		job.Sweep(ctx)
	})
}

func TestStart(t *testing.T) {
	t.Run("valid schedule", func(t *testing.T) {
		job, _, _ := NewMock(t)
		ctx, cancel := context.WithCancel(context.Background())
		err := job.Start(ctx)
		assert.NoError(t, err)
		cancel()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		job := New(&config.Config{ReconcileCron: "not a cron expr"},
			NewMockAggregator(ctrl), notify.NewMockNotifier(ctrl))
		err := job.Start(context.Background())
		assert.Error(t, err)
	})
}
