package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/config"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

const (
	EventEarningConfirmed  = "earning.confirmed"
	EventPayoutApproved    = "payout.approved"
	EventPayoutReview      = "payout.review"
	EventReconcileMismatch = "reconcile.mismatch"
)

// Event is the fire-and-forget message sent to the notifications
// collaborator. Delivery failures never reach back into ledger
// transactions.
type Event struct {
	Type    string          `json:"type"`
	AgentID int             `json:"agent_id"`
	Amount  decimal.Decimal `json:"amount"`
	Summary string          `json:"summary"`
}

type Notifier interface {
	Emit(ctx context.Context, event Event)
}

type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifyAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

// Emit queues the event for delivery and returns immediately. With no
// webhook configured events are logged and dropped.
func (s *Service) Emit(ctx context.Context, event Event) {
	zap.L().Info("notification event",
		zap.String("type", event.Type),
		zap.Int("agent_id", event.AgentID),
		zap.String("amount", event.Amount.String()),
		zap.String("summary", event.Summary),
	)
	if s.url == "" {
		return
	}

	err := s.workerPool.AddTask(ctx, func() error {
		return s.deliver(event)
	})
	if err != nil {
		zap.L().Warn("can't queue notification", zap.Error(err))
	}
}

func (s *Service) deliver(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("can't marshal event: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodPost, s.url+"/api/notifications", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < http.StatusInternalServerError {
				return nil
			}
			lastErr = fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
		} else {
			lastErr = err
		}

		time.Sleep(retryInterval * time.Duration(attempt))
	}
	return fmt.Errorf("notification delivery failed after %d attempts: %w", maxRetries, lastErr)
}

func (s *Service) Close() {
	s.workerPool.Close()
}
