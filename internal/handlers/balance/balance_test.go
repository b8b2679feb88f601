package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/dto"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		agentID      string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name:    "Successful retrieval",
			agentID: "7",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 7).Return(&domain.Agent{
					ID:               7,
					TotalEarnings:    decimal.RequireFromString("500.50"),
					AvailableBalance: decimal.RequireFromString("320.25"),
					PendingBalance:   decimal.RequireFromString("180.25"),
					TotalReferrals:   12,
					ActiveReferrals:  9,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				AgentID:          7,
				TotalEarnings:    decimal.RequireFromString("500.50"),
				AvailableBalance: decimal.RequireFromString("320.25"),
				PendingBalance:   decimal.RequireFromString("180.25"),
				TotalReferrals:   12,
				ActiveReferrals:  9,
			},
		},
		{
			name:    "Agent not found",
			agentID: "7",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 7).Return(nil, balanceservice.ErrAgentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid agent id",
			agentID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Internal server error",
			agentID: "7",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 7).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/agents/"+tt.agentID+"/balance", nil)
			r = withURLParam(r, "agentID", tt.agentID)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, tt.expectedBody.TotalEarnings.Equal(body.TotalEarnings))
				assert.True(t, tt.expectedBody.AvailableBalance.Equal(body.AvailableBalance))
				assert.True(t, tt.expectedBody.PendingBalance.Equal(body.PendingBalance))
				assert.Equal(t, tt.expectedBody.TotalReferrals, body.TotalReferrals)
			}
		})
	}
}

func TestReconcileHandler(t *testing.T) {
	handler, service := NewMock(t)

	matched := &balanceservice.ReconcileReport{
		AgentID: 7, Match: true,
		TotalExpected: decimal.RequireFromString("100.00"), TotalActual: decimal.RequireFromString("100.00"),
	}
	drifted := &balanceservice.ReconcileReport{
		AgentID: 7, Match: false,
		TotalExpected: decimal.RequireFromString("100.00"), TotalActual: decimal.RequireFromString("99.00"),
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Balances match",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 7).Return(matched, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Mismatch reported as conflict",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 7).Return(drifted, balanceservice.ErrIntegrityViolation)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Agent not found",
			prepareMock: func() {
				service.EXPECT().Reconcile(gomock.Any(), 7).Return(nil, balanceservice.ErrAgentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/agents/7/balance/reconcile", nil)
			r = withURLParam(r, "agentID", "7")
			w := httptest.NewRecorder()
			handler.Reconcile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusNotFound {
				var body dto.ReconcileReportDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 7, body.AgentID)
			}
		})
	}
}
