package earnings

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/earningsservice"
)

func NewMock(t *testing.T) (*EarningsHandler, *MockService) {
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

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		agentID      string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful manual bonus",
			agentID: "7",
			body:    `{"type":"bonus","amount":"25.00","description":"Q3 volume bonus"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 7, domain.EarningBonus,
					decimal.RequireFromString("25.00"), "Q3 volume bonus", nil).
					Return(&domain.AgentEarning{
						ID: 3, AgentID: 7, Type: domain.EarningBonus,
						Status: domain.EarningPending, Amount: decimal.RequireFromString("25.00"),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Unknown type rejected by validation",
			agentID:      "7",
			body:         `{"type":"royalty","amount":"25.00"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:    "Agent not found",
			agentID: "7",
			body:    `{"type":"bonus","amount":"25.00"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 7, gomock.Any(), gomock.Any(), gomock.Any(), nil).
					Return(nil, balanceservice.ErrAgentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Non-positive amount",
			agentID: "7",
			body:    `{"type":"bonus","amount":"0"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 7, gomock.Any(), gomock.Any(), gomock.Any(), nil).
					Return(nil, earningsservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid agent id",
			agentID:      "abc",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/agents/"+tt.agentID+"/earnings", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "agentID", tt.agentID)
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestConfirmHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		earningID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful confirm",
			earningID: "3",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 3).Return(&domain.AgentEarning{
					ID: 3, Status: domain.EarningConfirmed,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Cancelled entry",
			earningID: "3",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 3).
					Return(nil, domain.NewTransitionError("earning", 3, "cancelled", "confirmed"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Not found",
			earningID: "3",
			prepareMock: func() {
				service.EXPECT().Confirm(gomock.Any(), 3).Return(nil, earningsservice.ErrEarningNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid earning id",
			earningID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/earnings/"+tt.earningID+"/confirm", nil)
			r = withURLParam(r, "earningID", tt.earningID)
			w := httptest.NewRecorder()
			handler.Confirm(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDisputeHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Dispute(gomock.Any(), 3).Return(&domain.AgentEarning{
		ID: 3, Status: domain.EarningDisputed,
	}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/earnings/3/dispute", nil)
	r = withURLParam(r, "earningID", "3")
	w := httptest.NewRecorder()
	handler.Dispute(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.EarningResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, "disputed", body.Status)
}

func TestListByAgentHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("unfiltered list", func(t *testing.T) {
		service.EXPECT().ListByAgent(gomock.Any(), 7, nil).Return([]domain.AgentEarning{{ID: 1}, {ID: 2}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/agents/7/earnings", nil)
		r = withURLParam(r, "agentID", "7")
		w := httptest.NewRecorder()
		handler.ListByAgent(w, r)
		assert.Equal(t, http.StatusOK, w.Code)

		var body []dto.EarningResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		confirmed := domain.EarningConfirmed
		service.EXPECT().ListByAgent(gomock.Any(), 7, &confirmed).Return([]domain.AgentEarning{{ID: 1}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/agents/7/earnings?status=confirmed", nil)
		r = withURLParam(r, "agentID", "7")
		w := httptest.NewRecorder()
		handler.ListByAgent(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
