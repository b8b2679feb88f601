package earnings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/dto"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/earningsservice"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, agentID int, typ domain.EarningType, amount decimal.Decimal, description string, sourceUsageID *int) (*domain.AgentEarning, error)
	Confirm(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	Cancel(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	Dispute(ctx context.Context, earningID int) (*domain.AgentEarning, error)
	ListByAgent(ctx context.Context, agentID int, status *domain.EarningStatus) ([]domain.AgentEarning, error)
}

type EarningsHandler struct {
	earningsService Service
	validate        *validator.Validate
}

func New(earningsService Service) *EarningsHandler {
	return &EarningsHandler{
		earningsService: earningsService,
		validate:        validator.New(),
	}
}

// Create godoc
//
//	@Summary		Create a manual earning
//	@Description	Record a bonus, penalty or adjustment entry for the agent. Commission earnings are created by usage confirmation, not here.
//	@Tags			Earnings
//	@Accept			json
//	@Produce		json
//	@Param			agentID	path		int							true	"Agent ID"
//	@Param			request	body		dto.CreateEarningRequestDTO	true	"Earning details"
//	@Success		201		{object}	dto.EarningResponseDTO		"Created earning"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Agent not found"
//	@Failure		422		{object}	utils.Response				"Validation failed"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/agents/{agentID}/earnings [post]
func (h *EarningsHandler) Create(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	var req dto.CreateEarningRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	earning, err := h.earningsService.Create(r.Context(), agentID, domain.EarningType(req.Type), req.Amount, req.Description, nil)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrAgentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, earningsservice.ErrInvalidAmount), errors.Is(err, earningsservice.ErrInvalidType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pg.ErrTxConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEarningDTO(earning))
}

// Confirm godoc
//
//	@Summary		Confirm an earning
//	@Description	Move a pending earning to confirmed, releasing its amount into the available balance. Idempotent.
//	@Tags			Earnings
//	@Produce		json
//	@Param			earningID	path		int						true	"Earning ID"
//	@Success		200			{object}	dto.EarningResponseDTO	"Confirmed earning"
//	@Failure		400			{object}	utils.Response			"Invalid request"
//	@Failure		404			{object}	utils.Response			"Earning not found"
//	@Failure		409			{object}	utils.Response			"Invalid transition"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/earnings/{earningID}/confirm [post]
func (h *EarningsHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.earningsService.Confirm)
}

// Cancel godoc
//
//	@Summary		Cancel an earning
//	@Description	Reverse a pending or confirmed earning, deducting it from the appropriate balance bucket.
//	@Tags			Earnings
//	@Produce		json
//	@Param			earningID	path		int						true	"Earning ID"
//	@Success		200			{object}	dto.EarningResponseDTO	"Cancelled earning"
//	@Failure		400			{object}	utils.Response			"Invalid request"
//	@Failure		404			{object}	utils.Response			"Earning not found"
//	@Failure		409			{object}	utils.Response			"Invalid transition"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/earnings/{earningID}/cancel [post]
func (h *EarningsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.earningsService.Cancel)
}

// Dispute godoc
//
//	@Summary		Dispute a confirmed earning
//	@Description	Mark a confirmed earning as disputed and withdraw it from the available balance.
//	@Tags			Earnings
//	@Produce		json
//	@Param			earningID	path		int						true	"Earning ID"
//	@Success		200			{object}	dto.EarningResponseDTO	"Disputed earning"
//	@Failure		400			{object}	utils.Response			"Invalid request"
//	@Failure		404			{object}	utils.Response			"Earning not found"
//	@Failure		409			{object}	utils.Response			"Invalid transition"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/earnings/{earningID}/dispute [post]
func (h *EarningsHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.earningsService.Dispute)
}

func (h *EarningsHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, int) (*domain.AgentEarning, error)) {
	earningID, err := strconv.Atoi(chi.URLParam(r, "earningID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid earning id")
		return
	}

	earning, err := op(r.Context(), earningID)
	if err != nil {
		var transitionErr *domain.TransitionError
		switch {
		case errors.Is(err, earningsservice.ErrEarningNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &transitionErr):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, pg.ErrTxConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEarningDTO(earning))
}

// ListByAgent godoc
//
//	@Summary		List agent earnings
//	@Description	Return the agent's earnings ledger, optionally filtered by status.
//	@Tags			Earnings
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Param			status	query		string					false	"Status filter"	Enums(pending, confirmed, paid, cancelled, disputed)
//	@Success		200		{array}		dto.EarningResponseDTO	"Earnings"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/earnings [get]
func (h *EarningsHandler) ListByAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	var status *domain.EarningStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.EarningStatus(raw)
		status = &s
	}

	list, err := h.earningsService.ListByAgent(r.Context(), agentID, status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.EarningResponseDTO, len(list))
	for i := range list {
		response[i] = toEarningDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toEarningDTO(earning *domain.AgentEarning) dto.EarningResponseDTO {
	return dto.EarningResponseDTO{
		ID:          earning.ID,
		AgentID:     earning.AgentID,
		UsageID:     earning.UsageID,
		Type:        string(earning.Type),
		Status:      string(earning.Status),
		Amount:      earning.Amount,
		Description: earning.Description,
		EarnedAt:    earning.EarnedAt,
		ConfirmedAt: earning.ConfirmedAt,
		PaidAt:      earning.PaidAt,
	}
}
