package payouts

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
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/payoutservice"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, agentID int, amount decimal.Decimal, method domain.PayoutMethod) (*domain.Payout, error)
	Approve(ctx context.Context, payoutID, staffID int) (*domain.Payout, error)
	FlagForReview(ctx context.Context, payoutID int, message string) (*domain.Payout, error)
	ReturnToPending(ctx context.Context, payoutID int) (*domain.Payout, error)
	ListByAgent(ctx context.Context, agentID int) ([]domain.Payout, error)
	ListByStatus(ctx context.Context, status domain.PayoutStatus) ([]domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
	validate      *validator.Validate
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
		validate:      validator.New(),
	}
}

// Request godoc
//
//	@Summary		Request a payout
//	@Description	Reserve the requested amount from the agent's available balance and open a pending payout.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout details"
//	@Success		201		{object}	dto.PayoutResponseDTO	"Created payout"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Agent not found"
//	@Failure		422		{object}	utils.Response			"Validation failed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/payouts [post]
func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	payout, err := h.payoutService.Request(r.Context(), agentID, req.Amount, domain.PayoutMethod(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrAgentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payoutservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, payoutservice.ErrInvalidAmount), errors.Is(err, payoutservice.ErrInvalidMethod):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pg.ErrTxConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(payout))
}

// Approve godoc
//
//	@Summary		Approve a payout
//	@Description	Approve a pending or reviewed payout, settling the oldest confirmed earnings it covers.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			payoutID	path		int							true	"Payout ID"
//	@Param			request		body		dto.ApprovePayoutRequestDTO	true	"Approving staff member"
//	@Success		200			{object}	dto.PayoutResponseDTO		"Approved payout"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		402			{object}	utils.Response				"Insufficient balance"
//	@Failure		404			{object}	utils.Response				"Payout not found"
//	@Failure		409			{object}	utils.Response				"Invalid transition"
//	@Failure		422			{object}	utils.Response				"Validation failed"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/payouts/{payoutID}/approve [post]
func (h *PayoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	payoutID, err := strconv.Atoi(chi.URLParam(r, "payoutID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}

	var req dto.ApprovePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	payout, err := h.payoutService.Approve(r.Context(), payoutID, req.StaffID)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// FlagForReview godoc
//
//	@Summary		Flag a payout for review
//	@Description	Move a pending or approved payout into the review state with an explanatory message.
//	@Tags			Payouts
//	@Accept			json
//	@Produce		json
//	@Param			payoutID	path		int							true	"Payout ID"
//	@Param			request		body		dto.ReviewPayoutRequestDTO	true	"Review reason"
//	@Success		200			{object}	dto.PayoutResponseDTO		"Payout under review"
//	@Failure		400			{object}	utils.Response				"Invalid request"
//	@Failure		404			{object}	utils.Response				"Payout not found"
//	@Failure		409			{object}	utils.Response				"Invalid transition"
//	@Failure		422			{object}	utils.Response				"Validation failed"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/payouts/{payoutID}/review [post]
func (h *PayoutHandler) FlagForReview(w http.ResponseWriter, r *http.Request) {
	payoutID, err := strconv.Atoi(chi.URLParam(r, "payoutID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}

	var req dto.ReviewPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	payout, err := h.payoutService.FlagForReview(r.Context(), payoutID, req.Message)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// ReturnToPending godoc
//
//	@Summary		Return a reviewed payout to pending
//	@Description	Send a payout back to the pending queue after review.
//	@Tags			Payouts
//	@Produce		json
//	@Param			payoutID	path		int						true	"Payout ID"
//	@Success		200			{object}	dto.PayoutResponseDTO	"Pending payout"
//	@Failure		400			{object}	utils.Response			"Invalid request"
//	@Failure		404			{object}	utils.Response			"Payout not found"
//	@Failure		409			{object}	utils.Response			"Invalid transition"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/payouts/{payoutID}/return [post]
func (h *PayoutHandler) ReturnToPending(w http.ResponseWriter, r *http.Request) {
	payoutID, err := strconv.Atoi(chi.URLParam(r, "payoutID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout id")
		return
	}

	payout, err := h.payoutService.ReturnToPending(r.Context(), payoutID)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPayoutDTO(payout))
}

// ListByAgent godoc
//
//	@Summary		List agent payouts
//	@Tags			Payouts
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Success		200		{array}		dto.PayoutResponseDTO	"Payouts"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/payouts [get]
func (h *PayoutHandler) ListByAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	list, err := h.payoutService.ListByAgent(r.Context(), agentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondPayoutList(w, list)
}

// ListByStatus godoc
//
//	@Summary		List payouts by status
//	@Description	Back-office queue view over payouts in a given state.
//	@Tags			Payouts
//	@Produce		json
//	@Param			status	query		string					true	"Payout status"	Enums(pending, approved, review)
//	@Success		200		{array}		dto.PayoutResponseDTO	"Payouts"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/payouts [get]
func (h *PayoutHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.PayoutStatus(r.URL.Query().Get("status"))
	if status != domain.PayoutPending && status != domain.PayoutApproved && status != domain.PayoutReview {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payout status")
		return
	}

	list, err := h.payoutService.ListByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondPayoutList(w, list)
}

func respondPayoutError(w http.ResponseWriter, err error) {
	var transitionErr *domain.TransitionError
	switch {
	case errors.Is(err, payoutservice.ErrPayoutNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, payoutservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.As(err, &transitionErr):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pg.ErrTxConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondPayoutList(w http.ResponseWriter, list []domain.Payout) {
	response := make([]dto.PayoutResponseDTO, len(list))
	for i := range list {
		response[i] = toPayoutDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toPayoutDTO(payout *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:            payout.ID,
		Reference:     payout.Reference.String(),
		AgentID:       payout.AgentID,
		Status:        string(payout.Status),
		Method:        string(payout.Method),
		Amount:        payout.Amount,
		Fees:          payout.Fees,
		NetAmount:     payout.NetAmount,
		ReviewMessage: payout.ReviewMessage,
		RequestedAt:   payout.RequestedAt,
		ApprovedAt:    payout.ApprovedAt,
	}
}
