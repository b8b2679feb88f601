package balance

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/domain"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/dto"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/balanceservice"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, agentID int) (*domain.Agent, error)
	Reconcile(ctx context.Context, agentID int) (*balanceservice.ReconcileReport, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetBalance godoc
//
//	@Summary		Get agent balance
//	@Description	Return the agent's materialized balance snapshot and referral counters.
//	@Tags			Balance
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Balance"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Agent not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	agent, err := h.balanceService.GetBalance(r.Context(), agentID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrAgentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		AgentID:          agent.ID,
		TotalEarnings:    agent.TotalEarnings,
		AvailableBalance: agent.AvailableBalance,
		PendingBalance:   agent.PendingBalance,
		TotalReferrals:   agent.TotalReferrals,
		ActiveReferrals:  agent.ActiveReferrals,
	})
}

// Reconcile godoc
//
//	@Summary		Reconcile agent balance
//	@Description	Recompute the agent's balances from the earnings and payout ledgers and compare them with the stored columns. Mismatches are reported, never auto-corrected.
//	@Tags			Balance
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Success		200		{object}	dto.ReconcileReportDTO	"Balances match"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Agent not found"
//	@Failure		409		{object}	dto.ReconcileReportDTO	"Balances diverge"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/balance/reconcile [post]
func (h *BalanceHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	report, err := h.balanceService.Reconcile(r.Context(), agentID)
	if err != nil && !errors.Is(err, balanceservice.ErrIntegrityViolation) {
		if errors.Is(err, balanceservice.ErrAgentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusOK
	if !report.Match {
		status = http.StatusConflict
	}
	utils.RespondWithJSON(w, status, toReportDTO(report))
}

func toReportDTO(report *balanceservice.ReconcileReport) dto.ReconcileReportDTO {
	return dto.ReconcileReportDTO{
		AgentID:           report.AgentID,
		Match:             report.Match,
		TotalExpected:     report.TotalExpected,
		TotalActual:       report.TotalActual,
		PendingExpected:   report.PendingExpected,
		PendingActual:     report.PendingActual,
		AvailableExpected: report.AvailableExpected,
		AvailableActual:   report.AvailableActual,
	}
}
