package referrals

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
	referralservice "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service/referralservice"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/pkg/utils"
)

type Service interface {
	IssueCode(ctx context.Context, agentID int, opts referralservice.IssueOptions) (*domain.ReferralCode, error)
	ValidateCode(ctx context.Context, code string) (*domain.ReferralCode, error)
	RecordUsage(ctx context.Context, code string, referred referralservice.ReferredUser) (*domain.ReferralUsage, error)
	ConfirmUsage(ctx context.Context, usageID int, referenceAmount decimal.Decimal) (*domain.ReferralUsage, error)
	CancelUsage(ctx context.Context, usageID int) (*domain.ReferralUsage, error)
	ListCodes(ctx context.Context, agentID int) ([]domain.ReferralCode, error)
}

type ReferralHandler struct {
	referralService Service
	validate        *validator.Validate
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		validate:        validator.New(),
	}
}

// IssueCode godoc
//
//	@Summary		Issue a referral code
//	@Description	Create a new unique referral code for the agent.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			agentID	path		int						true	"Agent ID"
//	@Param			request	body		dto.IssueCodeRequestDTO	true	"Code options"
//	@Success		201		{object}	dto.CodeResponseDTO		"Issued code"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Agent not found"
//	@Failure		422		{object}	utils.Response			"Validation failed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/agents/{agentID}/referral-codes [post]
func (h *ReferralHandler) IssueCode(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	var req dto.IssueCodeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	code, err := h.referralService.IssueCode(r.Context(), agentID, referralservice.IssueOptions{
		Type:    domain.CodeType(req.Type),
		Prefix:  req.Prefix,
		MaxUses: req.MaxUses,
		TTLDays: req.TTLDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrAgentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, referralservice.ErrAgentNotActive):
			utils.RespondWithError(w, http.StatusLocked, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toCodeDTO(code))
}

// ValidateCode godoc
//
//	@Summary		Validate a referral code
//	@Description	Check whether a code is currently usable; reports the specific reason when it is not.
//	@Tags			Referrals
//	@Produce		json
//	@Param			code	path		string				true	"Referral code"
//	@Success		200		{object}	dto.CodeResponseDTO	"Usable code"
//	@Failure		404		{object}	utils.Response		"Unknown code"
//	@Failure		409		{object}	utils.Response		"Code exhausted"
//	@Failure		410		{object}	utils.Response		"Code expired"
//	@Failure		423		{object}	utils.Response		"Code suspended or inactive"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/referral-codes/{code} [get]
func (h *ReferralHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.referralService.ValidateCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondCodeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCodeDTO(code))
}

// RecordUsage godoc
//
//	@Summary		Record a referral code usage
//	@Description	Register a referred-user event against a code, atomically consuming one usage slot.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			code	path		string					true	"Referral code"
//	@Param			request	body		dto.RecordUsageRequestDTO	true	"Referred user details"
//	@Success		201		{object}	dto.UsageResponseDTO	"Recorded usage"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Unknown code"
//	@Failure		409		{object}	utils.Response			"Code exhausted or conflict"
//	@Failure		410		{object}	utils.Response			"Code expired"
//	@Failure		423		{object}	utils.Response			"Code suspended or inactive"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/referral-codes/{code}/usages [post]
func (h *ReferralHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordUsageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	usage, err := h.referralService.RecordUsage(r.Context(), chi.URLParam(r, "code"), referralservice.ReferredUser{
		UserID: req.ReferredUserID,
		Name:   req.ReferredName,
		Phone:  req.ReferredPhone,
	})
	if err != nil {
		respondCodeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toUsageDTO(usage))
}

// ConfirmUsage godoc
//
//	@Summary		Confirm a referral usage
//	@Description	Settle a pending usage against the billed reference amount, creating the commission earning. Idempotent.
//	@Tags			Referrals
//	@Accept			json
//	@Produce		json
//	@Param			usageID	path		int							true	"Usage ID"
//	@Param			request	body		dto.ConfirmUsageRequestDTO	true	"Reference amount"
//	@Success		200		{object}	dto.UsageResponseDTO		"Confirmed usage"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		404		{object}	utils.Response				"Usage not found"
//	@Failure		409		{object}	utils.Response				"Invalid transition"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/usages/{usageID}/confirm [post]
func (h *ReferralHandler) ConfirmUsage(w http.ResponseWriter, r *http.Request) {
	usageID, err := strconv.Atoi(chi.URLParam(r, "usageID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid usage id")
		return
	}

	var req dto.ConfirmUsageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	usage, err := h.referralService.ConfirmUsage(r.Context(), usageID, req.ReferenceAmount)
	if err != nil {
		respondUsageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUsageDTO(usage))
}

// CancelUsage godoc
//
//	@Summary		Cancel a referral usage
//	@Description	Terminate a pending usage without creating an earning.
//	@Tags			Referrals
//	@Produce		json
//	@Param			usageID	path		int						true	"Usage ID"
//	@Success		200		{object}	dto.UsageResponseDTO	"Cancelled usage"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		404		{object}	utils.Response			"Usage not found"
//	@Failure		409		{object}	utils.Response			"Invalid transition"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/usages/{usageID}/cancel [post]
func (h *ReferralHandler) CancelUsage(w http.ResponseWriter, r *http.Request) {
	usageID, err := strconv.Atoi(chi.URLParam(r, "usageID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid usage id")
		return
	}

	usage, err := h.referralService.CancelUsage(r.Context(), usageID)
	if err != nil {
		respondUsageError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toUsageDTO(usage))
}

// ListCodes godoc
//
//	@Summary		List agent referral codes
//	@Tags			Referrals
//	@Produce		json
//	@Param			agentID	path		int					true	"Agent ID"
//	@Success		200		{array}		dto.CodeResponseDTO	"Codes"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/agents/{agentID}/referral-codes [get]
func (h *ReferralHandler) ListCodes(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid agent id")
		return
	}

	list, err := h.referralService.ListCodes(r.Context(), agentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.CodeResponseDTO, len(list))
	for i := range list {
		response[i] = toCodeDTO(&list[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondCodeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, referralservice.ErrCodeNotFound), errors.Is(err, referralservice.ErrAgentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, referralservice.ErrCodeExpired):
		utils.RespondWithError(w, http.StatusGone, err.Error())
	case errors.Is(err, referralservice.ErrCodeExhausted):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, referralservice.ErrCodeSuspended), errors.Is(err, referralservice.ErrCodeInactive),
		errors.Is(err, referralservice.ErrAgentNotActive):
		utils.RespondWithError(w, http.StatusLocked, err.Error())
	case errors.Is(err, pg.ErrTxConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func respondUsageError(w http.ResponseWriter, err error) {
	var transitionErr *domain.TransitionError
	switch {
	case errors.Is(err, referralservice.ErrUsageNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, referralservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &transitionErr):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pg.ErrTxConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toCodeDTO(code *domain.ReferralCode) dto.CodeResponseDTO {
	return dto.CodeResponseDTO{
		ID:          code.ID,
		AgentID:     code.AgentID,
		Code:        code.Code,
		Status:      string(code.Status),
		Type:        string(code.Type),
		MaxUses:     code.MaxUses,
		CurrentUses: code.CurrentUses,
		ExpiresAt:   code.ExpiresAt,
		CreatedAt:   code.CreatedAt,
	}
}

func toUsageDTO(usage *domain.ReferralUsage) dto.UsageResponseDTO {
	return dto.UsageResponseDTO{
		ID:               usage.ID,
		Reference:        usage.Reference.String(),
		CodeID:           usage.CodeID,
		AgentID:          usage.AgentID,
		Status:           string(usage.Status),
		CommissionRate:   usage.CommissionRate,
		CommissionEarned: usage.CommissionEarned,
		CreatedAt:        usage.CreatedAt,
		ConfirmedAt:      usage.ConfirmedAt,
	}
}
