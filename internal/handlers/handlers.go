package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Planettalk-Limited/AgentPortalBackend-sub001/docs"
	balancehandlers "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/balance"
	earningshandlers "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/earnings"
	payoutshandlers "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/payouts"
	referralshandlers "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/handlers/referrals"
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/service"
)

type ReferralHandler interface {
	IssueCode(w http.ResponseWriter, r *http.Request)
	ValidateCode(w http.ResponseWriter, r *http.Request)
	RecordUsage(w http.ResponseWriter, r *http.Request)
	ConfirmUsage(w http.ResponseWriter, r *http.Request)
	CancelUsage(w http.ResponseWriter, r *http.Request)
	ListCodes(w http.ResponseWriter, r *http.Request)
}

type EarningsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	ListByAgent(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	FlagForReview(w http.ResponseWriter, r *http.Request)
	ReturnToPending(w http.ResponseWriter, r *http.Request)
	ListByAgent(w http.ResponseWriter, r *http.Request)
	ListByStatus(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ReferralHandler ReferralHandler
	EarningsHandler EarningsHandler
	PayoutHandler   PayoutHandler
	BalanceHandler  BalanceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ReferralHandler: referralshandlers.New(s.ReferralService),
		EarningsHandler: earningshandlers.New(s.EarningsService),
		PayoutHandler:   payoutshandlers.New(s.PayoutService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/agents/{agentID}", func(r chi.Router) {
			r.Route("/referral-codes", func(r chi.Router) {
				r.Post("/", h.ReferralHandler.IssueCode)
				r.Get("/", h.ReferralHandler.ListCodes)
			})
			r.Route("/earnings", func(r chi.Router) {
				r.Post("/", h.EarningsHandler.Create)
				r.Get("/", h.EarningsHandler.ListByAgent)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Post("/", h.PayoutHandler.Request)
				r.Get("/", h.PayoutHandler.ListByAgent)
			})
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/reconcile", h.BalanceHandler.Reconcile)
			})
		})
		r.Route("/referral-codes/{code}", func(r chi.Router) {
			r.Get("/", h.ReferralHandler.ValidateCode)
			r.Post("/usages", h.ReferralHandler.RecordUsage)
		})
		r.Route("/usages/{usageID}", func(r chi.Router) {
			r.Post("/confirm", h.ReferralHandler.ConfirmUsage)
			r.Post("/cancel", h.ReferralHandler.CancelUsage)
		})
		r.Route("/earnings/{earningID}", func(r chi.Router) {
			r.Post("/confirm", h.EarningsHandler.Confirm)
			r.Post("/cancel", h.EarningsHandler.Cancel)
			r.Post("/dispute", h.EarningsHandler.Dispute)
		})
		r.Route("/payouts", func(r chi.Router) {
			r.Get("/", h.PayoutHandler.ListByStatus)
			r.Route("/{payoutID}", func(r chi.Router) {
				r.Post("/approve", h.PayoutHandler.Approve)
				r.Post("/review", h.PayoutHandler.FlagForReview)
				r.Post("/return", h.PayoutHandler.ReturnToPending)
			})
		})
	})

	return r
}
