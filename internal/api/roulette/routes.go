package roulette

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register - маршруты рулетки. auth оборачивает маршруты участника
func (h *Handler) Register(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Route("/roulette", func(rr chi.Router) {
		rr.Get("/state", h.State)
		rr.Get("/bet-types", h.BetTypes)
		rr.Get("/ws", h.Stream)

		rr.Group(func(pr chi.Router) {
			pr.Use(auth)
			pr.Post("/bets", h.PlaceBet)
			pr.Get("/bets", h.UserBets)
			pr.Delete("/bets", h.ClearBets)
			pr.Delete("/bets/{betKey}", h.RemoveBet)
			pr.Get("/result", h.Result)
		})
	})

	r.With(auth).Get("/balance", h.Balance)
}
