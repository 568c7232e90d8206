package roulette

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roulette_backend/internal/converter"
	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service"
	"roulette_backend/pkg/resp"
)

// StateSource - подписка на состояние раунда
type StateSource interface {
	Subscribe() (model.RoundState, <-chan model.RoundState, func())
}

type HandlerDeps struct {
	Round  service.RoundService
	Ledger service.LedgerService
	States StateSource
	Log    *slog.Logger
	// Shutdown - отмена закрывает открытые WebSocket потоки
	Shutdown context.Context
}

type Handler struct {
	round    service.RoundService
	ledger   service.LedgerService
	states   StateSource
	log      *slog.Logger
	shutdown context.Context
}

func NewHandler(deps HandlerDeps) *Handler {
	shutdown := deps.Shutdown
	if shutdown == nil {
		shutdown = context.Background()
	}

	return &Handler{
		round:    deps.Round,
		ledger:   deps.Ledger,
		states:   deps.States,
		log:      deps.Log,
		shutdown: shutdown,
	}
}

// State - текущий снимок раунда
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToStateResponse(h.round.GetState()))
}

// BetTypes - таблица типов ставок и выплат
func (h *Handler) BetTypes(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBetTypesResponse(h.round.BetTypes()))
}

// Balance - баланс участника у леджера
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.Balance"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBalanceResponse(balance))
}

// writeError - статус по виду ошибки, текст для клиента из model.Reason
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrPhaseClosed), errors.Is(err, model.ErrStaleRound):
		status = http.StatusConflict
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		h.log.Error("request failed", sl.Op(op), sl.Err(err))
	}

	resp.WriteError(w, r, status, model.Reason(err))
}

// roundIDFromQuery - roundId из строки запроса, 0 если не передан
func roundIDFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("roundId")
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, model.NewValidationError("Invalid roundId")
	}
	return id, nil
}
