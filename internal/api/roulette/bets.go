package roulette

import (
	"net/http"

	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/converter"
	"roulette_backend/internal/middleware"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/req"
	"roulette_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

// PlaceBet - новая ставка или добавка к ставке с тем же ключом
func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.PlaceBet"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	betType, number, amount := converter.ToPlaceBet(payload)
	result, err := h.round.PlaceBet(r.Context(), userID, payload.RoundID, betType, number, amount)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBetResponse(result))
}

// RemoveBet - снимает ставку по ключу целиком
func (h *Handler) RemoveBet(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.RemoveBet"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	roundID, err := requiredRoundID(r)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	result, err := h.round.RemoveBet(r.Context(), userID, roundID, chi.URLParam(r, "betKey"))
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBetResponse(result))
}

// ClearBets - снимает все ставки участника
func (h *Handler) ClearBets(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.ClearBets"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	roundID, err := requiredRoundID(r)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	result, err := h.round.ClearBets(r.Context(), userID, roundID)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToBetResponse(result))
}

// UserBets - ставки участника в раунде, по умолчанию в текущем
func (h *Handler) UserBets(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.UserBets"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	roundID, err := roundIDFromQuery(r)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	if roundID == 0 {
		roundID = h.round.GetState().RoundID
	}

	bets := h.round.GetUserBets(userID, roundID)
	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToUserBetsResponse(roundID, bets))
}

// Result - итог участника в раунде, по умолчанию в текущем
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.Result"

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, op, model.ErrUnauthorized)
		return
	}

	roundID, err := roundIDFromQuery(r)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}

	settlement, ok := h.round.GetUserSettlement(userID, roundID)
	if !ok {
		resp.WriteError(w, r, http.StatusNotFound, "Result not found")
		return
	}

	resp.WriteJSONResponse(w, r, http.StatusOK, converter.ToSettlementResponse(settlement))
}

func requiredRoundID(r *http.Request) (int64, error) {
	roundID, err := roundIDFromQuery(r)
	if err != nil {
		return 0, err
	}
	if roundID == 0 {
		return 0, model.NewValidationError("roundId is required")
	}
	return roundID, nil
}
