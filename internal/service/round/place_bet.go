package round

import (
	"context"
	"errors"
	"log/slog"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/bet_repo"
	"roulette_backend/internal/service/outcome"

	"github.com/shopspring/decimal"
)

// PlaceBet - списывает сумму и добавляет ставку участнику.
// Ставка с тем же ключом суммируется с уже открытой
func (s *serv) PlaceBet(
	ctx context.Context,
	userID, roundID int64,
	betType model.BetType,
	number *int,
	amount decimal.Decimal,
) (res model.BetResult, err error) {
	const op = "round.PlaceBet"
	defer func() { s.logResult(op, userID, roundID, err) }()

	s.gate.RLock()
	defer s.gate.RUnlock()

	if err = s.checkOpen(roundID); err != nil {
		return model.BetResult{}, err
	}

	num, err := outcome.ValidateBet(betType, number)
	if err != nil {
		return model.BetResult{}, err
	}
	if err = validateAmount(amount); err != nil {
		return model.BetResult{}, err
	}

	bet := model.Bet{
		Key:    model.BetKey(betType, num),
		Type:   betType,
		Number: num,
		Amount: amount,
	}

	res.RoundID = roundID
	err = s.betRepo.Update(roundID, userID, func(bets []model.Bet) ([]model.Bet, error) {
		balance, err := s.ledger.Debit(ctx, userID, amount)
		if err != nil {
			return nil, err
		}
		next := bet_repo.MergeBet(bets, bet)
		res.Balance = balance
		res.Bets = append([]model.Bet(nil), next...)
		return next, nil
	})
	if err != nil {
		return model.BetResult{}, err
	}

	s.log.Info("bet placed", sl.Op(op), slog.Int64("user_id", userID),
		slog.Int64("round_id", roundID), slog.String("bet_key", bet.Key), slog.String("amount", amount.String()))
	return res, nil
}

// logResult - отказы клиенту штатные и пишутся в debug
func (s *serv) logResult(op string, userID, roundID int64, err error) {
	metrics.BetsTotal.WithLabelValues(op, metrics.BetResult(err)).Inc()
	if err == nil {
		return
	}

	log := s.log.With(sl.Op(op), slog.Int64("user_id", userID), slog.Int64("round_id", roundID))
	switch {
	case errors.Is(err, model.ErrPhaseClosed),
		errors.Is(err, model.ErrStaleRound),
		errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrInsufficientFunds):
		log.Debug("bet operation rejected", slog.String("reason", model.Reason(err)))
	default:
		log.Error("bet operation failed", sl.Err(err))
	}
}
