package round

import (
	"context"

	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/bet_repo"
)

// RemoveBet - снимает ставку по ключу целиком и возвращает сумму на баланс
func (s *serv) RemoveBet(ctx context.Context, userID, roundID int64, betKey string) (res model.BetResult, err error) {
	const op = "round.RemoveBet"
	defer func() { s.logResult(op, userID, roundID, err) }()

	s.gate.RLock()
	defer s.gate.RUnlock()

	if err = s.checkOpen(roundID); err != nil {
		return model.BetResult{}, err
	}

	res.RoundID = roundID
	err = s.betRepo.Update(roundID, userID, func(bets []model.Bet) ([]model.Bet, error) {
		next, removed, ok := bet_repo.RemoveBet(bets, betKey)
		if !ok {
			return nil, model.NewValidationError("Bet not found")
		}
		balance, err := s.ledger.Credit(ctx, userID, removed.Amount)
		if err != nil {
			return nil, err
		}
		res.Balance = balance
		res.Bets = append([]model.Bet{}, next...)
		return next, nil
	})
	if err != nil {
		return model.BetResult{}, err
	}
	return res, nil
}
