package round

import (
	"context"

	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/bet_repo"
)

// ClearBets - снимает все ставки участника одним зачислением.
// Без ставок ничего не меняет и возвращает текущий баланс
func (s *serv) ClearBets(ctx context.Context, userID, roundID int64) (res model.BetResult, err error) {
	const op = "round.ClearBets"
	defer func() { s.logResult(op, userID, roundID, err) }()

	s.gate.RLock()
	defer s.gate.RUnlock()

	if err = s.checkOpen(roundID); err != nil {
		return model.BetResult{}, err
	}

	res.RoundID = roundID
	res.Bets = []model.Bet{}
	err = s.betRepo.Update(roundID, userID, func(bets []model.Bet) ([]model.Bet, error) {
		if len(bets) == 0 {
			balance, err := s.ledger.GetBalance(ctx, userID)
			if err != nil {
				return nil, err
			}
			res.Balance = balance
			return bets, nil
		}

		balance, err := s.ledger.Credit(ctx, userID, bet_repo.Total(bets))
		if err != nil {
			return nil, err
		}
		res.Balance = balance
		return []model.Bet{}, nil
	})
	if err != nil {
		return model.BetResult{}, err
	}
	return res, nil
}
