package settlement

import (
	"roulette_backend/internal/model"
	"roulette_backend/internal/service/outcome"

	"github.com/shopspring/decimal"
)

// ResolveBet - выигрыш и прибыль одной ставки.
// Выплата включает саму ставку: amount * (multiplier + 1)
func ResolveBet(bet model.Bet, result int) model.ResolvedBet {
	multiplier, _ := outcome.Multiplier(bet.Type)
	resolved := model.ResolvedBet{
		Bet:        bet,
		Multiplier: multiplier,
		Payout:     decimal.Zero,
		Profit:     bet.Amount.Neg().Round(2),
	}

	if outcome.IsWinner(bet.Type, bet.Number, result) {
		resolved.Won = true
		resolved.Payout = bet.Amount.Mul(decimal.NewFromInt(int64(multiplier + 1))).Round(2)
		resolved.Profit = resolved.Payout.Sub(bet.Amount).Round(2)
	}
	return resolved
}

// resolveUser - итог участника без баланса
func resolveUser(roundID, userID int64, bets []model.Bet, result int) model.Settlement {
	s := model.Settlement{
		RoundID:     roundID,
		UserID:      userID,
		Bets:        make([]model.ResolvedBet, 0, len(bets)),
		TotalBet:    decimal.Zero,
		TotalPayout: decimal.Zero,
		Paid:        true,
	}

	for _, bet := range bets {
		r := ResolveBet(bet, result)
		s.Bets = append(s.Bets, r)
		s.TotalBet = s.TotalBet.Add(r.Amount)
		s.TotalPayout = s.TotalPayout.Add(r.Payout)
		if r.Won {
			s.Won = true
		}
	}
	s.TotalBet = s.TotalBet.Round(2)
	s.TotalPayout = s.TotalPayout.Round(2)
	s.TotalProfit = s.TotalPayout.Sub(s.TotalBet).Round(2)
	return s
}
