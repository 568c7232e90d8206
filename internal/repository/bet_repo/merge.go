package bet_repo

import (
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// MergeBet - суммирует ставку с уже открытой по тому же ключу или добавляет новую
func MergeBet(bets []model.Bet, bet model.Bet) []model.Bet {
	for i := range bets {
		if bets[i].Key == bet.Key {
			bets[i].Amount = bets[i].Amount.Add(bet.Amount)
			return bets
		}
	}
	return append(bets, bet)
}

// RemoveBet - удаляет ставку по ключу целиком
func RemoveBet(bets []model.Bet, key string) ([]model.Bet, model.Bet, bool) {
	for i := range bets {
		if bets[i].Key == key {
			removed := bets[i]
			return append(bets[:i], bets[i+1:]...), removed, true
		}
	}
	return bets, model.Bet{}, false
}

// Total - сумма ставок
func Total(bets []model.Bet) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bets {
		total = total.Add(b.Amount)
	}
	return total
}
