package repository

import (
	"context"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// BetRepository - ставки открытого раунда
type BetRepository interface {
	OpenRound(roundID int64)
	Update(roundID, userID int64, fn func(bets []model.Bet) ([]model.Bet, error)) error
	Bets(roundID, userID int64) []model.Bet
	Close(roundID int64) map[int64][]model.Bet
	Prune(keepFrom int64)
}

// SettlementRepository - итоги последних раундов
type SettlementRepository interface {
	Save(batch model.SettlementBatch)
	Get(roundID, userID int64) (model.Settlement, bool)
	Prune(keepFrom int64)
	Unpaid() []model.UnpaidSettlement
}

// UserRepository - балансы участников
type UserRepository interface {
	GetBalance(ctx context.Context, id int64) (decimal.Decimal, error)
	Debit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error)
}

// HistoryRepository - журнал операций участников
type HistoryRepository interface {
	AddEntry(ctx context.Context, userID int64, record model.HistoryRecord) error
	Trim(ctx context.Context, userID int64, keep int) error
}
