package service

import (
	"context"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// LedgerService - балансы участников и журнал операций
type LedgerService interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	Debit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error)
	RecordHistory(ctx context.Context, userID int64, record model.HistoryRecord) error
}

// SettlementService - расчет ставок закрытого раунда
type SettlementService interface {
	Settle(ctx context.Context, roundID int64, outcome int, bets map[int64][]model.Bet) model.SettlementBatch
}

// RoundService - общий раунд рулетки
type RoundService interface {
	Run(ctx context.Context) error
	PlaceBet(ctx context.Context, userID, roundID int64, betType model.BetType, number *int, amount decimal.Decimal) (model.BetResult, error)
	RemoveBet(ctx context.Context, userID, roundID int64, betKey string) (model.BetResult, error)
	ClearBets(ctx context.Context, userID, roundID int64) (model.BetResult, error)
	GetState() model.RoundSnapshot
	GetUserBets(userID, roundID int64) []model.Bet
	GetUserSettlement(userID, roundID int64) (model.Settlement, bool)
	BetTypes() []model.BetTypeInfo
}
