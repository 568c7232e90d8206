package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement - итог раунда для одного участника
type Settlement struct {
	RoundID     int64
	UserID      int64
	Bets        []ResolvedBet
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal
	TotalProfit decimal.Decimal
	Won         bool
	Balance     decimal.Decimal
	// Paid - false, если выигрыш не удалось зачислить и он ждет ручной сверки
	Paid bool
}

// UnpaidSettlement - выплата, которую не удалось провести через леджер
type UnpaidSettlement struct {
	ID        uuid.UUID
	RoundID   int64
	UserID    int64
	Amount    decimal.Decimal
	Reason    string
	FlaggedAt time.Time
}

// SettlementBatch - результат расчета одного раунда
type SettlementBatch struct {
	RoundID int64
	Outcome int
	Color   Color
	Results map[int64]Settlement
	Unpaid  []UnpaidSettlement
}
