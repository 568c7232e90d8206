package model

import "github.com/shopspring/decimal"

// Entry - запись журнала в том виде, в котором она хранится в jsonb
type Entry struct {
	Game         string          `json:"game"`
	RoundID      int64           `json:"round_id"`
	Bets         []Bet           `json:"bets"`
	Result       int             `json:"result"`
	ResultColor  string          `json:"result_color"`
	Won          bool            `json:"won"`
	BetAmount    decimal.Decimal `json:"bet_amount"`
	TotalPayout  decimal.Decimal `json:"total_payout"`
	Profit       decimal.Decimal `json:"profit"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// Bet - рассчитанная ставка в журнале
type Bet struct {
	BetKey     string          `json:"bet_key"`
	BetType    string          `json:"bet_type"`
	BetNumber  *int            `json:"bet_number"`
	BetAmount  decimal.Decimal `json:"bet_amount"`
	Won        bool            `json:"won"`
	Multiplier int             `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
	Profit     decimal.Decimal `json:"profit"`
}
