package roulette

import "github.com/shopspring/decimal"

type PlaceBetRequest struct {
	RoundID   int64           `json:"roundId" validate:"required,gt=0"`
	BetType   string          `json:"betType" validate:"required"`
	BetNumber *int            `json:"betNumber"`
	Amount    decimal.Decimal `json:"amount"`
}

type HistoryEntry struct {
	RoundID    int64  `json:"roundId"`
	Outcome    int    `json:"outcome"`
	ColorClass string `json:"colorClass"`
}

type StateResponse struct {
	Phase            string         `json:"phase"`
	RoundID          int64          `json:"roundId"`
	PhaseRemainingMs int64          `json:"phaseRemainingMs"`
	PhaseDurationMs  int64          `json:"phaseDurationMs"`
	Outcome          *int           `json:"outcome"`
	ColorClass       *string        `json:"colorClass"`
	History          []HistoryEntry `json:"history"`
}

type Bet struct {
	BetKey    string  `json:"betKey"`
	BetType   string  `json:"betType"`
	BetNumber *int    `json:"betNumber"`
	Amount    float64 `json:"amount"`
}

type BetResponse struct {
	Success bool    `json:"success"`
	RoundID int64   `json:"roundId"`
	Balance float64 `json:"balance"`
	Bets    []Bet   `json:"bets"`
}

type UserBetsResponse struct {
	Success bool  `json:"success"`
	RoundID int64 `json:"roundId"`
	Bets    []Bet `json:"bets"`
}

type ResolvedBet struct {
	Bet
	Won        bool    `json:"won"`
	Multiplier int     `json:"multiplier"`
	Payout     float64 `json:"payout"`
	Profit     float64 `json:"profit"`
}

type SettlementResponse struct {
	Success     bool          `json:"success"`
	RoundID     int64         `json:"roundId"`
	Won         bool          `json:"won"`
	TotalBet    float64       `json:"totalBet"`
	TotalPayout float64       `json:"totalPayout"`
	TotalProfit float64       `json:"totalProfit"`
	Balance     float64       `json:"balance"`
	Paid        bool          `json:"paid"`
	Bets        []ResolvedBet `json:"bets"`
}

type BalanceResponse struct {
	Success bool    `json:"success"`
	Balance float64 `json:"balance"`
}

type BetTypeInfo struct {
	Type             string `json:"type"`
	Payout           string `json:"payout"`
	PayoutMultiplier int    `json:"payoutMultiplier"`
	Description      string `json:"description"`
}

type BetTypesResponse struct {
	Success  bool          `json:"success"`
	BetTypes []BetTypeInfo `json:"betTypes"`
}
