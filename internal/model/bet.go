package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// BetType - тип ставки
type BetType string

const (
	BetStraight BetType = "straight"
	BetRed      BetType = "red"
	BetBlack    BetType = "black"
	BetOdd      BetType = "odd"
	BetEven     BetType = "even"
	BetLow      BetType = "low"
	BetHigh     BetType = "high"
	BetDozen1   BetType = "dozen1"
	BetDozen2   BetType = "dozen2"
	BetDozen3   BetType = "dozen3"
	BetColumn1  BetType = "column1"
	BetColumn2  BetType = "column2"
	BetColumn3  BetType = "column3"
)

// Bet - открытая ставка участника в раунде
type Bet struct {
	Key    string
	Type   BetType
	Number *int
	Amount decimal.Decimal
}

// BetKey - ключ ставки: straight_N для ставки на номер, иначе имя типа
func BetKey(betType BetType, number *int) string {
	if betType == BetStraight && number != nil {
		return string(BetStraight) + "_" + strconv.Itoa(*number)
	}
	return string(betType)
}

// BetResult - ответ на изменение ставок
type BetResult struct {
	RoundID int64
	Balance decimal.Decimal
	Bets    []Bet
}

// ResolvedBet - ставка после расчета
type ResolvedBet struct {
	Bet
	Won        bool
	Multiplier int
	Payout     decimal.Decimal
	Profit     decimal.Decimal
}

// BetTypeInfo - описание типа ставки для клиента
type BetTypeInfo struct {
	Type             BetType
	Payout           string
	PayoutMultiplier int
	Description      string
}
