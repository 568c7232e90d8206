package outcome

import (
	"fmt"
	"math/rand/v2"

	"roulette_backend/internal/model"
)

const (
	// Количество ячеек колеса: 0..36
	Pockets = 37
	// Максимальный номер
	MaxNumber = Pockets - 1
)

// Source - источник случайных чисел, IntN возвращает значение в [0, n)
type Source interface {
	IntN(n int) int
}

type mathSource struct{}

func (mathSource) IntN(n int) int {
	return rand.IntN(n)
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true, 14: true, 16: true, 18: true,
	19: true, 21: true, 23: true, 25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type betTypeConfig struct {
	multiplier  int
	description string
	wins        func(number *int, n int) bool
}

var betTable = map[model.BetType]betTypeConfig{
	model.BetStraight: {35, "Single number", func(number *int, n int) bool { return number != nil && *number == n }},
	model.BetRed:      {1, "Red", func(_ *int, n int) bool { return redNumbers[n] }},
	model.BetBlack:    {1, "Black", func(_ *int, n int) bool { return n > 0 && !redNumbers[n] }},
	model.BetOdd:      {1, "Odd", func(_ *int, n int) bool { return n > 0 && n%2 == 1 }},
	model.BetEven:     {1, "Even", func(_ *int, n int) bool { return n > 0 && n%2 == 0 }},
	model.BetLow:      {1, "1-18", func(_ *int, n int) bool { return n >= 1 && n <= 18 }},
	model.BetHigh:     {1, "19-36", func(_ *int, n int) bool { return n >= 19 && n <= 36 }},
	model.BetDozen1:   {2, "1st Dozen (1-12)", func(_ *int, n int) bool { return dozen(n) == 1 }},
	model.BetDozen2:   {2, "2nd Dozen (13-24)", func(_ *int, n int) bool { return dozen(n) == 2 }},
	model.BetDozen3:   {2, "3rd Dozen (25-36)", func(_ *int, n int) bool { return dozen(n) == 3 }},
	model.BetColumn1:  {2, "Column 1", func(_ *int, n int) bool { return column(n) == 1 }},
	model.BetColumn2:  {2, "Column 2", func(_ *int, n int) bool { return column(n) == 2 }},
	model.BetColumn3:  {2, "Column 3", func(_ *int, n int) bool { return column(n) == 3 }},
}

// Порядок типов для клиента
var betOrder = []model.BetType{
	model.BetStraight, model.BetRed, model.BetBlack, model.BetOdd, model.BetEven,
	model.BetLow, model.BetHigh, model.BetDozen1, model.BetDozen2, model.BetDozen3,
	model.BetColumn1, model.BetColumn2, model.BetColumn3,
}

// Resolver - определяет выигрышный номер и выигрыш ставок. Состояния не хранит
type Resolver struct {
	src Source
}

// NewResolver - src может быть nil, тогда используется math/rand/v2
func NewResolver(src Source) *Resolver {
	if src == nil {
		src = mathSource{}
	}
	return &Resolver{src: src}
}

// Resolve - равновероятный выбор номера 0..36
func (r *Resolver) Resolve() int {
	return r.src.IntN(Pockets)
}

// ColorOf - цвет номера: 0 зеленый, далее красный или черный
func ColorOf(n int) model.Color {
	if n == 0 {
		return model.ColorGreen
	}
	if redNumbers[n] {
		return model.ColorRed
	}
	return model.ColorBlack
}

// IsWinner - выиграла ли ставка при выпавшем номере.
// Неизвестный тип всегда проигрывает
func IsWinner(betType model.BetType, number *int, outcome int) bool {
	cfg, ok := betTable[betType]
	if !ok || outcome < 0 || outcome > MaxNumber {
		return false
	}
	return cfg.wins(number, outcome)
}

// Multiplier - коэффициент выплаты (без учета возврата ставки)
func Multiplier(betType model.BetType) (int, bool) {
	cfg, ok := betTable[betType]
	if !ok {
		return 0, false
	}
	return cfg.multiplier, true
}

// ValidateBet - проверяет тип ставки и номер.
// Возвращает номер, который нужно сохранить: для всех типов кроме straight он отбрасывается
func ValidateBet(betType model.BetType, number *int) (*int, error) {
	if _, ok := betTable[betType]; !ok {
		return nil, model.NewValidationError(fmt.Sprintf("Invalid bet type: %s", betType))
	}
	if betType != model.BetStraight {
		return nil, nil
	}
	if number == nil || *number < 0 || *number > MaxNumber {
		return nil, model.NewValidationError("Number must be 0-36")
	}
	n := *number
	return &n, nil
}

// BetTypes - таблица ставок для клиента
func BetTypes() []model.BetTypeInfo {
	res := make([]model.BetTypeInfo, 0, len(betOrder))
	for _, t := range betOrder {
		cfg := betTable[t]
		res = append(res, model.BetTypeInfo{
			Type:             t,
			Payout:           fmt.Sprintf("%d:1", cfg.multiplier),
			PayoutMultiplier: cfg.multiplier + 1,
			Description:      cfg.description,
		})
	}
	return res
}

func dozen(n int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/12 + 1
}

func column(n int) int {
	if n == 0 {
		return 0
	}
	return (n-1)%3 + 1
}
