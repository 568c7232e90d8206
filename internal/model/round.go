package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Phase - фаза раунда
type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseBetting  Phase = "betting"
	PhaseSpinning Phase = "spinning"
	PhaseResult   Phase = "result"
)

// Ordinal - порядковый номер фазы внутри одного раунда
func (p Phase) Ordinal() int {
	switch p {
	case PhaseBetting:
		return 1
	case PhaseSpinning:
		return 2
	case PhaseResult:
		return 3
	default:
		return 0
	}
}

// Color - цвет номера на колесе
type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// HistoryEntry - результат завершенного раунда для отображения
type HistoryEntry struct {
	RoundID int64
	Outcome int
	Color   Color
}

// RoundState - неизменяемый снимок состояния раунда.
// Хранит абсолютный дедлайн фазы, оставшееся время считается в момент чтения
type RoundState struct {
	Phase         Phase
	RoundID       int64
	PhaseEndsAt   time.Time
	PhaseDuration time.Duration
	Outcome       *int
	Color         *Color
	History       []HistoryEntry
}

// RoundSnapshot - публичное представление состояния раунда
type RoundSnapshot struct {
	Phase            Phase
	RoundID          int64
	PhaseRemainingMs int64
	PhaseDurationMs  int64
	Outcome          *int
	Color            *Color
	History          []HistoryEntry
}

// Snapshot - строит публичный снимок относительно момента now.
// Исход скрыт, пока идет прием ставок
func (s RoundState) Snapshot(now time.Time) RoundSnapshot {
	remaining := s.PhaseEndsAt.Sub(now).Milliseconds()
	if remaining < 0 || s.PhaseEndsAt.IsZero() {
		remaining = 0
	}

	snap := RoundSnapshot{
		Phase:            s.Phase,
		RoundID:          s.RoundID,
		PhaseRemainingMs: remaining,
		PhaseDurationMs:  s.PhaseDuration.Milliseconds(),
		History:          append([]HistoryEntry(nil), s.History...),
	}
	if s.Phase == PhaseSpinning || s.Phase == PhaseResult {
		snap.Outcome = s.Outcome
		snap.Color = s.Color
	}
	return snap
}

// HistoryRecord - запись в журнал операций пользователя у внешнего леджера
type HistoryRecord struct {
	Game         string
	RoundID      int64
	Bets         []ResolvedBet
	Outcome      int
	Color        Color
	TotalBet     decimal.Decimal
	TotalPayout  decimal.Decimal
	Profit       decimal.Decimal
	Won          bool
	BalanceAfter decimal.Decimal
}
