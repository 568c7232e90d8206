package round

import (
	"context"
	"log/slog"
	"time"

	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service/outcome"
)

// advance - переход в следующую фазу. Ждет завершения начатых ставок
func (s *serv) advance(ctx context.Context) {
	s.gate.Lock()
	defer s.gate.Unlock()

	s.mtx.RLock()
	phase := s.state.Phase
	s.mtx.RUnlock()

	var next model.RoundState
	switch phase {
	case model.PhaseBetting:
		next = s.startSpinning(ctx)
	case model.PhaseSpinning:
		next = s.startResult()
	default:
		next = s.startBetting()
	}

	s.publisher.Publish(next)
}

// nextDeadline - дедлайн считается от предыдущего, чтобы опоздания таймера не копились.
// Если отстали больше чем на целую фазу, отсчет идет от текущего момента
func (s *serv) nextDeadline(prev time.Time, d time.Duration) time.Time {
	now := s.now()
	if prev.IsZero() || now.Sub(prev) > d {
		return now.Add(d)
	}
	return prev.Add(d)
}

func (s *serv) startBetting() model.RoundState {
	s.mtx.RLock()
	roundID := s.state.RoundID + 1
	prev := s.state.PhaseEndsAt
	s.mtx.RUnlock()

	s.betRepo.OpenRound(roundID)

	s.mtx.Lock()
	s.state.RoundID = roundID
	s.state.Phase = model.PhaseBetting
	s.state.Outcome = nil
	s.state.Color = nil
	s.state.PhaseDuration = s.cfg.BettingDuration()
	s.state.PhaseEndsAt = s.nextDeadline(prev, s.cfg.BettingDuration())
	state := s.state
	s.mtx.Unlock()

	metrics.RoundID.Set(float64(roundID))
	s.log.Debug("betting opened", slog.Int64("round_id", roundID))
	return state
}

// startSpinning - исход выбирается один раз, ставки закрываются и рассчитываются
// до того, как фаза spinning станет видна
func (s *serv) startSpinning(ctx context.Context) model.RoundState {
	s.mtx.RLock()
	roundID := s.state.RoundID
	prev := s.state.PhaseEndsAt
	s.mtx.RUnlock()

	endsAt := s.nextDeadline(prev, s.cfg.SpinningDuration())
	result := s.resolver.Resolve()
	color := outcome.ColorOf(result)

	bets := s.betRepo.Close(roundID)

	settleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.SettlementTimeout())
	batch := s.settler.Settle(settleCtx, roundID, result, bets)
	cancel()
	s.settlementRepo.Save(batch)

	s.mtx.Lock()
	s.state.Phase = model.PhaseSpinning
	s.state.Outcome = &result
	s.state.Color = &color
	s.state.PhaseDuration = s.cfg.SpinningDuration()
	s.state.PhaseEndsAt = endsAt
	state := s.state
	s.mtx.Unlock()

	s.log.Debug("wheel spinning", slog.Int64("round_id", roundID), slog.Int("outcome", result))
	return state
}

func (s *serv) startResult() model.RoundState {
	s.mtx.Lock()
	roundID := s.state.RoundID
	entry := model.HistoryEntry{RoundID: roundID}
	if s.state.Outcome != nil {
		entry.Outcome = *s.state.Outcome
		entry.Color = outcome.ColorOf(entry.Outcome)
	}

	// Новый слайс на каждый раунд, уже опубликованные состояния не меняются
	size := s.cfg.HistorySize()
	history := make([]model.HistoryEntry, 0, size)
	history = append(history, entry)
	history = append(history, s.state.History...)
	if len(history) > size {
		history = history[:size]
	}

	s.state.Phase = model.PhaseResult
	s.state.History = history
	s.state.PhaseDuration = s.cfg.ResultDuration()
	s.state.PhaseEndsAt = s.nextDeadline(s.state.PhaseEndsAt, s.cfg.ResultDuration())
	state := s.state
	s.mtx.Unlock()

	s.betRepo.Prune(roundID - 1)
	s.settlementRepo.Prune(roundID - 1)

	return state
}
