package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/service/outcome"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settle - рассчитывает все ставки раунда ровно один раз.
// Выигрыш зачисляется одним Credit на участника, при исчерпании повторов
// итог помечается неоплаченным и раунд продолжается
func (s *serv) Settle(ctx context.Context, roundID int64, result int, bets map[int64][]model.Bet) model.SettlementBatch {
	const op = "settlement.Settle"
	log := s.log.With(sl.Op(op), slog.Int64("round_id", roundID), slog.Int("outcome", result))

	started := time.Now()
	defer func() {
		metrics.SettlementDuration.Observe(time.Since(started).Seconds())
		metrics.RoundsSettled.Inc()
	}()

	batch := model.SettlementBatch{
		RoundID: roundID,
		Outcome: result,
		Color:   outcome.ColorOf(result),
		Results: make(map[int64]model.Settlement, len(bets)),
	}

	userIDs := make([]int64, 0, len(bets))
	for id, userBets := range bets {
		if len(userBets) > 0 {
			userIDs = append(userIDs, id)
		}
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	for _, userID := range userIDs {
		settlement := resolveUser(roundID, userID, bets[userID], result)
		userLog := log.With(slog.Int64("user_id", userID))

		if settlement.TotalPayout.IsPositive() {
			balance, err := s.credit(ctx, userID, settlement.TotalPayout)
			if err != nil {
				settlement.Paid = false
				batch.Unpaid = append(batch.Unpaid, model.UnpaidSettlement{
					ID:        uuid.New(),
					RoundID:   roundID,
					UserID:    userID,
					Amount:    settlement.TotalPayout,
					Reason:    err.Error(),
					FlaggedAt: s.now(),
				})
				metrics.UnpaidSettlements.Inc()
				userLog.Error("payout credit failed, flagged for reconciliation",
					slog.String("amount", settlement.TotalPayout.String()), sl.Err(err))
				settlement.Balance = s.balance(ctx, userID, userLog)
			} else {
				settlement.Balance = balance
			}
		} else {
			settlement.Balance = s.balance(ctx, userID, userLog)
		}

		batch.Results[userID] = settlement

		err := s.ledger.RecordHistory(ctx, userID, historyRecord(settlement, batch.Color, result))
		if err != nil {
			userLog.Warn("failed to record history", sl.Err(err))
		}
	}

	log.Info("round settled", slog.Int("participants", len(userIDs)), slog.Int("unpaid", len(batch.Unpaid)))
	return batch
}

// credit - зачисление с экспоненциальным повтором
func (s *serv) credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	exp := backoff.NewExponentialBackOff()
	if s.retry.InitialInterval > 0 {
		exp.InitialInterval = s.retry.InitialInterval
	}
	exp.MaxElapsedTime = s.retry.MaxElapsed

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(s.retry.Attempts-1)), ctx)

	var balance decimal.Decimal
	operation := func() error {
		var err error
		balance, err = s.ledger.Credit(ctx, userID, amount)
		return err
	}
	notify := func(err error, next time.Duration) {
		metrics.CreditRetries.Inc()
		s.log.Debug("retrying payout credit", slog.Int64("user_id", userID),
			slog.Duration("next", next), sl.Err(err))
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", model.ErrSettlement, err)
	}
	return balance, nil
}

// balance - баланс для ответа, при ошибке леджера ноль
func (s *serv) balance(ctx context.Context, userID int64, log *slog.Logger) decimal.Decimal {
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		log.Warn("failed to read balance after settlement", sl.Err(err))
		return decimal.Zero
	}
	return balance
}

func historyRecord(s model.Settlement, color model.Color, result int) model.HistoryRecord {
	return model.HistoryRecord{
		Game:         game,
		RoundID:      s.RoundID,
		Bets:         s.Bets,
		Outcome:      result,
		Color:        color,
		TotalBet:     s.TotalBet,
		TotalPayout:  s.TotalPayout,
		Profit:       s.TotalProfit,
		Won:          s.Won,
		BalanceAfter: s.Balance,
	}
}
