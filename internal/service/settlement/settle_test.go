package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerStub struct {
	mtx         sync.Mutex
	balances    map[int64]decimal.Decimal
	credits     map[int64][]decimal.Decimal
	failCredits int
	attempts    int
	history     map[int64][]model.HistoryRecord
}

func newLedgerStub() *ledgerStub {
	return &ledgerStub{
		balances: map[int64]decimal.Decimal{},
		credits:  map[int64][]decimal.Decimal{},
		history:  map[int64][]model.HistoryRecord{},
	}
}

func (l *ledgerStub) GetBalance(_ context.Context, userID int64) (decimal.Decimal, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.balances[userID], nil
}

func (l *ledgerStub) Debit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.balances[userID] = l.balances[userID].Sub(amount)
	return l.balances[userID], nil
}

func (l *ledgerStub) Credit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.attempts++
	if l.failCredits < 0 || l.attempts <= l.failCredits {
		return decimal.Zero, errors.New("ledger unavailable")
	}
	l.credits[userID] = append(l.credits[userID], amount)
	l.balances[userID] = l.balances[userID].Add(amount)
	return l.balances[userID], nil
}

func (l *ledgerStub) RecordHistory(_ context.Context, userID int64, record model.HistoryRecord) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.history[userID] = append(l.history[userID], record)
	return nil
}

func newTestService(l *ledgerStub, attempts int) *serv {
	return NewSettlementService(l, RetryPolicy{
		Attempts:        attempts,
		InitialInterval: time.Millisecond,
		MaxElapsed:      time.Second,
	}, sl.Discard()).(*serv)
}

func number(n int) *int {
	return &n
}

func bet(betType model.BetType, num *int, amount string) model.Bet {
	return model.Bet{
		Key:    model.BetKey(betType, num),
		Type:   betType,
		Number: num,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestResolveBet(t *testing.T) {
	tests := []struct {
		name   string
		bet    model.Bet
		result int
		won    bool
		payout string
		profit string
	}{
		{"straight win", bet(model.BetStraight, number(17), "10"), 17, true, "360", "350"},
		{"straight loss", bet(model.BetStraight, number(17), "10"), 18, false, "0", "-10"},
		{"red win", bet(model.BetRed, nil, "50"), 1, true, "100", "50"},
		{"black loss on red", bet(model.BetBlack, nil, "50"), 1, false, "0", "-50"},
		{"dozen win", bet(model.BetDozen2, nil, "1.5"), 20, true, "4.5", "3"},
		{"zero loses even", bet(model.BetEven, nil, "5"), 0, false, "0", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveBet(tt.bet, tt.result)
			assert.Equal(t, tt.won, r.Won)
			assert.True(t, r.Payout.Equal(decimal.RequireFromString(tt.payout)), r.Payout.String())
			assert.True(t, r.Profit.Equal(decimal.RequireFromString(tt.profit)), r.Profit.String())
		})
	}
}

func TestSettle_PayoutScenario(t *testing.T) {
	l := newLedgerStub()
	// 1000 - 10 на straight 7
	l.balances[1] = decimal.NewFromInt(990)
	s := newTestService(l, 3)

	batch := s.Settle(context.Background(), 1, 7, map[int64][]model.Bet{
		1: {bet(model.BetStraight, number(7), "10")},
	})

	require.Contains(t, batch.Results, int64(1))
	res := batch.Results[1]
	assert.True(t, res.Won)
	assert.True(t, res.Paid)
	assert.True(t, res.TotalPayout.Equal(decimal.NewFromInt(360)))
	assert.True(t, res.TotalProfit.Equal(decimal.NewFromInt(350)))
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(1350)))
	assert.Equal(t, model.ColorRed, batch.Color)
	assert.Len(t, l.credits[1], 1)
	require.Len(t, l.history[1], 1)
	assert.Equal(t, "roulette", l.history[1][0].Game)
	assert.Empty(t, batch.Unpaid)
}

func TestSettle_RedAndBlack(t *testing.T) {
	l := newLedgerStub()
	l.balances[1] = decimal.NewFromInt(900)
	l.balances[2] = decimal.NewFromInt(900)
	s := newTestService(l, 3)

	batch := s.Settle(context.Background(), 1, 1, map[int64][]model.Bet{
		1: {bet(model.BetRed, nil, "50")},
		2: {bet(model.BetBlack, nil, "50")},
	})

	assert.True(t, batch.Results[1].TotalProfit.Equal(decimal.NewFromInt(50)))
	assert.True(t, batch.Results[1].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, batch.Results[2].TotalProfit.Equal(decimal.NewFromInt(-50)))
	assert.True(t, batch.Results[2].Balance.Equal(decimal.NewFromInt(900)))
	assert.True(t, batch.Results[2].Paid)
	assert.Empty(t, l.credits[2])
}

func TestSettle_MixedBetsSingleCredit(t *testing.T) {
	l := newLedgerStub()
	s := newTestService(l, 3)

	batch := s.Settle(context.Background(), 3, 2, map[int64][]model.Bet{
		1: {
			bet(model.BetBlack, nil, "10"),
			bet(model.BetEven, nil, "10"),
			bet(model.BetStraight, number(5), "10"),
		},
	})

	res := batch.Results[1]
	assert.True(t, res.TotalBet.Equal(decimal.NewFromInt(30)))
	assert.True(t, res.TotalPayout.Equal(decimal.NewFromInt(40)))
	assert.True(t, res.TotalProfit.Equal(decimal.NewFromInt(10)))
	require.Len(t, l.credits[1], 1)
	assert.True(t, l.credits[1][0].Equal(decimal.NewFromInt(40)))
}

func TestSettle_RetryThenSucceed(t *testing.T) {
	l := newLedgerStub()
	l.failCredits = 2
	s := newTestService(l, 5)

	batch := s.Settle(context.Background(), 1, 1, map[int64][]model.Bet{
		1: {bet(model.BetRed, nil, "10")},
	})

	assert.True(t, batch.Results[1].Paid)
	assert.Empty(t, batch.Unpaid)
	assert.Equal(t, 3, l.attempts)
	assert.Len(t, l.credits[1], 1)
}

func TestSettle_RetryExhaustedFlagsUnpaid(t *testing.T) {
	l := newLedgerStub()
	l.failCredits = -1
	l.balances[2] = decimal.NewFromInt(5)
	s := newTestService(l, 3)

	batch := s.Settle(context.Background(), 4, 1, map[int64][]model.Bet{
		2: {bet(model.BetRed, nil, "10")},
	})

	res := batch.Results[2]
	assert.False(t, res.Paid)
	assert.True(t, res.Balance.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 3, l.attempts)
	require.Len(t, batch.Unpaid, 1)
	assert.Equal(t, int64(4), batch.Unpaid[0].RoundID)
	assert.Equal(t, int64(2), batch.Unpaid[0].UserID)
	assert.True(t, batch.Unpaid[0].Amount.Equal(decimal.NewFromInt(20)))
	assert.Contains(t, batch.Unpaid[0].Reason, "ledger unavailable")
	assert.Len(t, l.history[2], 1)
}

func TestSettle_EmptyRound(t *testing.T) {
	l := newLedgerStub()
	s := newTestService(l, 3)

	batch := s.Settle(context.Background(), 9, 0, nil)

	assert.Equal(t, int64(9), batch.RoundID)
	assert.Equal(t, model.ColorGreen, batch.Color)
	assert.NotNil(t, batch.Results)
	assert.Empty(t, batch.Results)
	assert.Zero(t, l.attempts)
}
