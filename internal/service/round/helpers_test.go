package round

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository/bet_repo"
	"roulette_backend/internal/repository/settlement_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/outcome"
	"roulette_backend/internal/service/settlement"

	"github.com/shopspring/decimal"
)

type roundConfigStub struct {
	betting, spinning, result time.Duration
	historySize               int
}

func (c roundConfigStub) BettingDuration() time.Duration                { return c.betting }
func (c roundConfigStub) SpinningDuration() time.Duration               { return c.spinning }
func (c roundConfigStub) ResultDuration() time.Duration                 { return c.result }
func (c roundConfigStub) HistorySize() int                              { return c.historySize }
func (c roundConfigStub) SettlementRetryAttempts() int                  { return 3 }
func (c roundConfigStub) SettlementRetryInitialInterval() time.Duration { return time.Millisecond }
func (c roundConfigStub) SettlementRetryMaxElapsed() time.Duration      { return time.Second }
func (c roundConfigStub) SettlementTimeout() time.Duration              { return time.Second }

func defaultConfig() roundConfigStub {
	return roundConfigStub{
		betting:     15 * time.Second,
		spinning:    5 * time.Second,
		result:      10 * time.Second,
		historySize: 20,
	}
}

// memLedger - леджер в памяти для тестов
type memLedger struct {
	mtx        sync.Mutex
	balances   map[int64]decimal.Decimal
	credits    int
	debits     int
	failCredit bool
	// debitHook вызывается до списания, без блокировки леджера
	debitHook func()
}

func newMemLedger() *memLedger {
	return &memLedger{balances: map[int64]decimal.Decimal{}}
}

func (l *memLedger) set(userID int64, amount int64) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.balances[userID] = decimal.NewFromInt(amount)
}

func (l *memLedger) get(userID int64) decimal.Decimal {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.balances[userID]
}

func (l *memLedger) creditCount() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.credits
}

func (l *memLedger) GetBalance(_ context.Context, userID int64) (decimal.Decimal, error) {
	return l.get(userID), nil
}

func (l *memLedger) Debit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if l.debitHook != nil {
		l.debitHook()
	}

	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.balances[userID].LessThan(amount) {
		return decimal.Zero, model.ErrInsufficientFunds
	}
	l.debits++
	l.balances[userID] = l.balances[userID].Sub(amount)
	return l.balances[userID], nil
}

func (l *memLedger) Credit(_ context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	if l.failCredit {
		return decimal.Zero, errors.New("ledger unavailable")
	}
	l.credits++
	l.balances[userID] = l.balances[userID].Add(amount)
	return l.balances[userID], nil
}

func (l *memLedger) RecordHistory(context.Context, int64, model.HistoryRecord) error {
	return nil
}

// fixedSource - выдает номера по кругу
type fixedSource struct {
	mtx     sync.Mutex
	numbers []int
	i       int
}

func (f *fixedSource) IntN(int) int {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	n := f.numbers[f.i%len(f.numbers)]
	f.i++
	return n
}

type fakeClock struct {
	mtx sync.Mutex
	t   time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.t = t
}

// recorder - запоминает все опубликованные состояния
type recorder struct {
	mtx    sync.Mutex
	states []model.RoundState
}

func (r *recorder) Publish(state model.RoundState) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) all() []model.RoundState {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]model.RoundState(nil), r.states...)
}

// countingSettler - считает вызовы расчета
type countingSettler struct {
	service.SettlementService
	mtx   sync.Mutex
	calls []int64
}

func (c *countingSettler) Settle(ctx context.Context, roundID int64, result int, bets map[int64][]model.Bet) model.SettlementBatch {
	c.mtx.Lock()
	c.calls = append(c.calls, roundID)
	c.mtx.Unlock()
	return c.SettlementService.Settle(ctx, roundID, result, bets)
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	s           *serv
	ledger      *memLedger
	settlements *settlement_repo.SettlementRepo
	bets        *bet_repo.BetRepo
	settler     *countingSettler
	pub         *recorder
	clock       *fakeClock
}

func newTestEnv(t *testing.T, cfg roundConfigStub, publisher Publisher, outcomes ...int) *testEnv {
	t.Helper()

	if len(outcomes) == 0 {
		outcomes = []int{17}
	}
	env := &testEnv{
		ledger:      newMemLedger(),
		settlements: settlement_repo.NewSettlementRepository(),
		bets:        bet_repo.NewBetRepository(),
		pub:         &recorder{},
		clock:       &fakeClock{t: t0},
	}
	if publisher == nil {
		publisher = env.pub
	}

	log := sl.Discard()
	env.settler = &countingSettler{
		SettlementService: settlement.NewSettlementService(env.ledger, settlement.RetryPolicy{
			Attempts:        cfg.SettlementRetryAttempts(),
			InitialInterval: cfg.SettlementRetryInitialInterval(),
			MaxElapsed:      cfg.SettlementRetryMaxElapsed(),
		}, log),
	}

	env.s = NewRoundService(
		cfg,
		env.ledger,
		env.bets,
		env.settlements,
		outcome.NewResolver(&fixedSource{numbers: outcomes}),
		env.settler,
		publisher,
		log,
	).(*serv)
	env.s.now = env.clock.Now
	return env
}

// cycle - betting -> spinning -> result
func (e *testEnv) cycle() {
	ctx := context.Background()
	e.s.advance(ctx)
	e.s.advance(ctx)
	e.s.advance(ctx)
}

func num(n int) *int {
	return &n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
