package round

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/outcome"
)

// Publisher - получатель новых состояний раунда
type Publisher interface {
	Publish(state model.RoundState)
}

type serv struct {
	cfg            config.RoundConfig
	ledger         service.LedgerService
	betRepo        repository.BetRepository
	settlementRepo repository.SettlementRepository
	resolver       *outcome.Resolver
	settler        service.SettlementService
	publisher      Publisher
	log            *slog.Logger
	now            func() time.Time

	running atomic.Bool

	// gate - ставки держат его на чтение все время операции,
	// смена фазы берет его на запись
	gate sync.RWMutex

	// mtx охраняет state, GetState не ждет леджер
	mtx   sync.RWMutex
	state model.RoundState
}

// NewRoundService - общий раунд рулетки. Стартует в фазе waiting с roundID 0,
// первый раунд открывается в Run
func NewRoundService(
	cfg config.RoundConfig,
	ledger service.LedgerService,
	betRepo repository.BetRepository,
	settlementRepo repository.SettlementRepository,
	resolver *outcome.Resolver,
	settler service.SettlementService,
	publisher Publisher,
	log *slog.Logger,
) service.RoundService {
	return &serv{
		cfg:            cfg,
		ledger:         ledger,
		betRepo:        betRepo,
		settlementRepo: settlementRepo,
		resolver:       resolver,
		settler:        settler,
		publisher:      publisher,
		log:            log,
		now:            time.Now,
		state: model.RoundState{
			Phase:   model.PhaseWaiting,
			History: []model.HistoryEntry{},
		},
	}
}

// Run - цикл смены фаз. Один таймер на абсолютный дедлайн текущей фазы.
// Возвращается при отмене ctx
func (s *serv) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("round service is already running")
	}
	defer s.running.Store(false)

	s.log.Info("round scheduler started",
		slog.Duration("betting", s.cfg.BettingDuration()),
		slog.Duration("spinning", s.cfg.SpinningDuration()),
		slog.Duration("result", s.cfg.ResultDuration()))

	s.advance(ctx)

	timer := time.NewTimer(s.untilDeadline())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("round scheduler stopped")
			return nil
		case <-timer.C:
			s.advance(ctx)
			timer.Reset(s.untilDeadline())
		}
	}
}

func (s *serv) untilDeadline() time.Duration {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.state.PhaseEndsAt.Sub(s.now())
}
