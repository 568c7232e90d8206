package settlement

import (
	"log/slog"
	"time"

	"roulette_backend/internal/service"
)

// game - название игры в журнале операций
const game = "roulette"

// RetryPolicy - повтор зачисления выигрыша
type RetryPolicy struct {
	Attempts        int
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

type serv struct {
	ledger service.LedgerService
	retry  RetryPolicy
	log    *slog.Logger
	now    func() time.Time
}

// NewSettlementService - расчет закрытых раундов через леджер
func NewSettlementService(
	ledger service.LedgerService,
	retry RetryPolicy,
	log *slog.Logger,
) service.SettlementService {
	if retry.Attempts <= 0 {
		retry.Attempts = 1
	}
	return &serv{
		ledger: ledger,
		retry:  retry,
		log:    log,
		now:    time.Now,
	}
}
