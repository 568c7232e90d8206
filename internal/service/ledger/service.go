package ledger

import (
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// historyLimit - сколько записей журнала хранится на пользователя
const historyLimit = 50

type serv struct {
	userRepo    repository.UserRepository
	historyRepo repository.HistoryRepository
	txManager   trm.Manager
}

// NewLedgerService - леджер поверх балансов в Postgres
func NewLedgerService(
	userRepo repository.UserRepository,
	historyRepo repository.HistoryRepository,
	txManager trm.Manager,
) service.LedgerService {
	return &serv{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
	}
}
