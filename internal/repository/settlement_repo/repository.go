package settlement_repo

import (
	"sync"

	"roulette_backend/internal/model"
)

// SettlementRepo - итоги последних раундов и неоплаченные выплаты.
// Неоплаченные выплаты не удаляются при Prune, они ждут ручной сверки
type SettlementRepo struct {
	mtx    sync.RWMutex
	rounds map[int64]map[int64]model.Settlement
	unpaid []model.UnpaidSettlement
}

// NewSettlementRepository - конструктор пустого хранилища итогов
func NewSettlementRepository() *SettlementRepo {
	return &SettlementRepo{
		rounds: make(map[int64]map[int64]model.Settlement),
	}
}

// Save - сохраняет итоги раунда. Повторный Save того же раунда игнорируется
func (r *SettlementRepo) Save(batch model.SettlementBatch) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rounds[batch.RoundID]; ok {
		return
	}
	results := make(map[int64]model.Settlement, len(batch.Results))
	for id, s := range batch.Results {
		results[id] = s
	}
	r.rounds[batch.RoundID] = results
	r.unpaid = append(r.unpaid, batch.Unpaid...)
}

// Get - итог участника в раунде
func (r *SettlementRepo) Get(roundID, userID int64) (model.Settlement, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.rounds[roundID][userID]
	return s, ok
}

// Prune - удаляет итоги раундов старше keepFrom
func (r *SettlementRepo) Prune(keepFrom int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for id := range r.rounds {
		if id < keepFrom {
			delete(r.rounds, id)
		}
	}
}

// Unpaid - копия списка выплат, ожидающих сверки
func (r *SettlementRepo) Unpaid() []model.UnpaidSettlement {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return append([]model.UnpaidSettlement(nil), r.unpaid...)
}
