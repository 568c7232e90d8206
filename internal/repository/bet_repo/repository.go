package bet_repo

import (
	"sync"

	"roulette_backend/internal/model"
)

// Ставки одного участника. mtx держится на все время изменения,
// включая списание и возврат денег через леджер
type userBets struct {
	mtx  sync.Mutex
	bets []model.Bet
}

type roundBets struct {
	closed bool
	users  map[int64]*userBets
}

// BetRepo - ставки раундов в памяти процесса
type BetRepo struct {
	mtx    sync.RWMutex
	rounds map[int64]*roundBets
}

// NewBetRepository - конструктор пустого хранилища ставок
func NewBetRepository() *BetRepo {
	return &BetRepo{
		rounds: make(map[int64]*roundBets),
	}
}

// OpenRound - создает пустой набор ставок для нового раунда
func (r *BetRepo) OpenRound(roundID int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.rounds[roundID]; ok {
		return
	}
	r.rounds[roundID] = &roundBets{users: make(map[int64]*userBets)}
}

// entry - возвращает (или создает) запись участника открытого раунда
func (r *BetRepo) entry(roundID, userID int64) (*userBets, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	round, ok := r.rounds[roundID]
	if !ok || round.closed {
		return nil, model.ErrStaleRound
	}
	ub, ok := round.users[userID]
	if !ok {
		ub = &userBets{}
		round.users[userID] = ub
	}
	return ub, nil
}

// Update - изменение ставок участника как одна неделимая операция.
// fn получает копию текущих ставок, результат сохраняется только если fn вернула nil
func (r *BetRepo) Update(roundID, userID int64, fn func(bets []model.Bet) ([]model.Bet, error)) error {
	ub, err := r.entry(roundID, userID)
	if err != nil {
		return err
	}

	ub.mtx.Lock()
	defer ub.mtx.Unlock()

	next, err := fn(copyBets(ub.bets))
	if err != nil {
		return err
	}
	ub.bets = next
	return nil
}

// Bets - копия ставок участника, пустой список если ставок нет
func (r *BetRepo) Bets(roundID, userID int64) []model.Bet {
	r.mtx.RLock()
	round, ok := r.rounds[roundID]
	var ub *userBets
	if ok {
		ub = round.users[userID]
	}
	r.mtx.RUnlock()

	if ub == nil {
		return []model.Bet{}
	}

	ub.mtx.Lock()
	defer ub.mtx.Unlock()
	return copyBets(ub.bets)
}

// Close - закрывает раунд для изменений и возвращает все непустые ставки.
// Данные остаются доступны для чтения до Prune
func (r *BetRepo) Close(roundID int64) map[int64][]model.Bet {
	r.mtx.Lock()
	round, ok := r.rounds[roundID]
	if !ok {
		r.mtx.Unlock()
		return map[int64][]model.Bet{}
	}
	round.closed = true
	users := make(map[int64]*userBets, len(round.users))
	for id, ub := range round.users {
		users[id] = ub
	}
	r.mtx.Unlock()

	res := make(map[int64][]model.Bet, len(users))
	for id, ub := range users {
		ub.mtx.Lock()
		if len(ub.bets) > 0 {
			res[id] = copyBets(ub.bets)
		}
		ub.mtx.Unlock()
	}
	return res
}

// Prune - удаляет раунды старше keepFrom
func (r *BetRepo) Prune(keepFrom int64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for id := range r.rounds {
		if id < keepFrom {
			delete(r.rounds, id)
		}
	}
}

func copyBets(bets []model.Bet) []model.Bet {
	res := make([]model.Bet, len(bets))
	for i, b := range bets {
		res[i] = b
		if b.Number != nil {
			n := *b.Number
			res[i].Number = &n
		}
	}
	return res
}
