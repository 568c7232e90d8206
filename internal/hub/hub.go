package hub

import (
	"sync"

	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
)

// Hub - рассылка состояния раунда подписчикам.
// Хранит последнее опубликованное состояние и отдает его каждому новому подписчику
type Hub struct {
	mtx     sync.Mutex
	current model.RoundState
	subs    map[uint64]chan model.RoundState
	nextID  uint64
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uint64]chan model.RoundState),
	}
}

// Publish - сохраняет состояние и рассылает его без блокировки.
// Медленный подписчик получает только самое свежее состояние
func (h *Hub) Publish(state model.RoundState) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.current = state
	for _, ch := range h.subs {
		select {
		case ch <- state:
			continue
		default:
		}
		// Выкидываем устаревшее состояние и кладем новое
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}

// Subscribe - текущее состояние, канал обновлений и функция отписки.
// Отписка идемпотентна и закрывает канал
func (h *Hub) Subscribe() (model.RoundState, <-chan model.RoundState, func()) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan model.RoundState, 1)
	h.subs[id] = ch
	metrics.Subscribers.Set(float64(len(h.subs)))

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mtx.Lock()
			defer h.mtx.Unlock()

			delete(h.subs, id)
			close(ch)
			metrics.Subscribers.Set(float64(len(h.subs)))
		})
	}

	return h.current, ch, cancel
}

// Subscribers - количество подписчиков
func (h *Hub) Subscribers() int {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	return len(h.subs)
}
