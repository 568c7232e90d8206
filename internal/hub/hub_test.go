package hub

import (
	"sync"
	"testing"

	"roulette_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(roundID int64, phase model.Phase) model.RoundState {
	return model.RoundState{RoundID: roundID, Phase: phase}
}

func TestHub_SubscribeReturnsCurrent(t *testing.T) {
	h := NewHub()
	h.Publish(state(3, model.PhaseResult))

	current, updates, cancel := h.Subscribe()
	defer cancel()

	assert.Equal(t, int64(3), current.RoundID)
	assert.Equal(t, model.PhaseResult, current.Phase)
	assert.Empty(t, updates)

	h.Publish(state(4, model.PhaseBetting))
	next := <-updates
	assert.Equal(t, int64(4), next.RoundID)
	assert.Equal(t, model.PhaseBetting, next.Phase)
}

func TestHub_SlowSubscriberGetsNewest(t *testing.T) {
	h := NewHub()
	_, updates, cancel := h.Subscribe()
	defer cancel()

	h.Publish(state(1, model.PhaseBetting))
	h.Publish(state(1, model.PhaseSpinning))
	h.Publish(state(1, model.PhaseResult))

	got := <-updates
	assert.Equal(t, model.PhaseResult, got.Phase)
	assert.Empty(t, updates)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	h := NewHub()
	_, updates, cancel := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	cancel()
	cancel()

	assert.Equal(t, 0, h.Subscribers())
	_, ok := <-updates
	assert.False(t, ok)

	// Публикация после отписки не паникует
	h.Publish(state(2, model.PhaseBetting))
	current, _, cancelNext := h.Subscribe()
	defer cancelNext()
	assert.Equal(t, int64(2), current.RoundID)
}

func TestHub_ConcurrentSubscribeAndPublish(t *testing.T) {
	h := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, updates, cancel := h.Subscribe()
			defer cancel()
			select {
			case <-updates:
			default:
			}
		}()
		go func(id int64) {
			defer wg.Done()
			h.Publish(state(id, model.PhaseBetting))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 0, h.Subscribers())
}
