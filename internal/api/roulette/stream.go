package roulette

import (
	"net/http"
	"time"

	"roulette_backend/internal/converter"
	"roulette_backend/internal/lib/logger/sl"
	"roulette_backend/internal/model"

	"github.com/gorilla/websocket"
)

// Время на запись одного сообщения
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Stream - WebSocket поток состояния раунда.
// Сразу отправляет текущий снимок, затем по сообщению на каждую смену состояния.
// При остановке сервера отправляет close frame с кодом going away
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	const op = "api.roulette.Stream"
	log := h.log.With(sl.Op(op))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", sl.Err(err))
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug("failed to close connection", sl.Err(err))
		}
	}()

	current, updates, cancel := h.states.Subscribe()
	defer cancel()

	// Входящие сообщения не нужны, читаем только чтобы заметить закрытие
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	first := h.round.GetState()
	if current.Phase != "" {
		first = current.Snapshot(time.Now())
	}
	if err := writeSnapshot(conn, first); err != nil {
		log.Debug("failed to write state", sl.Err(err))
		return
	}

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-h.shutdown.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
				log.Debug("failed to write close message", sl.Err(err))
			}
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			if err := writeSnapshot(conn, state.Snapshot(time.Now())); err != nil {
				log.Debug("failed to write state", sl.Err(err))
				return
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, snap model.RoundSnapshot) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(converter.ToStateResponse(snap))
}
