// Package events streams cache refresh notifications to connected admin UI
// clients over WebSocket, so voucher tables can re-render without polling.
package events

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"voucher-hub/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

const (
	writeTimeout  = 5 * time.Second
	sendQueueSize = 8
)

type Hub struct {
	log *slog.Logger

	mu   sync.Mutex
	subs map[chan usecase.RefreshEvent]struct{}
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:  log,
		subs: make(map[chan usecase.RefreshEvent]struct{}),
	}
}

// NotifyRefresh fans the event out to every subscriber. Slow consumers drop
// events instead of blocking the refresher.
func (h *Hub) NotifyRefresh(ev usecase.RefreshEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *Hub) subscribe() chan usecase.RefreshEvent {
	ch := make(chan usecase.RefreshEvent, sendQueueSize)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan usecase.RefreshEvent) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// Handler upgrades the request and writes one JSON event per completed cache
// refresh until the client disconnects.
func (h *Hub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, nil)
		if err != nil {
			h.log.Warn("websocket accept failed", "error", err)
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		ch := h.subscribe()
		defer h.unsubscribe(ch)

		// CloseRead cancels the context when the peer closes or errors;
		// clients are write-only from our side.
		ctx := conn.CloseRead(c.Request.Context())

		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-ch:
				writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
				err := wsjson.Write(writeCtx, conn, ev)
				cancel()
				if err != nil {
					h.log.Debug("websocket write failed, dropping subscriber", "error", err)
					return
				}
			}
		}
	}
}
