package handlers

import (
	"net/http"
	"strconv"
	"time"

	"runwalk_timer/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultResync    = 5 * time.Second
	maxResync        = time.Minute
	maxResyncMilli   = 60_000
	resyncQueryParam = "resync"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The page is served from the same loopback origin; other origins may not
// drive the display.
var upgrader = websocket.Upgrader{
	CheckOrigin: sameOrigin,
}

func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// wsConnect pushes state, signal and wake envelopes from the hub. A full
// state is also resent every resync period so a client that dropped
// messages catches up.
func (h *Handler) wsConnect(c *gin.Context) {
	resync := h.parseResync(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	var (
		msgs        <-chan notify.Message
		unsubscribe = func() {}
	)
	if h.hub != nil {
		msgs, unsubscribe = h.hub.Subscribe()
	}
	defer unsubscribe()

	ticker := time.NewTicker(resync)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	if err := h.sendState(conn); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case m, ok := <-msgs:
			if !ok {
				return
			}
			if err := h.write(conn, wsEnvelope{Type: m.Type, Data: m.Data}); err != nil {
				h.log.Infow("ws_write_failed", "err", err, "type", m.Type)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendState(conn); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseResync reads ?resync=10s or ?resync_ms=10000 with bounds.
func (h *Handler) parseResync(c *gin.Context) time.Duration {
	if s := c.Query(resyncQueryParam); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxResync {
			return d
		}
	}
	if ms := c.Query(resyncQueryParam + "_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxResyncMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultResync
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

func (h *Handler) sendState(conn *websocket.Conn) error {
	return h.write(conn, wsEnvelope{Type: notify.TypeState, Data: h.services.Timer.Snapshot()})
}

func (h *Handler) write(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
