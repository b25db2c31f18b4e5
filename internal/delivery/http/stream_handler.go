package http

import (
	netHttp "net/http"
	"sync"

	"nifinova/internal/dto"
	"nifinova/internal/service"
	"nifinova/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// streamEvent is the envelope for every websocket message.
type streamEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

// StreamHandler upgrades /ws connections and fans generator updates out to
// every connected client. It implements service.Broadcaster.
type StreamHandler struct {
	upgrader websocket.Upgrader
	logger   *logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

var _ service.Broadcaster = (*StreamHandler)(nil)

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(logger *logger.Logger) *StreamHandler {
	return &StreamHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard frontend is served from arbitrary hosts in demo
			// deployments.
			CheckOrigin: func(*netHttp.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// RegisterRoutes registers the websocket route on the Echo instance.
func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.HandleWS)
}

// HandleWS upgrades the connection and keeps it registered until the client
// goes away.
func (h *StreamHandler) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("Websocket upgrade failed", logger.ErrorField(err))
		return err
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	if err := conn.WriteJSON(streamEvent{Event: "connected", Data: "Connected to real-time updates"}); err != nil {
		h.dropLocked(conn)
	}
	h.mu.Unlock()

	h.logger.Info("Websocket client connected", logger.IntField("clients", count))
	go h.readLoop(conn)
	return nil
}

// readLoop drains inbound frames so pings and close frames are processed. The
// stream is one-way; client payloads are discarded.
func (h *StreamHandler) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			h.dropLocked(conn)
			h.mu.Unlock()
			h.logger.Info("Websocket client disconnected")
			return
		}
	}
}

// BroadcastMarketUpdate sends a market_update event to every client. A failed
// write drops the client.
func (h *StreamHandler) BroadcastMarketUpdate(update *dto.MarketUpdate) {
	event := streamEvent{Event: "market_update", Data: update}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.dropLocked(conn)
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *StreamHandler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// dropLocked removes and closes a client. Callers hold h.mu.
func (h *StreamHandler) dropLocked(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}
