package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// progressEvent is what the UI receives while a scrape runs
type progressEvent struct {
	Type      string `json:"type"`
	Step      string `json:"step"`
	Timestamp string `json:"timestamp"`
}

// WebSocketHandler broadcasts scrape progress to connected UI clients. It
// implements interfaces.ScrapeObserver; the scraper calls ScrapeProgress for
// each narrative step.
type WebSocketHandler struct {
	logger arbor.ILogger

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex // Per-connection write lock
}

func NewWebSocketHandler(logger arbor.ILogger) *WebSocketHandler {
	return &WebSocketHandler{
		logger:  logger,
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// HandleWebSocket upgrades the connection and holds it open until the client
// goes away
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = &sync.Mutex{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Int("clients", count).Msg("WebSocket client connected")

	// Drain reads; the first error means the client disconnected
	go func() {
		defer h.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *WebSocketHandler) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	h.logger.Debug().Int("clients", count).Msg("WebSocket client disconnected")
}

// ScrapeProgress implements interfaces.ScrapeObserver by broadcasting the
// step to every connected client. Write failures drop the client; a stuck UI
// must never stall a scrape.
func (h *WebSocketHandler) ScrapeProgress(step string) {
	event := progressEvent{
		Type:      "scrape_progress",
		Step:      step,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	h.mu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for conn, lock := range h.clients {
		conns[conn] = lock
	}
	h.mu.RUnlock()

	for conn, lock := range conns {
		lock.Lock()
		err := conn.WriteJSON(event)
		lock.Unlock()
		if err != nil {
			h.removeClient(conn)
		}
	}
}

// ClientCount reports how many UI clients are connected
func (h *WebSocketHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
