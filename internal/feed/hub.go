package feed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	model "coin-market/internal/models"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event types pushed to connected clients
const (
	EventBidPlaced = "bid_placed"
	EventLotClosed = "lot_closed"
)

// Event is a single feed message
type Event struct {
	Type string           `json:"type"`
	Lot  model.AuctionLot `json:"lot"`
}

// Hub broadcasts auction events to every connected WebSocket client.
// Clients are write-only; anything they send is discarded.
type Hub struct {
	mu       sync.RWMutex
	conns    map[string]*websocket.Conn
	upgrader websocket.Upgrader
}

// NewHub creates a new feed hub instance
func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades GET /ws/bids and registers the connection.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Error("feed: failed to upgrade to WebSocket", map[string]any{"error": err.Error()})
		return
	}

	socketID := utils.GenerateID()

	h.mu.Lock()
	h.conns[socketID] = conn
	h.mu.Unlock()

	utils.Info("feed: client connected", map[string]any{"socket_id": socketID})

	go h.readLoop(socketID, conn)
}

// readLoop drains inbound frames until the peer goes away, then cleans up.
func (h *Hub) readLoop(socketID string, conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.conns, socketID)
		h.mu.Unlock()
		conn.Close()
		utils.Info("feed: client disconnected", map[string]any{"socket_id": socketID})
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes an event to every client, dropping connections that fail.
// Safe to call on a nil hub so callers need no feed wiring in tests.
func (h *Hub) Broadcast(eventType string, lot model.AuctionLot) {
	if h == nil {
		return
	}

	raw, err := json.Marshal(Event{Type: eventType, Lot: lot})
	if err != nil {
		utils.Error("feed: failed to marshal event", map[string]any{"error": err.Error()})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			utils.Warn("feed: dropping unresponsive client", map[string]any{"socket_id": id, "error": err.Error()})
			conn.Close()
			delete(h.conns, id)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
