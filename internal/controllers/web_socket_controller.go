package controllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"campus_hop/internal/middleware"
	"campus_hop/internal/models"
	"campus_hop/internal/store"
)

// upgrader configures the WebSocket connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all for development (restrict in production!)
	},
}

// PositionUpdate is the message an admin publisher sends for one shuttle.
type PositionUpdate struct {
	ShuttleID string  `json:"shuttle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// mapClient wraps a connection with a write lock. Acks from the reader
// goroutine and broadcasts from the hub land on the same connection, and
// gorilla/websocket allows only one concurrent writer.
type mapClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *mapClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// PositionHub fans shuttle position updates out to every connected map
// client. There is a single campus-wide feed.
type PositionHub struct {
	clients   map[*mapClient]bool
	broadcast chan map[string]interface{}
	mu        sync.Mutex
}

// NewPositionHub creates a hub and starts its broadcast loop.
func NewPositionHub() *PositionHub {
	hub := &PositionHub{
		clients:   make(map[*mapClient]bool),
		broadcast: make(chan map[string]interface{}, 100),
	}
	go hub.run()
	return hub
}

func (h *PositionHub) run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.writeJSON(msg); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					logrus.Info("Map client closed during broadcast, unregistering")
				} else {
					logrus.WithError(err).Warn("Failed to send position update to map client")
				}
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

func (h *PositionHub) Register(client *mapClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	logrus.WithField("clients", len(h.clients)).Info("Map client registered with PositionHub")
}

func (h *PositionHub) Unregister(client *mapClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	logrus.WithField("clients", len(h.clients)).Info("Map client unregistered from PositionHub")
}

// Publish queues an update for broadcast, dropping it if the channel is
// full.
func (h *PositionHub) Publish(data map[string]interface{}) {
	select {
	case h.broadcast <- data:
	default:
		logrus.Warn("Position broadcast channel full, dropping message")
	}
}

// WebSocketController serves the live position feed. Admin connections may
// publish updates; every connection receives the broadcast stream.
type WebSocketController struct {
	store *store.Store
	hub   *PositionHub
}

func NewWebSocketController(s *store.Store) *WebSocketController {
	return &WebSocketController{store: s, hub: NewPositionHub()}
}

// HandlePositionWebSocket authenticates via the token query parameter,
// upgrades the connection and joins the client to the feed.
func (wc *WebSocketController) HandlePositionWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		logrus.Warn("WebSocket connection attempt: missing token query parameter")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication token"})
		return
	}

	userID, role, err := middleware.ValidateToken(tokenString)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket connection attempt with invalid token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	client := &mapClient{conn: conn}
	wc.hub.Register(client)
	defer wc.hub.Unregister(client)

	logrus.WithFields(logrus.Fields{"user_id": userID, "role": role}).Info("Position WebSocket established")

	for {
		messageType, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("user_id", userID).Info("Position WebSocket closed")
			} else {
				logrus.WithError(err).WithField("user_id", userID).Error("Error reading WebSocket message")
			}
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if role != models.RoleAdmin {
			// Riders only listen.
			client.writeJSON(gin.H{"error": "Only administrators can publish positions"})
			continue
		}
		wc.processPositionUpdate(client, p)
	}
}

// processPositionUpdate applies an admin's update to the store and
// broadcasts the new position.
func (wc *WebSocketController) processPositionUpdate(client *mapClient, p []byte) {
	var update PositionUpdate
	if err := json.Unmarshal(p, &update); err != nil {
		logrus.WithError(err).WithField("payload", string(p)).Error("Error unmarshaling position update")
		client.writeJSON(gin.H{"error": "Invalid position update format"})
		return
	}
	if update.ShuttleID == "" {
		client.writeJSON(gin.H{"error": "shuttle_id is required"})
		return
	}

	shuttle, found := wc.store.SetShuttleLocation(update.ShuttleID, models.LatLng{
		Lat: update.Latitude,
		Lng: update.Longitude,
	})
	if !found {
		client.writeJSON(gin.H{"error": "Shuttle not found"})
		return
	}

	client.writeJSON(gin.H{"status": "saved", "shuttle_id": shuttle.ID})

	wc.hub.Publish(map[string]interface{}{
		"shuttle_id": shuttle.ID,
		"name":       shuttle.Name,
		"latitude":   update.Latitude,
		"longitude":  update.Longitude,
		"status":     shuttle.Status,
		"timestamp":  time.Now().Format(time.RFC3339Nano),
	})
	logrus.WithFields(logrus.Fields{
		"shuttle_id": shuttle.ID,
		"latitude":   update.Latitude,
		"longitude":  update.Longitude,
	}).Debug("Shuttle position published to hub")
}
