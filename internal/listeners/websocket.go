package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"api-footwear/internal/models"
)

// RoomKPIs es la única room disponible: recibe cada tick de KPIs
const RoomKPIs = "kpis"

// Tipos de mensaje WebSocket
const (
	MessageTypeKPISnapshot = "kpi_snapshot" // estado inicial al conectar
	MessageTypeKPITick     = "kpi_tick"
)

// WebSocketMessage representa un mensaje enviado a través del WebSocket
type WebSocketMessage struct {
	Type       string      `json:"type"`      // "kpi_snapshot", "kpi_tick"
	Timestamp  string      `json:"timestamp"` // ISO 8601 timestamp
	SnapshotID string      `json:"snapshot_id"`
	Data       interface{} `json:"data"`
}

// Client representa un cliente WebSocket conectado
type Client struct {
	ID       string
	Conn     *websocket.Conn
	RoomName string
	Send     chan []byte
	Hub      *WebSocketHub
}

// WebSocketHub maneja todas las conexiones WebSocket y las rooms
type WebSocketHub struct {
	// Rooms organiza clientes por nombre de room
	Rooms map[string]map[*Client]bool

	// Canales de comunicación
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan *BroadcastMessage

	writeTimeout time.Duration
	pongTimeout  time.Duration
	sendBuffer   int
	done         chan struct{}

	mu sync.RWMutex
}

// BroadcastMessage contiene el mensaje y el nombre de la room objetivo
type BroadcastMessage struct {
	RoomName string
	Message  []byte
}

// Upgrader de HTTP a WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // el tablero se sirve desde otro origen
	},
}

// NewWebSocketHub crea un nuevo hub de WebSocket
func NewWebSocketHub(writeTimeout, pongTimeout time.Duration, sendBuffer int) *WebSocketHub {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	if pongTimeout <= 0 {
		pongTimeout = 60 * time.Second
	}
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &WebSocketHub{
		Rooms:        make(map[string]map[*Client]bool),
		Register:     make(chan *Client, 10),
		Unregister:   make(chan *Client, 10),
		Broadcast:    make(chan *BroadcastMessage, 100),
		writeTimeout: writeTimeout,
		pongTimeout:  pongTimeout,
		sendBuffer:   sendBuffer,
		done:         make(chan struct{}),
	}
}

// Run inicia el hub de WebSocket (debe ejecutarse en goroutine) hasta que ctx se cancele
func (h *WebSocketHub) Run(ctx context.Context) {
	log.Println("🔌 WebSocket Hub iniciado")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			log.Println("🛑 WebSocket Hub detenido")
			return

		case client := <-h.Register:
			h.mu.Lock()
			if h.Rooms[client.RoomName] == nil {
				h.Rooms[client.RoomName] = make(map[*Client]bool)
				log.Printf("📦 Room creada: %s", client.RoomName)
			}
			h.Rooms[client.RoomName][client] = true
			total := len(h.Rooms[client.RoomName])
			h.mu.Unlock()
			log.Printf("✅ Cliente %s conectado a room %s (Total: %d)", client.ID, client.RoomName, total)

		case client := <-h.Unregister:
			h.removeClient(client)

		case message := <-h.Broadcast:
			h.mu.RLock()
			clients := make([]*Client, 0, len(h.Rooms[message.RoomName]))
			for client := range h.Rooms[message.RoomName] {
				clients = append(clients, client)
			}
			h.mu.RUnlock()

			for _, client := range clients {
				select {
				case client.Send <- message.Message:
				default:
					// Canal lleno, desconectar cliente
					log.Printf("⚠️  Canal lleno para cliente %s, desconectando", client.ID)
					h.removeClient(client)
				}
			}
		}
	}
}

// removeClient saca al cliente de su room y cierra su canal de envío
func (h *WebSocketHub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.Rooms[client.RoomName]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.Send)
	log.Printf("❌ Cliente %s desconectado de room %s (Restantes: %d)", client.ID, client.RoomName, len(clients))

	if len(clients) == 0 {
		delete(h.Rooms, client.RoomName)
	}
}

func (h *WebSocketHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, clients := range h.Rooms {
		for client := range clients {
			close(client.Send)
		}
		delete(h.Rooms, room)
	}
}

// NotifyKPIUpdate envía un tick de KPIs a la room kpis
func (h *WebSocketHub) NotifyKPIUpdate(update models.KPIUpdate) {
	h.sendMessageToRoom(RoomKPIs, WebSocketMessage{
		Type:       MessageTypeKPITick,
		Timestamp:  update.Timestamp.Format(time.RFC3339),
		SnapshotID: update.SnapshotID,
		Data:       update,
	})
}

// SubscribeToUpdates reenvía al hub cada actualización recibida por el canal
func (h *WebSocketHub) SubscribeToUpdates(updates <-chan models.KPIUpdate) {
	go func() {
		log.Println("🔔 WebSocket suscrito al canal de KPIs")
		for update := range updates {
			h.NotifyKPIUpdate(update)
		}
		log.Println("⚠️  Canal de KPIs cerrado, suscripción terminada")
	}()
}

// sendMessageToRoom encola un mensaje para todos los clientes de una room
func (h *WebSocketHub) sendMessageToRoom(roomName string, message WebSocketMessage) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		log.Printf("❌ Error al serializar mensaje WebSocket: %v", err)
		return
	}

	select {
	case h.Broadcast <- &BroadcastMessage{RoomName: roomName, Message: jsonData}:
	default:
		log.Printf("⚠️  Cola de broadcast llena, mensaje %s descartado", message.Type)
	}
}

// GetRoomStats retorna estadísticas de las rooms
func (h *WebSocketHub) GetRoomStats() map[string]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := make(map[string]int)
	for roomName, clients := range h.Rooms {
		stats[roomName] = len(clients)
	}
	return stats
}

// readPump lee mensajes del cliente WebSocket
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.Unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(c.Hub.pongTimeout))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Hub.pongTimeout))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("⚠️  Error de lectura WebSocket: %v", err)
			}
			return
		}
	}
}

// writePump escribe mensajes al cliente WebSocket
func (c *Client) writePump() {
	ticker := time.NewTicker(c.Hub.pongTimeout * 9 / 10)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Hub.writeTimeout))
			if !ok {
				// Hub cerró el canal
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Hub.writeTimeout))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleWebSocketConnection maneja una nueva conexión WebSocket.
// initial, si no es nil, produce el primer mensaje enviado al cliente.
func HandleWebSocketConnection(hub *WebSocketHub, initial func() WebSocketMessage) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomName := c.Param("room")
		if roomName != RoomKPIs {
			RespondWithError(c, http.StatusBadRequest, ErrCodeInvalidRoom,
				"Room inválida",
				gin.H{"room": roomName, "available_rooms": []string{RoomKPIs}},
				fmt.Sprintf("Conéctate a /ws/%s", RoomKPIs))
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("❌ Error al hacer upgrade WebSocket: %v", err)
			return
		}

		client := &Client{
			ID:       uuid.NewString(),
			Conn:     conn,
			RoomName: roomName,
			Send:     make(chan []byte, hub.sendBuffer),
			Hub:      hub,
		}

		if initial != nil {
			if data, err := json.Marshal(initial()); err == nil {
				client.Send <- data
			}
		}

		select {
		case client.Hub.Register <- client:
		case <-client.Hub.done:
			conn.Close()
			return
		}

		go client.writePump()
		go client.readPump()

		log.Printf("🔌 Cliente WebSocket conectado: %s (%s) → %s", client.ID, c.ClientIP(), roomName)
	}
}

// SetupWebSocketRoutes configura las rutas de WebSocket en el router
func SetupWebSocketRoutes(router *gin.Engine, hub *WebSocketHub, initial func() WebSocketMessage) {
	// Endpoint REST para estadísticas de WebSocket
	router.GET("/ws/stats", func(c *gin.Context) {
		stats := hub.GetRoomStats()
		total := 0
		for _, count := range stats {
			total += count
		}
		c.JSON(http.StatusOK, gin.H{
			"rooms":         stats,
			"total_rooms":   len(stats),
			"total_clients": total,
		})
	})

	// WebSocket endpoint: ws://host/ws/kpis
	router.GET("/ws/:room", HandleWebSocketConnection(hub, initial))
}
