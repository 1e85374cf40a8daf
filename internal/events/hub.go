package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ecolife/internal/models"
	"ecolife/internal/workorder"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 64
)

// Event types pushed to connected clients
const (
	TypeSchedule          = "schedule.computed"
	TypeWorkOrderCreated  = "workorder.created"
	TypeWorkOrderArchived = "workorder.archived"
	TypeTaskChanged       = "task.changed"
)

// Event is one message of the live feed
type Event struct {
	Type        string                  `json:"type"`
	At          time.Time               `json:"at"`
	Line        int                     `json:"line,omitempty"`
	Due         *int                    `json:"due,omitempty"`
	WorkOrderID string                  `json:"workOrderId,omitempty"`
	Change      string                  `json:"change,omitempty"`
	Task        *models.InteractiveTask `json:"task,omitempty"`
	Persisted   *bool                   `json:"persisted,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub broadcasts work order activity to websocket clients
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers the connection
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump drains the connection so control frames are processed; clients never send data
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast sends the event to every client, dropping it for clients whose buffer is full
func (h *Hub) Broadcast(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping event")
		}
	}
}

func (h *Hub) ScheduleComputed(line, due int, _ time.Duration) {
	h.Broadcast(Event{Type: TypeSchedule, Line: line, Due: &due})
}

func (h *Hub) WorkOrderCreated(wo models.WorkOrder) {
	h.Broadcast(Event{Type: TypeWorkOrderCreated, Line: wo.Line, WorkOrderID: wo.ID})
}

func (h *Hub) WorkOrderArchived(wo models.WorkOrder, persisted bool) {
	h.Broadcast(Event{Type: TypeWorkOrderArchived, Line: wo.Line, WorkOrderID: wo.ID, Persisted: &persisted})
}

func (h *Hub) TaskChanged(change workorder.Change) {
	task := change.Task
	h.Broadcast(Event{Type: TypeTaskChanged, WorkOrderID: change.WorkOrderID, Change: change.Kind, Task: &task})
}
