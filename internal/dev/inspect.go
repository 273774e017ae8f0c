package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pathway-dev/pathway/pkg/router"
)

// InspectMessageType represents the type of inspector message.
type InspectMessageType string

const (
	InspectTypeRoutes InspectMessageType = "routes"
	InspectTypeError  InspectMessageType = "error"
)

// InspectMessage is pushed to connected clients whenever the route table
// changes or a rebuild fails.
type InspectMessage struct {
	Type   InspectMessageType `json:"type"`
	Routes []router.RouteInfo `json:"routes,omitempty"`
	Error  string             `json:"error,omitempty"`
}

// client is one connected inspector. All writes go through write so the
// replay on connect and concurrent broadcasts never overlap; the
// websocket package allows at most one writer per connection at a time.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// InspectServer manages WebSocket connections for live route table
// inspection.
type InspectServer struct {
	clients  map[*websocket.Conn]*client
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// last is replayed to clients as they connect.
	last *InspectMessage
}

// NewInspectServer creates a new inspector server.
func NewInspectServer() *InspectServer {
	return &InspectServer{
		clients: make(map[*websocket.Conn]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local tooling only
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (s *InspectServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[conn] = c
	last := s.last
	s.mu.Unlock()

	if last != nil {
		if data, err := json.Marshal(last); err == nil {
			c.write(data)
		}
	}

	// Hold the connection until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// NotifyRoutes pushes a fresh route table to all clients.
func (s *InspectServer) NotifyRoutes(routes []router.RouteInfo) {
	s.broadcast(InspectMessage{Type: InspectTypeRoutes, Routes: routes})
}

// NotifyError pushes a rebuild error to all clients.
func (s *InspectServer) NotifyError(errMsg string) {
	s.broadcast(InspectMessage{Type: InspectTypeError, Error: errMsg})
}

// broadcast sends a message to all connected clients and records it for
// replay to future ones.
func (s *InspectServer) broadcast(msg InspectMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.last = &msg
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			s.mu.Lock()
			delete(s.clients, c.conn)
			s.mu.Unlock()
			c.conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *InspectServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Close closes all client connections.
func (s *InspectServer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
}
