package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

var ErrNotConnected = errors.New("user not connected")

// Manager keeps track of active user websocket connections.
type Manager struct {
	mu          sync.RWMutex
	connections map[uint]*websocket.Conn // userID -> conn
}

func NewManager() *Manager {
	return &Manager{connections: make(map[uint]*websocket.Conn)}
}

// Register registers a user connection, replacing any existing one.
func (m *Manager) Register(userID uint, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.connections[userID]; ok && old != conn {
		// close old connection to avoid leaks
		_ = old.Close()
	}
	m.connections[userID] = conn
}

// Unregister removes a user connection.
func (m *Manager) Unregister(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conn, ok := m.connections[userID]; ok {
		_ = conn.Close()
		delete(m.connections, userID)
	}
}

// SendToUser sends a text message to a user if connected.
func (m *Manager) SendToUser(userID uint, payload []byte) error {
	m.mu.RLock()
	conn, ok := m.connections[userID]
	m.mu.RUnlock()
	if !ok || conn == nil {
		return ErrNotConnected
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// IsConnected returns whether a user is currently connected.
func (m *Manager) IsConnected(userID uint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.connections[userID]
	return ok
}

// List returns a copy of current connected user IDs.
func (m *Manager) List() []uint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uint, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
