package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer bundles the socket.io server with a map of live connections,
// keyed by socket id. The socket id doubles as the player's opaque
// connection-scoped identity.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track socket id -> socket connections
	Connections map[string]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[string]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(id string, client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[id] = client
}

func (s *SocketServer) RemoveConnection(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, id)
}

func (s *SocketServer) GetConnection(id string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[id]
	return client, exists
}

func (s *SocketServer) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Connections)
}
