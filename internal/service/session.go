package service

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/slashvibe/vibechess/internal/model"
	"github.com/slashvibe/vibechess/internal/ws"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // serializes writes; connections allow one writer
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Session owns one game: the current engine state, the seated players and
// the connections watching it.
type Session struct {
	ID          string
	mu          sync.Mutex
	state       model.GameState
	players     model.Players
	connections *GameConnections
}

// NewSession starts a game from state, usually model.NewGameState().
func NewSession(id string, state model.GameState) *Session {
	return &Session{
		ID:          id,
		state:       state,
		connections: NewGameConnections(),
	}
}

func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	color, ok := s.players.Seat(playerID)
	if !ok {
		return "", ErrGameFull
	}
	return color, nil
}

func (s *Session) State() model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Players() model.Players {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.players
}

// MakeMove plays notation for playerID, who must hold the side to move.
// The new state is broadcast to every connection.
func (s *Session) MakeMove(playerID string, notation string) (model.GameState, error) {
	s.mu.Lock()
	color, ok := s.players.ColorOf(playerID)
	if !ok {
		s.mu.Unlock()
		return model.GameState{}, ErrNotInGame
	}
	if color != s.state.Turn {
		s.mu.Unlock()
		return model.GameState{}, ErrNotYourTurn
	}

	next, err := s.state.MakeMove(notation)
	if err != nil {
		s.mu.Unlock()
		return model.GameState{}, err
	}
	s.state = next
	s.mu.Unlock()

	log.Printf("game %s: %s played %s (%s)", s.ID, color, notation, next.Outcome())
	go s.broadcastState()
	return next, nil
}

func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}

	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Printf("game %s: registered connection %p for player %s", s.ID, conn, playerID)

	go s.broadcastState()
	return nil
}

// UnregisterConnection removes playerID's connection if it is still conn.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		delete(s.connections.connections, playerID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

// broadcastState sends the current state to every connection. The state is
// read under writeMu, so successive broadcasts never go backwards.
func (s *Session) broadcastState() {
	s.connections.writeMu.Lock()
	defer s.connections.writeMu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeGameState, s.State())
	if err != nil {
		log.Printf("game %s: failed to encode state: %v", s.ID, err)
		return
	}

	// Snapshot connections so writes happen without holding the lock
	s.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		activeConnections[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", s.ID, playerID, err)
			s.UnregisterConnection(playerID, conn)
		}
	}
}

// Send writes msg to a single connection, serialized with broadcasts.
func (s *Session) Send(conn Conn, msg ws.Message) error {
	s.connections.writeMu.Lock()
	defer s.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}
