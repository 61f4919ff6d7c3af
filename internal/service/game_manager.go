// service/game_manager.go
package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/slashvibe/vibechess/internal/model"
	"github.com/slashvibe/vibechess/internal/ws"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type GameManager struct {
	games            map[string]*Session
	queue            *model.Queue
	matchingChannels map[string]chan string
	mu               sync.RWMutex
	stop             chan struct{}
	stopOnce         sync.Once
}

func NewGameManager(matchmakingInterval time.Duration) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*Session),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		stop:             make(chan struct{}),
	}

	go gm.processMatchmaking(matchmakingInterval)

	return gm
}

// Close stops the matchmaking loop.
func (gm *GameManager) Close() {
	gm.stopOnce.Do(func() { close(gm.stop) })
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existingCh, exists := gm.matchingChannels[playerID]; exists {
		// Remove from map first to prevent any new writes
		delete(gm.matchingChannels, playerID)
		close(existingCh)
	}
	gm.matchingChannels[playerID] = ch
}

func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	// The channel is closed by whoever removes it after a send, or by
	// RegisterMatchmakingChannel when replaced. Only drop our own entry.
	if current, exists := gm.matchingChannels[playerID]; exists && current == ch {
		delete(gm.matchingChannels, playerID)
	}
}

func (gm *GameManager) processMatchmaking(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-gm.stop:
			return
		case <-ticker.C:
			for gm.matchNextPair() {
			}
		}
	}
}

// matchNextPair seats the two longest-waiting players in a new game and
// notifies them. It reports whether a pair was matched.
func (gm *GameManager) matchNextPair() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	first, second, ok := gm.queue.GetNextPair()
	if !ok {
		return false
	}

	gameID := uuid.New().String()
	session := NewSession(gameID, model.NewGameState())
	p1Color, _ := session.AddPlayer(first.PlayerID)
	p2Color, _ := session.AddPlayer(second.PlayerID)
	gm.games[gameID] = session
	log.Printf("matchmaking: %s (%s, waited %s) vs %s (%s, waited %s) in game %s",
		first.PlayerID, p1Color, time.Since(first.JoinedAt).Round(time.Millisecond),
		second.PlayerID, p2Color, time.Since(second.JoinedAt).Round(time.Millisecond), gameID)

	gm.notifyMatch(first.PlayerID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
	gm.notifyMatch(second.PlayerID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
	return true
}

// notifyMatch sends event to playerID's matchmaking channel, if any, and
// retires the channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	msg, err := ws.NewMessage(ws.MessageTypeMatchFound, event)
	if err != nil {
		log.Printf("matchmaking: failed to encode event for %s: %v", playerID, err)
		return
	}
	encoded, err := json.Marshal(msg)
	if err != nil {
		log.Printf("matchmaking: failed to encode event for %s: %v", playerID, err)
		return
	}

	select {
	case ch <- string(encoded):
	default:
		log.Printf("matchmaking: player %s is not listening", playerID)
	}
	delete(gm.matchingChannels, playerID)
	close(ch)
}

// CreateGame registers a new session under gameID starting from state.
func (gm *GameManager) CreateGame(gameID string, state model.GameState) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = NewSession(gameID, state)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// GameIDs returns the ids of all sessions in sorted order.
func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := maps.Keys(gm.games)
	slices.Sort(ids)
	return ids
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(playerID)
}

func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	return gm.queue.Remove(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, notation string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.MakeMove(playerID, notation)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
