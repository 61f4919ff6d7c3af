package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/slashvibe/vibechess/internal/model"
	"github.com/slashvibe/vibechess/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

// CreateGame starts a game from the standard position, or from fen when it
// is not empty.
func (gs *GameService) CreateGame(fen string) (string, error) {
	state := model.NewGameState()
	if fen != "" {
		var err error
		if state, err = model.ParseFEN(fen); err != nil {
			return "", err
		}
	}

	gameID := uuid.New().String()
	if err := gs.gameManager.CreateGame(gameID, state); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) bool {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, notation string) (model.GameState, error) {
	return gs.gameManager.MakeMove(gameID, playerID, notation)
}

func (gs *GameService) LegalMoves(gameID string) ([]model.Move, error) {
	state, err := gs.gameManager.GetGameState(gameID)
	if err != nil {
		return nil, err
	}
	return state.LegalMoves(), nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

// Send writes msg to conn through gameID's session.
func (gs *GameService) Send(gameID string, conn Conn, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Send(conn, msg)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}
