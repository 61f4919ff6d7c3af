package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/slashvibe/vibechess/internal/middleware"
	"github.com/slashvibe/vibechess/internal/model"
	"github.com/slashvibe/vibechess/internal/service"
	"github.com/slashvibe/vibechess/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		wsc.writeError(c, err)
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read error: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(gameID, c, fmt.Errorf("malformed message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(gameID, c, err)
		}
	}
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move payload: %w", err)
		}
		// The new state reaches this connection through the session broadcast
		_, err := wsc.gameService.HandleMove(gameID, playerID, move.Notation)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// HandleMatchmaking queues the player and holds the connection open until a
// match is found or the client goes away.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)

	ch := make(chan string, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID, ch)

	if err := wsc.gameService.JoinMatchmaking(playerID); err != nil && !errors.Is(err, model.ErrAlreadyQueued) {
		wsc.writeError(c, err)
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case event, ok := <-ch:
		if ok {
			if err := c.WriteMessage(websocket.TextMessage, []byte(event)); err != nil {
				log.Printf("matchmaking: failed to notify %s: %v", playerID, err)
			}
		}
	case <-closed:
		wsc.gameService.LeaveMatchmaking(playerID)
	}
}

func errorMessage(err error) ws.Message {
	msg, _ := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()})
	return msg
}

// sendError reports err on a connection that belongs to gameID's session.
func (wsc *WebSocketController) sendError(gameID string, c *websocket.Conn, err error) {
	if sendErr := wsc.gameService.Send(gameID, c, errorMessage(err)); sendErr != nil {
		log.Printf("failed to send error: %v", sendErr)
	}
}

// writeError reports err on a connection no session writes to.
func (wsc *WebSocketController) writeError(c *websocket.Conn, err error) {
	if writeErr := c.WriteJSON(errorMessage(err)); writeErr != nil {
		log.Printf("failed to send error: %v", writeErr)
	}
}
