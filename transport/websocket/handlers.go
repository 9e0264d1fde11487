package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const actionAIMove = "ai:move"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (that *Server) handleAIMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleAIMove")

	var req entity.MoveRequest
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Debug("malformed payload, using an empty request", "error", err)
			req = entity.MoveRequest{}
		}
	}

	move, err := that.moveUseCase.MakeAIMove(ctx, &req)
	if err != nil {
		if !errors.Is(err, apperror.ErrInvalidArgument) {
			log.Error("failed to make ai move", "error", err)
		}
		return that.sendMessage(conn, msg.Action, entity.NewErrorResponse(err))
	}

	return that.sendMessage(conn, msg.Action, entity.MoveResponse{Move: move})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if that.conf.WriteTimeout > 0 {
		if err = conn.SetWriteDeadline(time.Now().Add(that.conf.WriteTimeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadBytes}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, entity.ErrorResponse{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
