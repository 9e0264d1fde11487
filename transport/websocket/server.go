package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type moveUseCase interface {
	MakeAIMove(ctx context.Context, req *entity.MoveRequest) (entity.Move, error)
}

type Server struct {
	logger      *slog.Logger
	moveUseCase moveUseCase
	conf        config.HTTPServer
	upgrader    websocket.Upgrader

	handlers map[string]func(ctx context.Context, message *Message, conn *websocket.Conn) error
}

func New(logger *slog.Logger, moveUseCase moveUseCase, conf config.HTTPServer) *Server {
	server := &Server{
		logger:      logger,
		moveUseCase: moveUseCase,
		conf:        conf,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, *Message, *websocket.Conn) error),
	}

	server.handlers[actionAIMove] = server.handleAIMove

	return server
}

func (that *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and shuts it down once ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	log := that.logger.With("method", "Start")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  that.conf.ReadTimeout,
		WriteTimeout: that.conf.WriteTimeout,
		IdleTimeout:  that.conf.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	shutdownDone := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(shutdownDone)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), that.conf.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("failed to shut down WebSocket server", "error", err)
		}
	})

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		return nil
	}

	stop()

	return fmt.Errorf("failed to start server: %w", err)
}

// serveWS - upgrades the connection and processes messages until the client leaves.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	ctx := req.Context()

	// hijacked connections are not closed by http.Server.Shutdown
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		if err := that.extendReadDeadline(conn); err != nil {
			return err
		}

		_, reqBody, err := conn.ReadMessage()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.Info("client closed connection")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(conn, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}

func (that *Server) extendReadDeadline(conn *websocket.Conn) error {
	if that.conf.IdleTimeout <= 0 {
		return nil
	}

	if err := conn.SetReadDeadline(time.Now().Add(that.conf.IdleTimeout)); err != nil {
		return fmt.Errorf("failed to set read deadline: %w", err)
	}

	return nil
}
