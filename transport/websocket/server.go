package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type gatewayDep interface {
	Select(symbol entity.Cell) error
	Selected() entity.Cell
	PlaceSelected(ctx context.Context, cell int) error
	Submit(ctx context.Context, command entity.Command) error
}

type sessionDep interface {
	Session() entity.GameSession
}

type clientCounter interface {
	IncOnlineClients()
	DecOnlineClients()
}

// Timing is quoted back to the player when the ledger refuses a dispute.
type Timing struct {
	CancelWait  time.Duration
	TurnTimeout time.Duration
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

// Server is the presentation-facing boundary: it turns client actions into
// commands and pushes every engine notice to all connected clients.
type Server struct {
	logger   *slog.Logger
	gateway  gatewayDep
	sessions sessionDep
	counter  clientCounter
	stake    *big.Int
	timing   Timing
	upgrader websocket.Upgrader

	clientsMutex sync.RWMutex
	clients      map[*client]struct{}

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gateway gatewayDep, sessions sessionDep, counter clientCounter, stake *big.Int, timing Timing) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		gateway:  gateway,
		sessions: sessions,
		counter:  counter,
		stake:    stake,
		timing:   timing,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients:  make(map[*client]struct{}),
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionSessionGet] = server.handleSessionGet
	server.handlers[actionSymbolSelect] = server.handleSymbolSelect
	server.handlers[actionGameJoin] = server.handleGameJoin
	server.handlers[actionGamePlace] = server.handleGamePlace
	server.handlers[actionGameCancel] = server.handleGameCancel
	server.handlers[actionGameForfeit] = server.handleGameForfeit

	return server
}

func (that *Server) Routes(ctx context.Context) http.Handler {
	router := chi.NewRouter()

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Routes(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Observe pushes an engine notice to every connected client.
func (that *Server) Observe(_ context.Context, notice entity.Notice) {
	payload, err := json.Marshal(Response{Action: actionNotice, Success: true, Message: notice.Message, Notice: &notice})
	if err != nil {
		that.logger.Error("failed to marshal notice", "method", "Observe", "error", err)
		return
	}

	that.clientsMutex.RLock()
	defer that.clientsMutex.RUnlock()

	for c := range that.clients {
		c.enqueue(payload)
	}
}

func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(uuid.NewString(), that.logger, conn)
	that.register(c)
	defer that.unregister(c)

	log.Info("WebSocket connection established", "client_id", c.id)

	go c.writePump()

	that.sendSession(c, actionSessionGet)
	c.readPump(ctx, func(ctx context.Context, raw []byte) {
		that.handleMessage(ctx, c, raw)
	})
}

func (that *Server) handleMessage(ctx context.Context, c *client, raw []byte) {
	log := that.logger.With("method", "handleMessage", "client_id", c.id)

	var message Message
	if err := json.Unmarshal(raw, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		that.sendError(c, actionError, "malformed message")

		return
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		that.sendError(c, message.Action, "unknown action")

		return
	}

	if err := handler(ctx, c, &message); err != nil {
		log.Error("error processing message", "action", message.Action, "error", err)
	}
}

func (that *Server) register(c *client) {
	that.clientsMutex.Lock()
	that.clients[c] = struct{}{}
	that.clientsMutex.Unlock()

	that.counter.IncOnlineClients()
}

func (that *Server) unregister(c *client) {
	that.clientsMutex.Lock()
	delete(that.clients, c)
	that.clientsMutex.Unlock()

	c.close()
	that.counter.DecOnlineClients()
}

func (that *Server) send(c *client, response Response) {
	payload, err := json.Marshal(response)
	if err != nil {
		that.logger.Error("failed to marshal response", "action", response.Action, "error", err)
		return
	}

	c.enqueue(payload)
}

func (that *Server) sendError(c *client, action, message string) {
	that.send(c, Response{Action: action, Message: message})
}

func (that *Server) sendSession(c *client, action string) {
	view := that.sessions.Session().View()

	that.send(c, Response{
		Action:   action,
		Success:  true,
		Selected: selectedString(that.gateway.Selected()),
		Session:  &view,
	})
}
