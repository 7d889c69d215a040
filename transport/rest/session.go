package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

type sessionDep interface {
	Session() entity.GameSession
}

type SessionHandler interface {
	SessionHandler(w http.ResponseWriter, _ *http.Request)
}

type sessionHandler struct {
	logger   *slog.Logger
	sessions sessionDep
}

func NewSessionHandler(logger *slog.Logger, sessions sessionDep) SessionHandler {
	return &sessionHandler{
		logger:   logger,
		sessions: sessions,
	}
}

// SessionHandler writes the current session as JSON.
func (that *sessionHandler) SessionHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(that.sessions.Session().View()); err != nil {
		that.logger.Error("failed to encode session", "method", "SessionHandler", "error", err)
	}
}
