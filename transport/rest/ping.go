package rest

import (
	"log/slog"
	"net/http"
)

type readyDep interface {
	Ready() <-chan struct{}
}

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
}

type pingHandler struct {
	logger *slog.Logger
	engine readyDep
}

func NewPingHandler(logger *slog.Logger, engine readyDep) PingHandler {
	return &pingHandler{
		logger: logger,
		engine: engine,
	}
}

// PingHandler answers pong once the ledger history has been reconciled and
// 503 before that.
func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	body := "pong"
	select {
	case <-that.engine.Ready():
		w.WriteHeader(http.StatusOK)
	default:
		body = "replaying ledger history"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if _, err := w.Write([]byte(body)); err != nil {
		that.logger.Error("failed to write ping response", "method", "PingHandler", "error", err)
	}
}
