package repository

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

// SessionObserver mirrors every engine notice into redis.
type SessionObserver struct {
	logger *slog.Logger
	repo   SessionRepository
}

func NewSessionObserver(logger *slog.Logger, repo SessionRepository) *SessionObserver {
	return &SessionObserver{
		logger: logger.With("component", "session_observer"),
		repo:   repo,
	}
}

func (that *SessionObserver) Observe(ctx context.Context, notice entity.Notice) {
	log := that.logger.With("method", "Observe", "notice", notice.Kind)

	if err := that.repo.Save(ctx, notice.Session); err != nil {
		log.Error("failed to save session snapshot", "error", err)
	}

	if err := that.repo.Publish(ctx, notice); err != nil {
		log.Error("failed to publish notice", "error", err)
	}
}
