package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

// SessionRepository keeps the latest snapshot of the local session so the
// presentation layer can read it without talking to the engine.
type SessionRepository interface {
	Save(ctx context.Context, view entity.SessionView) error
	GetByPlayer(ctx context.Context, player common.Address) (entity.SessionView, error)
	Publish(ctx context.Context, notice entity.Notice) error
	DeleteByPlayer(ctx context.Context, player common.Address) error
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func SessionKey(player common.Address) string {
	return "session:" + entity.PlayerKey(player)
}

func NoticeChannel(player common.Address) string {
	return SessionKey(player) + ":notices"
}

// Save keeps the snapshot unless a newer version is already stored.
func (that *dbSession) Save(ctx context.Context, view entity.SessionView) error {
	player, err := playerOf(view)
	if err != nil {
		return err
	}

	stored, err := that.GetByPlayer(ctx, player)
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
	case err != nil:
		return err
	case stored.Version > view.Version:
		return nil
	}

	viewJSON, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Set(ctx, SessionKey(player), viewJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByPlayer(ctx context.Context, player common.Address) (entity.SessionView, error) {
	response, err := that.client.Get(ctx, SessionKey(player)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.SessionView{}, apperror.ErrSessionNotFound
	}

	if err != nil {
		return entity.SessionView{}, fmt.Errorf("failed to get session by player: %w", err)
	}

	var view entity.SessionView
	if err = json.Unmarshal([]byte(response), &view); err != nil {
		return entity.SessionView{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return view, nil
}

func (that *dbSession) Publish(ctx context.Context, notice entity.Notice) error {
	player, err := playerOf(notice.Session)
	if err != nil {
		return err
	}

	noticeJSON, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("could not marshal notice: %w", err)
	}

	if err = that.client.Publish(ctx, NoticeChannel(player), noticeJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish notice: %w", err)
	}

	return nil
}

func (that *dbSession) DeleteByPlayer(ctx context.Context, player common.Address) error {
	if err := that.client.Del(ctx, SessionKey(player)).Err(); err != nil {
		return fmt.Errorf("failed to delete session by player: %w", err)
	}

	return nil
}

func playerOf(view entity.SessionView) (common.Address, error) {
	if !common.IsHexAddress(view.LocalPlayer) {
		return common.Address{}, fmt.Errorf("session without a valid local player %q", view.LocalPlayer)
	}

	return common.HexToAddress(view.LocalPlayer), nil
}
