package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/sos-client/internal/config"
	"github.com/rocketscienceinc/sos-client/internal/entity"
	"github.com/rocketscienceinc/sos-client/internal/monitor"
	"github.com/rocketscienceinc/sos-client/internal/repository"
	"github.com/rocketscienceinc/sos-client/internal/repository/storage"
	"github.com/rocketscienceinc/sos-client/internal/transport/ethereum"
	"github.com/rocketscienceinc/sos-client/internal/usecase"
	"github.com/rocketscienceinc/sos-client/transport/rest"
	"github.com/rocketscienceinc/sos-client/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stake, err := conf.Ledger.GetStake()
	if err != nil {
		return fmt.Errorf("invalid ledger config: %w", err)
	}

	ledger, err := ethereum.Dial(ctx, logger, conf.Ledger)
	if err != nil {
		return fmt.Errorf("could not connect to ledger: %w", err)
	}
	defer ledger.Close()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mon, err := monitor.NewMonitor(registry, conf.Metrics.Namespace)
	if err != nil {
		return fmt.Errorf("could not register metrics: %w", err)
	}

	local := ledger.LocalAddress()
	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Redis.SnapshotTTL)

	reconciler := usecase.NewReconciler(logger, local, conf.Reconciler.FaultThreshold)
	engine := usecase.NewEngine(logger, reconciler, mon)
	gateway := usecase.NewGateway(logger, ledger, engine, engine, mon)

	wsServer := websocket.New(logger, gateway, engine, mon, stake, websocket.Timing{
		CancelWait:  conf.Ledger.CancelWait,
		TurnTimeout: conf.Ledger.TurnTimeout,
	})
	restServer := rest.New(logger, engine, registry)

	engine.Attach(repository.NewSessionObserver(logger, sessionRepo), wsServer)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting event loop", "player", local.Hex(), "variant", ledger.Variant())
		return engine.Run(groupCtx, ledger)
	})

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}

		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}

		return nil
	})

	if conf.Ledger.AutoJoin {
		group.Go(func() error {
			select {
			case <-engine.Ready():
			case <-groupCtx.Done():
				return nil
			}

			if joinErr := gateway.Submit(groupCtx, entity.CreateOrJoin{Stake: stake}); joinErr != nil {
				log.Error("automatic join failed", "error", joinErr)
			}

			return nil
		})
	}

	err = group.Wait()

	// the snapshot only describes this process's session
	if delErr := sessionRepo.DeleteByPlayer(context.Background(), local); delErr != nil {
		log.Error("could not delete session snapshot", "error", delErr)
	}

	if err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
