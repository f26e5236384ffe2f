package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/service"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-hotseat/transport/rest"
)

// RunApp - runs the HTTP application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	matchRepo, closeRepo, err := newMatchRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeRepo(log)

	matchService := service.NewMatchService(logger, matchRepo, tictactoe.Names{
		First:  conf.Players.First,
		Second: conf.Players.Second,
	})
	router := rest.NewRouter(rest.NewHandlers(logger, matchService, conf.SessionTTL))

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}

func newMatchRepository(ctx context.Context, conf *config.Config) (repository.MatchRepository, func(*slog.Logger), error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemoryMatchRepository(conf.SessionTTL), func(*slog.Logger) {}, nil
	}

	redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func(log *slog.Logger) {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMatchRepository(redisStorage, conf.SessionTTL), closeFn, nil
}
