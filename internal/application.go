package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

const redisConnectTimeout = 3 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go watchSignals(ctx, log, sigs, cancel)

	defaults, err := requestDefaults(conf.Engine)
	if err != nil {
		return err
	}

	moveRepo, closeCache := connectCache(ctx, log, conf)
	defer closeCache()

	solver := service.NewSolverService(logger.With("component", "solver"), moveRepo)
	bot := service.NewBotService(logger.With("component", "bot"), solver, service.NewEntropy(), conf.Engine.MediumOptimalRate)
	moveUseCase := usecase.NewMoveUseCase(logger.With("component", "usecase"), bot, defaults)

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger.With("component", "rest"), moveUseCase, conf.Server)
		if httpErr := httpServer.Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger.With("component", "websocket"), moveUseCase, conf.Server)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err //nolint: wrapcheck // already wrapped by the server goroutines
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// watchSignals cancels the application on the first signal and returns once ctx is done.
func watchSignals(ctx context.Context, log *slog.Logger, sigs <-chan os.Signal, cancel context.CancelFunc) {
	select {
	case sig := <-sigs:
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	case <-ctx.Done():
	}
}

func requestDefaults(conf config.Engine) (entity.RequestDefaults, error) {
	player, err := entity.ParseMark(conf.DefaultPlayer)
	if err != nil {
		return entity.RequestDefaults{}, fmt.Errorf("invalid engine default-player: %w", err)
	}

	difficulty := entity.Difficulty(conf.DefaultDifficulty)
	if !difficulty.IsValid() {
		return entity.RequestDefaults{}, fmt.Errorf("invalid engine default-difficulty %q", conf.DefaultDifficulty)
	}

	return entity.RequestDefaults{Player: player, Difficulty: difficulty}, nil
}

// connectCache returns a nil repository when the cache is disabled or Redis is unreachable.
func connectCache(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveRepository, func()) {
	if !conf.Cache.Enabled {
		log.Info("move cache disabled")
		return nil, func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	redisStorage, err := storage.NewRedisStorage(connectCtx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("could not connect to redis storage, running without move cache", "error", err)
		return nil, func() {}
	}

	log.Info("move cache enabled", "addr", conf.Redis.GetRedisAddr(), "ttl", conf.Cache.TTL)

	return repository.NewMoveRepository(redisStorage.Connection, conf.Cache.TTL), func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}
}
