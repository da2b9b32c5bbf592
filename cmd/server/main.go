package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	natsclient "github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	socialhttp "github.com/riftbook/rift-social/internal/adapter/inbound/http"
	natsadapter "github.com/riftbook/rift-social/internal/adapter/outbound/nats"
	"github.com/riftbook/rift-social/internal/adapter/outbound/postgres"
	rediscache "github.com/riftbook/rift-social/internal/adapter/outbound/redis"
	"github.com/riftbook/rift-social/internal/adapter/outbound/riot"
	"github.com/riftbook/rift-social/internal/app/command"
	"github.com/riftbook/rift-social/internal/app/query"
	"github.com/riftbook/rift-social/internal/app/service"
	"github.com/riftbook/rift-social/internal/config"
	"github.com/riftbook/rift-social/internal/domain/event"
	"github.com/riftbook/rift-social/internal/domain/model"
)

// topMasteryCount is how many champion masteries the upstream is asked
// for per player.
const topMasteryCount = 3

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting social service",
		zap.String("address", cfg.Server.Address()),
	)

	// Connect to PostgreSQL
	pool, err := connectPostgres(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	// Connect to Redis
	redisClient, err := connectRedis(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to nats: %w", err)
	}
	defer natsConn.Close()

	// Outbound adapters
	requestRepo := postgres.NewFriendRequestRepository(pool)
	messageRepo := postgres.NewChatMessageRepository(pool)
	entryStore := rediscache.NewEntryStore(redisClient)
	publisher := natsadapter.NewEventPublisher(natsConn, cfg.NATS.SubjectPrefix)
	upstreamClient := riot.NewClient(riot.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})

	// Freshness caches per mutable resource kind
	profiles, err := service.NewFreshness(entryStore,
		func(ctx context.Context, key model.ProfileKey) (*model.Profile, error) {
			return upstreamClient.FetchProfile(ctx, key.Region, key.GameName, key.TagLine)
		},
		service.FreshnessConfig{
			StalenessWindow: cfg.Cache.ProfileStaleness,
			CooldownWindow:  cfg.Cache.ProfileCooldown,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create profile cache: %w", err)
	}

	masteries, err := service.NewFreshness(entryStore,
		func(ctx context.Context, key model.MasteryKey) ([]model.ChampionMastery, error) {
			return upstreamClient.FetchTopMasteries(ctx, key.Region, key.PUUID, topMasteryCount)
		},
		service.FreshnessConfig{
			StalenessWindow: cfg.Cache.MasteryStaleness,
			CooldownWindow:  cfg.Cache.MasteryCooldown,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create mastery cache: %w", err)
	}

	matchLists, err := service.NewFreshness(entryStore,
		func(ctx context.Context, key model.MatchListKey) ([]string, error) {
			return upstreamClient.FetchMatchIDsPage(ctx, key.Region, key.PUUID, key.Page, key.Size)
		},
		service.FreshnessConfig{
			StalenessWindow: cfg.Cache.MatchListStaleness,
			CooldownWindow:  cfg.Cache.MatchListCooldown,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create match list cache: %w", err)
	}

	// Immutable caches for finished matches
	matches := service.NewImmutable(entryStore,
		func(ctx context.Context, key model.MatchKey) (*model.Match, error) {
			return upstreamClient.FetchMatch(ctx, key.Region, key.MatchID)
		},
	)
	timelines := service.NewImmutable(entryStore,
		func(ctx context.Context, key model.TimelineKey) (*model.MatchTimeline, error) {
			return upstreamClient.FetchTimeline(ctx, key.Region, key.MatchID)
		},
	)

	// Presence, with flips published as events
	presence := service.NewPresenceRegistry(requestRepo, func(userID string, online bool) {
		evt := event.NewPresenceChanged(userID, online)
		if err := publisher.Publish(context.Background(), evt); err != nil {
			logger.Warn("failed to publish presence change",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	})

	// Command handlers
	sendFriendRequestHandler := command.NewSendFriendRequestHandler(requestRepo, publisher, logger)
	respondFriendRequestHandler := command.NewRespondFriendRequestHandler(requestRepo, publisher, logger)
	removeFriendHandler := command.NewRemoveFriendHandler(requestRepo, publisher, logger)
	sendChatMessageHandler := command.NewSendChatMessageHandler(messageRepo, publisher, logger)
	refreshProfileHandler := command.NewRefreshProfileHandler(profiles)

	// Query handlers
	getProfileHandler := query.NewGetProfileHandler(profiles)
	getTopMasteriesHandler := query.NewGetTopMasteriesHandler(masteries)
	listMatchIDsHandler := query.NewListMatchIDsHandler(matchLists)
	listMatchDetailsHandler := query.NewListMatchDetailsHandler(listMatchIDsHandler, matches)
	getMatchHandler := query.NewGetMatchHandler(matches)
	getTimelineHandler := query.NewGetTimelineHandler(timelines)
	listFriendsHandler := query.NewListFriendsHandler(requestRepo)
	listIncomingRequestsHandler := query.NewListIncomingRequestsHandler(requestRepo)
	listOutgoingRequestsHandler := query.NewListOutgoingRequestsHandler(requestRepo)
	isOnlineHandler := query.NewIsOnlineHandler(presence)
	chatHistoryHandler := query.NewChatHistoryHandler(messageRepo)

	// Inbound HTTP facade
	handler := socialhttp.NewHandler(socialhttp.HandlerConfig{
		SendFriendRequestHandler:    sendFriendRequestHandler,
		RespondFriendRequestHandler: respondFriendRequestHandler,
		RemoveFriendHandler:         removeFriendHandler,
		SendChatMessageHandler:      sendChatMessageHandler,
		RefreshProfileHandler:       refreshProfileHandler,
		GetProfileHandler:           getProfileHandler,
		GetTopMasteriesHandler:      getTopMasteriesHandler,
		ListMatchIDsHandler:         listMatchIDsHandler,
		ListMatchDetailsHandler:     listMatchDetailsHandler,
		GetMatchHandler:             getMatchHandler,
		GetTimelineHandler:          getTimelineHandler,
		ListFriendsHandler:          listFriendsHandler,
		ListIncomingRequestsHandler: listIncomingRequestsHandler,
		ListOutgoingRequestsHandler: listOutgoingRequestsHandler,
		IsOnlineHandler:             isOnlineHandler,
		ChatHistoryHandler:          chatHistoryHandler,
		Stream:                      socialhttp.NewStreamBridge(publisher, presence, logger),
	}, logger)

	auth := socialhttp.NewAuthenticator(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	health := socialhttp.HealthHandler(map[string]socialhttp.Pinger{
		"postgres": func(ctx context.Context) error { return pool.Ping(ctx) },
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		"nats": func(context.Context) error {
			if !natsConn.IsConnected() {
				return fmt.Errorf("nats disconnected")
			}
			return nil
		},
	}, presence)

	server, err := socialhttp.NewServer(
		socialhttp.ServerConfig{
			Address:      cfg.Server.Address(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		handler,
		auth,
		health,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	// Handle graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("social service started",
		zap.String("address", cfg.Server.Address()),
	)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}

		logger.Info("social service stopped gracefully")
		return nil
	}
}

func connectPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to postgres",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
	)

	return pool, nil
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info("connected to redis", zap.String("address", cfg.Address()))

	return client, nil
}

func connectNATS(cfg config.NATSConfig, logger *zap.Logger) (*natsclient.Conn, error) {
	conn, err := natsclient.Connect(cfg.URL,
		natsclient.MaxReconnects(cfg.MaxReconnects),
		natsclient.ReconnectWait(cfg.ReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	logger.Info("connected to nats", zap.String("url", cfg.URL))

	return conn, nil
}
