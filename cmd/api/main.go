package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medbridge360/backend/internal/adapters/cache"
	"github.com/medbridge360/backend/internal/adapters/compare"
	"github.com/medbridge360/backend/internal/adapters/database"
	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/adapters/providers/distance"
	"github.com/medbridge360/backend/internal/adapters/providers/session"
	"github.com/medbridge360/backend/internal/adapters/search"
	"github.com/medbridge360/backend/internal/api/handlers"
	"github.com/medbridge360/backend/internal/api/routes"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/internal/infrastructure/clients/openai"
	"github.com/medbridge360/backend/internal/infrastructure/clients/postgres"
	"github.com/medbridge360/backend/internal/infrastructure/clients/redis"
	"github.com/medbridge360/backend/internal/infrastructure/clients/typesense"
	"github.com/medbridge360/backend/internal/infrastructure/observability"
	"github.com/medbridge360/backend/internal/seed"
	"github.com/medbridge360/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry is optional and never blocks startup
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Catalog store: Postgres when configured, the seed dataset otherwise
	var catalogRepo repositories.HospitalWriteRepository
	if cfg.Database.Enabled {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		catalogRepo = database.NewHospitalAdapter(pgClient)
		logger.Info().Msg("PostgreSQL catalog initialized")
	} else {
		catalogRepo = memory.NewCatalog(seed.Hospitals(time.Now().UTC()))
		logger.Info().Msg("in-memory catalog initialized from seed dataset")
	}

	// Redis backs the read cache and the compare selection store; both
	// degrade gracefully when it is unavailable.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	var cacheProvider providers.CacheProvider
	readRepo := repositories.HospitalRepository(catalogRepo)
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		readRepo = database.NewCachedHospitalAdapter(catalogRepo, cacheProvider)
		logger.Info().Msg("hospital reads wrapped with Redis cache")
	}

	var compareStore repositories.CompareSetRepository
	comparePolicy := entities.CapacityReject
	if cfg.Matching.CompareEvictOldest {
		comparePolicy = entities.CapacityEvictOldest
	}
	if redisClient != nil {
		compareStore = compare.NewRedisStore(redisClient, cfg.Matching.CompareCapacity, comparePolicy)
	} else {
		compareStore = compare.NewMemoryStore(cfg.Matching.CompareCapacity, comparePolicy)
		logger.Warn().Msg("compare selections held in memory only")
	}

	// Optional full-text search engine
	var searchRepo repositories.HospitalSearchRepository
	if cfg.Typesense.URL != "" {
		typesenseClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			logger.Warn().Err(err).Msg("Typesense unavailable, search falls back to catalog scan")
		} else {
			adapter := search.NewTypesenseAdapter(typesenseClient)
			if err := adapter.InitSchema(ctx); err != nil {
				logger.Warn().Err(err).Msg("failed to init Typesense schema")
			}
			searchRepo = adapter
			logger.Info().Msg("Typesense search initialized")
		}
	}

	// Optional completion provider; without it the chat responder runs on
	// local rules only.
	var completionProvider providers.CompletionProvider
	if cfg.OpenAI.APIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY not set, chat runs on local fallback rules")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize OpenAI client")
		} else {
			completionProvider = openaiClient
		}
	}

	fallbackPolicy := entities.FallbackReturnEmpty
	if cfg.Matching.ZeroMatchReturnsAll {
		fallbackPolicy = entities.FallbackReturnAll
	}
	estimator := distance.NewHaversineEstimator(distance.NewRandomEstimator())
	sessions := session.NewHMACProvider(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)

	// Services
	catalogService := services.NewCatalogService(catalogRepo, searchRepo)
	matchingService := services.NewMatchingService(readRepo, estimator, fallbackPolicy)
	compareService := services.NewCompareService(readRepo, compareStore)
	itineraryService := services.NewItineraryService(readRepo)
	chatService := services.NewChatService(completionProvider, metrics, time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second)

	// Handlers
	defaultWeights := entities.MatchWeights{
		Quality:   cfg.Matching.DefaultQuality,
		Proximity: cfg.Matching.DefaultProximity,
	}
	hospitalHandler := handlers.NewHospitalHandler(catalogService, matchingService, itineraryService, defaultWeights)
	compareHandler := handlers.NewCompareHandler(compareService)
	itineraryHandler := handlers.NewItineraryHandler(itineraryService)
	chatHandler := handlers.NewChatHandler(chatService)
	authHandler := handlers.NewAuthHandler(sessions, time.Duration(cfg.Session.TTLHours)*time.Hour, cfg.Env == "production")

	router := routes.NewRouter(
		hospitalHandler,
		compareHandler,
		itineraryHandler,
		chatHandler,
		authHandler,
		sessions,
		metrics,
		cfg.Server.ChatRateLimit,
		time.Duration(cfg.Server.ChatRateWindowSeconds)*time.Second,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}
