package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"titan-server/internal/config"
	"titan-server/internal/domain/chat"
	"titan-server/internal/domain/events"
	"titan-server/internal/infrastructure/completion"
	"titan-server/internal/infrastructure/database"
	"titan-server/internal/infrastructure/database/repository"
	"titan-server/internal/infrastructure/logger"
	"titan-server/internal/infrastructure/realtime"
	"titan-server/internal/infrastructure/scheduler"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideCompletionClient wires the chat completion client.
func ProvideCompletionClient(cfg *config.Config) chat.CompletionClient {
	return completion.NewClient(cfg)
}

// ProvideHub returns the realtime hub. It is always constructed so the /ws
// route can accept connections; broadcasting is gated separately.
func ProvideHub() *realtime.Hub {
	return realtime.NewHub()
}

// ProvideBroadcaster exposes the hub as the domain event sink, or a no-op
// sink when realtime is disabled.
func ProvideBroadcaster(cfg *config.Config, hub *realtime.Hub) events.Broadcaster {
	if !cfg.RealtimeEnabled {
		return events.NopBroadcaster{}
	}
	return hub
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB     *gorm.DB
	Hub    *realtime.Hub
	Logger zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	hub *realtime.Hub,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:     db,
		Hub:    hub,
		Logger: logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Completion client
	ProvideCompletionClient,

	// Realtime
	ProvideHub,
	ProvideBroadcaster,

	// Logger
	logger.GetLogger,

	// Autonomy scheduler
	scheduler.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
