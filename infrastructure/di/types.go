package di

import (
	"gamewatch-backend/application/ports"
	"gamewatch-backend/application/services"
	"gamewatch-backend/infrastructure/config"
	"gamewatch-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies.
// It is shared between Wire generation and manual initialization.
type Container struct {
	Config           *config.Config
	Logger           *zap.Logger
	GameRepo         ports.GameRepository
	ReviewRepo       ports.ReviewRepository
	WatchlistRepo    ports.WatchlistRepository
	UserRepo         ports.UserRepository
	EventBus         ports.EventBus
	Metrics          *observability.Metrics
	StatsService     *services.StatsService
	GameService      *services.GameService
	ReviewService    *services.ReviewService
	WatchlistService *services.WatchlistService
}
