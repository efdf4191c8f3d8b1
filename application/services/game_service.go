package services

import (
	"context"
	"time"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/events"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/observability"

	"go.uber.org/zap"
)

// GameService owns the game catalog: creation with atomic id allocation,
// lookups, attribute updates, and deletion with its watchlist cascade.
type GameService struct {
	gameRepo      ports.GameRepository
	watchlistRepo ports.WatchlistRepository
	eventBus      ports.EventBus
	metrics       *observability.Metrics
	logger        *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(
	gameRepo ports.GameRepository,
	watchlistRepo ports.WatchlistRepository,
	eventBus ports.EventBus,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		gameRepo:      gameRepo,
		watchlistRepo: watchlistRepo,
		eventBus:      eventBus,
		metrics:       metrics,
		logger:        logger,
	}
}

// Create registers a new game with a freshly allocated id and zeroed
// review aggregates.
//
// The id comes from an atomic counter, so collisions require an out-of
// band write to the Games table; the existence guard still catches that
// case and reports it as a retryable conflict.
func (s *GameService) Create(ctx context.Context, title, genre, releaseDate, imageURL, description string) (*entities.Game, error) {
	id, err := s.gameRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	game, err := entities.NewGame(id, title, genre, releaseDate, imageURL, description)
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		if pkgerrors.IsConflict(err) {
			return nil, pkgerrors.NewConflictError("game id already taken, retry the request").WithRetryable()
		}
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.NewGameCreated(game.ID, game.Title)); err != nil {
		s.logger.Warn("Failed to publish game event", zap.Error(err))
	}

	s.logger.Info("Game created",
		zap.String("gameID", game.ID),
		zap.String("title", game.Title),
	)

	return game, nil
}

// Get returns a single game
func (s *GameService) Get(ctx context.Context, gameID string) (*entities.Game, error) {
	return s.gameRepo.GetByID(ctx, gameID)
}

// List returns every game
func (s *GameService) List(ctx context.Context) ([]*entities.Game, error) {
	return s.gameRepo.List(ctx)
}

// Update overwrites the mutable attributes of a game, title included.
// The id is a surrogate key, so a title change is an ordinary single
// conditional update; created_at and the review aggregates carry over
// from the stored record untouched.
func (s *GameService) Update(ctx context.Context, gameID string, details entities.GameDetails) (*entities.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err := game.ApplyDetails(details); err != nil {
		return nil, err
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("Game updated", zap.String("gameID", gameID))

	return game, nil
}

// Delete removes a game and purges the watchlist entries referencing it.
//
// Game and entries are deleted in transactional chunks. A crash between
// chunks can still leave orphaned entries; watchlist reads tolerate them
// by rendering a missing game as an absent payload.
func (s *GameService) Delete(ctx context.Context, gameID string) error {
	start := time.Now()

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return err
	}

	entries, err := s.watchlistRepo.ListByGame(ctx, gameID)
	if err != nil {
		return err
	}

	if err := s.gameRepo.DeleteCascade(ctx, gameID, entries); err != nil {
		s.metrics.RecordOperation(ctx, "DeleteGameCascade", time.Since(start), err)
		return err
	}

	s.metrics.RecordOperation(ctx, "DeleteGameCascade", time.Since(start), nil)
	s.metrics.RecordCount(ctx, "WatchlistEntriesPurged", len(entries))

	if err := s.eventBus.Publish(ctx, events.NewGameDeleted(gameID, len(entries))); err != nil {
		s.logger.Warn("Failed to publish game event", zap.Error(err))
	}

	s.logger.Info("Game deleted",
		zap.String("gameID", gameID),
		zap.Int("watchlistPurged", len(entries)),
	)

	return nil
}
