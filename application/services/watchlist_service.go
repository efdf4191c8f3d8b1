package services

import (
	"context"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"

	"go.uber.org/zap"
)

// WatchlistService owns per-user per-game progress records.
// Status transitions are unrestricted within the three-value enum.
type WatchlistService struct {
	watchlistRepo ports.WatchlistRepository
	gameRepo      ports.GameRepository
	userRepo      ports.UserRepository
	logger        *zap.Logger
}

// NewWatchlistService creates a new watchlist service
func NewWatchlistService(
	watchlistRepo ports.WatchlistRepository,
	gameRepo ports.GameRepository,
	userRepo ports.UserRepository,
	logger *zap.Logger,
) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		gameRepo:      gameRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// Add puts a game on the user's watchlist. Both the user and the game
// must exist; a duplicate entry is rejected via the store's conditional
// write.
func (s *WatchlistService) Add(ctx context.Context, userID, gameID, status string) (*entities.WatchlistEntry, error) {
	entry, err := entities.NewWatchlistEntry(userID, gameID, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return nil, err
	}

	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		if pkgerrors.IsConflict(err) {
			return nil, pkgerrors.NewConflictError("game is already on the watchlist")
		}
		return nil, err
	}

	s.logger.Info("Watchlist entry added",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
		zap.String("status", status),
	)

	return entry, nil
}

// UpdateStatus overwrites the entry's status. Any direction is allowed;
// the write is unconditional.
func (s *WatchlistService) UpdateStatus(ctx context.Context, userID, gameID, status string) error {
	parsed, err := valueobjects.ParseWatchStatus(status)
	if err != nil {
		return err
	}

	if err := s.watchlistRepo.UpdateStatus(ctx, userID, gameID, parsed); err != nil {
		return err
	}

	s.logger.Info("Watchlist status updated",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
		zap.String("status", status),
	)

	return nil
}

// Remove deletes the entry. Removing an absent entry succeeds: absence
// is treated as already satisfied, unlike review deletion.
func (s *WatchlistService) Remove(ctx context.Context, userID, gameID string) error {
	if err := s.watchlistRepo.Delete(ctx, userID, gameID); err != nil {
		return err
	}

	s.logger.Info("Watchlist entry removed",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
	)

	return nil
}

// WatchlistItem is a watchlist entry enriched with its game record.
// Game is nil when the game was deleted after the entry was created.
type WatchlistItem struct {
	entities.WatchlistEntry
	Game *entities.Game `json:"game_data"`
}

// ListForUser returns the user's watchlist, each entry joined with its
// game. Entries whose game no longer exists are kept with an absent
// game payload rather than dropped, so cascade-delete orphans never
// break a listing.
func (s *WatchlistService) ListForUser(ctx context.Context, userID string) ([]WatchlistItem, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	entries, err := s.watchlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]WatchlistItem, 0, len(entries))
	for _, entry := range entries {
		item := WatchlistItem{WatchlistEntry: *entry}

		game, err := s.gameRepo.GetByID(ctx, entry.GameID)
		switch {
		case err == nil:
			item.Game = game
		case pkgerrors.IsNotFound(err):
			s.logger.Debug("Watchlist entry references deleted game",
				zap.String("userID", userID),
				zap.String("gameID", entry.GameID),
			)
		default:
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
