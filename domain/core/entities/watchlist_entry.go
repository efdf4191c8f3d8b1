package entities

import (
	"time"

	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"
)

// WatchlistEntry marks a game on a user's watchlist with a progress status
type WatchlistEntry struct {
	UserID  string                   `json:"user_id"`
	GameID  string                   `json:"game_id"`
	Status  valueobjects.WatchStatus `json:"status"`
	AddedAt time.Time                `json:"added_at"`
}

// NewWatchlistEntry validates and creates a watchlist entry
func NewWatchlistEntry(userID, gameID, status string) (*WatchlistEntry, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("user id cannot be empty")
	}
	if gameID == "" {
		return nil, pkgerrors.NewValidationError("game id cannot be empty")
	}

	s, err := valueobjects.ParseWatchStatus(status)
	if err != nil {
		return nil, err
	}

	return &WatchlistEntry{
		UserID:  userID,
		GameID:  gameID,
		Status:  s,
		AddedAt: time.Now().UTC(),
	}, nil
}
