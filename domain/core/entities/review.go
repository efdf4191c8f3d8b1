package entities

import (
	"math"
	"strings"
	"time"

	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"
)

// Review is a single user's review of a game. At most one exists per
// (user, game) pair; an upsert overwrites the whole record, including
// the username snapshot and the timestamp.
type Review struct {
	UserID        string                 `json:"user_id"`
	GameID        string                 `json:"game_id"`
	Rating        valueobjects.Rating    `json:"rating"`
	Comment       string                 `json:"comment"`
	Platform      valueobjects.Platform  `json:"platform"`
	PlaytimeHours float64                `json:"playtime_hours"`
	Username      string                 `json:"username"`
	CreatedAt     time.Time              `json:"created_at"`
}

// NewReview validates and creates a review
func NewReview(userID, gameID string, rating int, comment, platform string, playtimeHours float64, username string) (*Review, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("user id cannot be empty")
	}
	if gameID == "" {
		return nil, pkgerrors.NewValidationError("game id cannot be empty")
	}

	r, err := valueobjects.NewRating(rating)
	if err != nil {
		return nil, err
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, pkgerrors.NewValidationError("comment cannot be empty")
	}

	p, err := valueobjects.ParsePlatform(platform)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(playtimeHours) || math.IsInf(playtimeHours, 0) || playtimeHours < 0 {
		return nil, pkgerrors.NewValidationError("playtime hours must be a non-negative number")
	}

	return &Review{
		UserID:        userID,
		GameID:        gameID,
		Rating:        r,
		Comment:       comment,
		Platform:      p,
		PlaytimeHours: playtimeHours,
		Username:      username,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
