package entities

import (
	"strings"
	"time"

	pkgerrors "gamewatch-backend/pkg/errors"
)

// Game is a tracked game. The id is an immutable surrogate assigned from
// an atomic counter; the title is a plain, freely mutable attribute.
// ReviewsCount and AverageRating are derived from the Reviews collection
// and written only by the stats recomputation path.
type Game struct {
	ID            string    `json:"game_id"`
	Title         string    `json:"title"`
	Genre         string    `json:"genre"`
	ReleaseDate   string    `json:"release_date"`
	ImageURL      string    `json:"image_url"`
	Description   string    `json:"description"`
	ReviewsCount  int       `json:"reviews_count"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewGame creates a game with zeroed aggregates
func NewGame(id, title, genre, releaseDate, imageURL, description string) (*Game, error) {
	if id == "" {
		return nil, pkgerrors.NewValidationError("game id cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, pkgerrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(genre) == "" {
		return nil, pkgerrors.NewValidationError("genre cannot be empty")
	}
	if releaseDate == "" {
		return nil, pkgerrors.NewValidationError("release date cannot be empty")
	}
	if imageURL == "" {
		return nil, pkgerrors.NewValidationError("image URL cannot be empty")
	}

	return &Game{
		ID:            id,
		Title:         strings.TrimSpace(title),
		Genre:         strings.TrimSpace(genre),
		ReleaseDate:   releaseDate,
		ImageURL:      imageURL,
		Description:   description,
		ReviewsCount:  0,
		AverageRating: 0,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// GameDetails are the caller-mutable attributes of a game
type GameDetails struct {
	Title       string
	Genre       string
	ReleaseDate string
	ImageURL    string
	Description string
}

// ApplyDetails overwrites the mutable attributes, leaving the id,
// creation timestamp and derived aggregates untouched
func (g *Game) ApplyDetails(d GameDetails) error {
	if strings.TrimSpace(d.Title) == "" {
		return pkgerrors.NewValidationError("title cannot be empty")
	}
	if strings.TrimSpace(d.Genre) == "" {
		return pkgerrors.NewValidationError("genre cannot be empty")
	}
	if d.ReleaseDate == "" {
		return pkgerrors.NewValidationError("release date cannot be empty")
	}
	if d.ImageURL == "" {
		return pkgerrors.NewValidationError("image URL cannot be empty")
	}

	g.Title = strings.TrimSpace(d.Title)
	g.Genre = strings.TrimSpace(d.Genre)
	g.ReleaseDate = d.ReleaseDate
	g.ImageURL = d.ImageURL
	g.Description = d.Description
	return nil
}
