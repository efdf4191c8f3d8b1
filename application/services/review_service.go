package services

import (
	"context"
	"time"

	"gamewatch-backend/application/ports"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/events"
	pkgerrors "gamewatch-backend/pkg/errors"

	"go.uber.org/zap"
)

// postedAtUnknown is returned when a review carries no creation timestamp
const postedAtUnknown = "unknown"

// ReviewService owns review mutations and the watchlist eligibility gate
type ReviewService struct {
	reviewRepo    ports.ReviewRepository
	watchlistRepo ports.WatchlistRepository
	userRepo      ports.UserRepository
	stats         *StatsService
	eventBus      ports.EventBus
	logger        *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	reviewRepo ports.ReviewRepository,
	watchlistRepo ports.WatchlistRepository,
	userRepo ports.UserRepository,
	stats *StatsService,
	eventBus ports.EventBus,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:    reviewRepo,
		watchlistRepo: watchlistRepo,
		userRepo:      userRepo,
		stats:         stats,
		eventBus:      eventBus,
		logger:        logger,
	}
}

// Upsert writes or overwrites the single review for (user, game).
//
// The caller must have the game on their watchlist with a status beyond
// planned; otherwise the write is rejected as not eligible. The username
// is snapshotted at write time, and the game's aggregates are recomputed
// before returning.
func (s *ReviewService) Upsert(ctx context.Context, userID, gameID string, rating int, comment, platform string, playtimeHours float64) (*entities.Review, error) {
	review, err := entities.NewReview(userID, gameID, rating, comment, platform, playtimeHours, "")
	if err != nil {
		return nil, err
	}

	entry, err := s.watchlistRepo.Get(ctx, userID, gameID)
	if pkgerrors.IsNotFound(err) {
		return nil, pkgerrors.NewNotEligibleError("game must be on your watchlist before reviewing")
	}
	if err != nil {
		return nil, err
	}
	if !entry.Status.AllowsReview() {
		return nil, pkgerrors.NewNotEligibleError("reviews require the game to be started or finished")
	}

	review.Username = s.resolveUsername(ctx, userID)

	if err := s.reviewRepo.Put(ctx, review); err != nil {
		return nil, err
	}

	// Derived aggregates on the Game record change as a side effect
	if err := s.stats.Recompute(ctx, gameID); err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, events.NewReviewUpserted(userID, gameID, rating)); err != nil {
		s.logger.Warn("Failed to publish review event", zap.Error(err))
	}

	s.logger.Info("Review upserted",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
		zap.Int("rating", rating),
	)

	return review, nil
}

// Delete removes the user's review for a game and recomputes aggregates.
//
// Deleting an absent review is an error: repeating the call reports
// not-found the second time. Callers must treat deletion as a state
// transition, not an idempotent operation.
func (s *ReviewService) Delete(ctx context.Context, userID, gameID string) error {
	if _, err := s.reviewRepo.Get(ctx, userID, gameID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, userID, gameID); err != nil {
		return err
	}

	if err := s.stats.Recompute(ctx, gameID); err != nil {
		return err
	}

	if err := s.eventBus.Publish(ctx, events.NewReviewDeleted(userID, gameID)); err != nil {
		s.logger.Warn("Failed to publish review event", zap.Error(err))
	}

	s.logger.Info("Review deleted",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
	)

	return nil
}

// ReviewView is a review enriched for listings
type ReviewView struct {
	entities.Review
	PostedAt string `json:"posted_at"`
}

// ListForGame returns every review for a game, in no guaranteed order.
// Each entry carries a posted_at derived from its creation timestamp and
// a username fallback for records written before snapshots existed.
func (s *ReviewService) ListForGame(ctx context.Context, gameID string) ([]ReviewView, error) {
	reviews, err := s.reviewRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, review := range reviews {
		view := ReviewView{Review: *review, PostedAt: postedAtUnknown}
		if !review.CreatedAt.IsZero() {
			view.PostedAt = review.CreatedAt.Format(time.RFC3339)
		}
		if view.Username == "" {
			view.Username = entities.FallbackUsername(review.UserID)
		}
		views = append(views, view)
	}

	return views, nil
}

// resolveUsername snapshots the reviewer's current username. Lookup
// failures fall back to a derived placeholder instead of failing the
// review write.
func (s *ReviewService) resolveUsername(ctx context.Context, userID string) string {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !pkgerrors.IsNotFound(err) {
			s.logger.Warn("Username lookup failed, using fallback",
				zap.String("userID", userID),
				zap.Error(err),
			)
		}
		return entities.FallbackUsername(userID)
	}
	return user.DisplayName()
}
