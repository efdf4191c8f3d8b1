package services

import (
	"context"
	"math"
	"time"

	"gamewatch-backend/application/ports"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/observability"

	"go.uber.org/zap"
)

// StatsService recomputes a game's derived review aggregates.
// It is the only writer of reviews_count and average_rating.
//
// Recomputation is a full rescan of the game's reviews rather than an
// incremental update: concurrent single-item writes cannot compound an
// error into the aggregate, at the cost of an O(n) query per mutation.
type StatsService struct {
	reviewRepo ports.ReviewRepository
	gameRepo   ports.GameRepository
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(
	reviewRepo ports.ReviewRepository,
	gameRepo ports.GameRepository,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Recompute reads every review for the game and writes the aggregate
// count and mean rating onto the Game record.
//
// A missing Game record is logged and swallowed: recomputation runs on
// request paths that must not fail because the game disappeared in a
// concurrent delete.
func (s *StatsService) Recompute(ctx context.Context, gameID string) error {
	start := time.Now()

	reviews, err := s.reviewRepo.ListByGame(ctx, gameID)
	if err != nil {
		s.metrics.RecordOperation(ctx, "RecomputeGameStats", time.Since(start), err)
		return pkgerrors.Wrap(err, "failed to read reviews for recomputation")
	}

	count := len(reviews)
	average := 0.0
	if count > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating.Int()
		}
		average = roundToOneDecimal(float64(sum) / float64(count))
	}

	err = s.gameRepo.UpdateStats(ctx, gameID, count, average)
	if pkgerrors.IsNotFound(err) {
		s.logger.Warn("Game record absent during stats recomputation",
			zap.String("gameID", gameID),
			zap.Int("reviewsCount", count),
		)
		s.metrics.RecordOperation(ctx, "RecomputeGameStats", time.Since(start), nil)
		return nil
	}
	if err != nil {
		s.metrics.RecordOperation(ctx, "RecomputeGameStats", time.Since(start), err)
		return err
	}

	s.metrics.RecordOperation(ctx, "RecomputeGameStats", time.Since(start), nil)
	s.logger.Debug("Game stats recomputed",
		zap.String("gameID", gameID),
		zap.Int("reviewsCount", count),
		zap.Float64("averageRating", average),
	)

	return nil
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
