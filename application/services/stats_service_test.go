package services

import (
	"context"
	"testing"

	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMetrics() *observability.Metrics {
	return observability.NewMetrics("Test", nil, zap.NewNop())
}

func reviewWithRating(userID, gameID string, rating int) *entities.Review {
	return &entities.Review{
		UserID: userID,
		GameID: gameID,
		Rating: valueobjects.Rating(rating),
	}
}

func TestStatsService_Recompute_AveragesRatings(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockReviewRepo := new(MockReviewRepository)
	mockGameRepo := new(MockGameRepository)

	mockReviewRepo.On("ListByGame", ctx, "g1").Return([]*entities.Review{
		reviewWithRating("u1", "g1", 3),
		reviewWithRating("u2", "g1", 5),
	}, nil)
	mockGameRepo.On("UpdateStats", ctx, "g1", 2, 4.0).Return(nil)

	svc := NewStatsService(mockReviewRepo, mockGameRepo, newTestMetrics(), zap.NewNop())

	// Act
	err := svc.Recompute(ctx, "g1")

	// Assert
	assert.NoError(t, err)
	mockGameRepo.AssertExpectations(t)
}

func TestStatsService_Recompute_EmptyResetsAggregates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockReviewRepo := new(MockReviewRepository)
	mockGameRepo := new(MockGameRepository)

	mockReviewRepo.On("ListByGame", ctx, "g1").Return([]*entities.Review{}, nil)
	mockGameRepo.On("UpdateStats", ctx, "g1", 0, 0.0).Return(nil)

	svc := NewStatsService(mockReviewRepo, mockGameRepo, newTestMetrics(), zap.NewNop())

	// Act
	err := svc.Recompute(ctx, "g1")

	// Assert
	assert.NoError(t, err)
	mockGameRepo.AssertExpectations(t)
}

func TestStatsService_Recompute_RoundsToOneDecimal(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockReviewRepo := new(MockReviewRepository)
	mockGameRepo := new(MockGameRepository)

	// 3+4+4 = 11/3 = 3.666... rounds to 3.7
	mockReviewRepo.On("ListByGame", ctx, "g1").Return([]*entities.Review{
		reviewWithRating("u1", "g1", 3),
		reviewWithRating("u2", "g1", 4),
		reviewWithRating("u3", "g1", 4),
	}, nil)
	mockGameRepo.On("UpdateStats", ctx, "g1", 3, 3.7).Return(nil)

	svc := NewStatsService(mockReviewRepo, mockGameRepo, newTestMetrics(), zap.NewNop())

	// Act
	err := svc.Recompute(ctx, "g1")

	// Assert
	assert.NoError(t, err)
	mockGameRepo.AssertExpectations(t)
}

func TestStatsService_Recompute_MissingGameSwallowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockReviewRepo := new(MockReviewRepository)
	mockGameRepo := new(MockGameRepository)

	mockReviewRepo.On("ListByGame", ctx, "gone").Return([]*entities.Review{
		reviewWithRating("u1", "gone", 4),
	}, nil)
	mockGameRepo.On("UpdateStats", ctx, "gone", 1, 4.0).
		Return(pkgerrors.NewNotFoundError("game"))

	svc := NewStatsService(mockReviewRepo, mockGameRepo, newTestMetrics(), zap.NewNop())

	// Act
	err := svc.Recompute(ctx, "gone")

	// Assert
	assert.NoError(t, err)
	mockGameRepo.AssertExpectations(t)
}

func TestStatsService_Recompute_ListFailurePropagates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockReviewRepo := new(MockReviewRepository)
	mockGameRepo := new(MockGameRepository)

	mockReviewRepo.On("ListByGame", ctx, "g1").
		Return(nil, pkgerrors.NewDatabaseError("query failed", nil))

	svc := NewStatsService(mockReviewRepo, mockGameRepo, newTestMetrics(), zap.NewNop())

	// Act
	err := svc.Recompute(ctx, "g1")

	// Assert
	assert.Error(t, err)
	mockGameRepo.AssertNotCalled(t, "UpdateStats")
}
