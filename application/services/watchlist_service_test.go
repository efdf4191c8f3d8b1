package services

import (
	"context"
	"testing"

	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	pkgerrors "gamewatch-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newWatchlistService(
	watchlistRepo *MockWatchlistRepository,
	gameRepo *MockGameRepository,
	userRepo *MockUserRepository,
) *WatchlistService {
	return NewWatchlistService(watchlistRepo, gameRepo, userRepo, zap.NewNop())
}

func TestWatchlistService_Add_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("GetByID", ctx, "u1").
		Return(&entities.User{ID: "u1", Username: "alice"}, nil)
	mockGameRepo.On("GetByID", ctx, "g1").Return(storedGame("g1", "Game"), nil)
	mockWatchlistRepo.On("Create", ctx, mock.AnythingOfType("*entities.WatchlistEntry")).Return(nil)

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	entry, err := svc.Add(ctx, "u1", "g1", "planned")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, valueobjects.StatusPlanned, entry.Status)
	assert.False(t, entry.AddedAt.IsZero())
	mockWatchlistRepo.AssertExpectations(t)
}

func TestWatchlistService_Add_DuplicateReportsConflict(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("GetByID", ctx, "u1").
		Return(&entities.User{ID: "u1"}, nil)
	mockGameRepo.On("GetByID", ctx, "g1").Return(storedGame("g1", "Game"), nil)
	mockWatchlistRepo.On("Create", ctx, mock.AnythingOfType("*entities.WatchlistEntry")).
		Return(pkgerrors.NewConflictError("watchlist entry already exists"))

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	_, err := svc.Add(ctx, "u1", "g1", "playing")

	// Assert
	assert.True(t, pkgerrors.IsConflict(err))
}

func TestWatchlistService_Add_UnknownGameRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("GetByID", ctx, "u1").
		Return(&entities.User{ID: "u1"}, nil)
	mockGameRepo.On("GetByID", ctx, "404").
		Return(nil, pkgerrors.NewNotFoundError("game"))

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	_, err := svc.Add(ctx, "u1", "404", "planned")

	// Assert
	assert.True(t, pkgerrors.IsNotFound(err))
	mockWatchlistRepo.AssertNotCalled(t, "Create")
}

func TestWatchlistService_Add_InvalidStatusRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	_, err := svc.Add(ctx, "u1", "g1", "abandoned")

	// Assert
	assert.True(t, pkgerrors.IsValidation(err))
	mockUserRepo.AssertNotCalled(t, "GetByID")
}

func TestWatchlistService_UpdateStatus_AnyDirectionAllowed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	// Un-finishing a game is a legal transition
	mockWatchlistRepo.On("UpdateStatus", ctx, "u1", "g1", valueobjects.StatusPlanned).Return(nil)

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	err := svc.UpdateStatus(ctx, "u1", "g1", "planned")

	// Assert
	assert.NoError(t, err)
	mockWatchlistRepo.AssertExpectations(t)
}

func TestWatchlistService_Remove_IsIdempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockWatchlistRepo.On("Delete", ctx, "u1", "g1").Return(nil)

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act: removing twice reports success both times
	err1 := svc.Remove(ctx, "u1", "g1")
	err2 := svc.Remove(ctx, "u1", "g1")

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	mockWatchlistRepo.AssertNumberOfCalls(t, "Delete", 2)
}

func TestWatchlistService_ListForUser_ToleratesDeletedGames(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("GetByID", ctx, "u1").
		Return(&entities.User{ID: "u1"}, nil)
	mockWatchlistRepo.On("ListByUser", ctx, "u1").Return([]*entities.WatchlistEntry{
		watchlistEntry("u1", "g1", valueobjects.StatusPlaying),
		watchlistEntry("u1", "gone", valueobjects.StatusPlanned),
	}, nil)
	mockGameRepo.On("GetByID", ctx, "g1").Return(storedGame("g1", "Alive"), nil)
	mockGameRepo.On("GetByID", ctx, "gone").
		Return(nil, pkgerrors.NewNotFoundError("game"))

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	items, err := svc.ListForUser(ctx, "u1")

	// Assert
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NotNil(t, items[0].Game)
	assert.Equal(t, "Alive", items[0].Game.Title)
	assert.Nil(t, items[1].Game)
}

func TestWatchlistService_ListForUser_UnknownUserRejected(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockWatchlistRepo := new(MockWatchlistRepository)
	mockGameRepo := new(MockGameRepository)
	mockUserRepo := new(MockUserRepository)

	mockUserRepo.On("GetByID", ctx, "ghost").
		Return(nil, pkgerrors.NewNotFoundError("user"))

	svc := newWatchlistService(mockWatchlistRepo, mockGameRepo, mockUserRepo)

	// Act
	_, err := svc.ListForUser(ctx, "ghost")

	// Assert
	assert.True(t, pkgerrors.IsNotFound(err))
	mockWatchlistRepo.AssertNotCalled(t, "ListByUser")
}
