package services

import (
	"context"

	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	"gamewatch-backend/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGameRepository is a testify mock for ports.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGameRepository) Create(ctx context.Context, game *entities.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, gameID string) (*entities.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Game), args.Error(1)
}

func (m *MockGameRepository) List(ctx context.Context) ([]*entities.Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Game), args.Error(1)
}

func (m *MockGameRepository) Update(ctx context.Context, game *entities.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) UpdateStats(ctx context.Context, gameID string, reviewsCount int, averageRating float64) error {
	args := m.Called(ctx, gameID, reviewsCount, averageRating)
	return args.Error(0)
}

func (m *MockGameRepository) DeleteCascade(ctx context.Context, gameID string, entries []*entities.WatchlistEntry) error {
	args := m.Called(ctx, gameID, entries)
	return args.Error(0)
}

// MockReviewRepository is a testify mock for ports.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Put(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, userID, gameID string) (*entities.Review, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, userID, gameID string) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByGame(ctx context.Context, gameID string) ([]*entities.Review, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

// MockWatchlistRepository is a testify mock for ports.WatchlistRepository
type MockWatchlistRepository struct {
	mock.Mock
}

func (m *MockWatchlistRepository) Create(ctx context.Context, entry *entities.WatchlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Get(ctx context.Context, userID, gameID string) (*entities.WatchlistEntry, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) UpdateStatus(ctx context.Context, userID, gameID string, status valueobjects.WatchStatus) error {
	args := m.Called(ctx, userID, gameID, status)
	return args.Error(0)
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, userID, gameID string) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*entities.WatchlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WatchlistEntry), args.Error(1)
}

func (m *MockWatchlistRepository) ListByGame(ctx context.Context, gameID string) ([]*entities.WatchlistEntry, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WatchlistEntry), args.Error(1)
}

// MockUserRepository is a testify mock for ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

// MockEventBus is a testify mock for ports.EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventBus) PublishBatch(ctx context.Context, evs []events.DomainEvent) error {
	args := m.Called(ctx, evs)
	return args.Error(0)
}
