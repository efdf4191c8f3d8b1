package ports

import (
	"context"

	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	"gamewatch-backend/domain/events"
)

// GameRepository owns the Games collection
type GameRepository interface {
	// NextID atomically allocates the next numeric game id
	NextID(ctx context.Context) (string, error)

	// Create writes a new game, failing with a conflict if the id exists
	Create(ctx context.Context, game *entities.Game) error

	// GetByID returns a game or a not-found error
	GetByID(ctx context.Context, gameID string) (*entities.Game, error)

	// List returns every game
	List(ctx context.Context) ([]*entities.Game, error)

	// Update overwrites the mutable attributes of an existing game,
	// preserving created_at and the derived aggregates
	Update(ctx context.Context, game *entities.Game) error

	// UpdateStats writes the derived aggregates onto an existing game.
	// It fails with a not-found error when the game record is absent.
	UpdateStats(ctx context.Context, gameID string, reviewsCount int, averageRating float64) error

	// DeleteCascade removes the game and the given watchlist entries
	// transactionally, in chunks bounded by the store's transaction size
	DeleteCascade(ctx context.Context, gameID string, entries []*entities.WatchlistEntry) error
}

// ReviewRepository owns the Reviews collection
type ReviewRepository interface {
	// Put writes or overwrites the single review for (user, game)
	Put(ctx context.Context, review *entities.Review) error

	// Get returns the review for (user, game) or a not-found error
	Get(ctx context.Context, userID, gameID string) (*entities.Review, error)

	// Delete removes the review for (user, game); absence is not an error
	// at this layer, the service decides the semantics
	Delete(ctx context.Context, userID, gameID string) error

	// ListByGame returns every review for a game via the game_id index.
	// No ordering is guaranteed.
	ListByGame(ctx context.Context, gameID string) ([]*entities.Review, error)
}

// WatchlistRepository owns the Watchlist collection
type WatchlistRepository interface {
	// Create inserts an entry, failing with a conflict if one exists
	Create(ctx context.Context, entry *entities.WatchlistEntry) error

	// Get returns the entry for (user, game) or a not-found error
	Get(ctx context.Context, userID, gameID string) (*entities.WatchlistEntry, error)

	// UpdateStatus overwrites the status unconditionally
	UpdateStatus(ctx context.Context, userID, gameID string, status valueobjects.WatchStatus) error

	// Delete removes the entry; deleting an absent entry is not an error
	Delete(ctx context.Context, userID, gameID string) error

	// ListByUser returns every entry on a user's watchlist
	ListByUser(ctx context.Context, userID string) ([]*entities.WatchlistEntry, error)

	// ListByGame returns every entry referencing a game via the game_id index
	ListByGame(ctx context.Context, gameID string) ([]*entities.WatchlistEntry, error)
}

// UserRepository reads the Users collection
type UserRepository interface {
	// GetByID returns a user or a not-found error
	GetByID(ctx context.Context, userID string) (*entities.User, error)
}

// EventBus publishes domain events
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
