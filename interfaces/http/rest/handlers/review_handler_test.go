package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamewatch-backend/application/services"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/domain/core/valueobjects"
	"gamewatch-backend/domain/events"
	"gamewatch-backend/interfaces/http/rest/middleware"
	"gamewatch-backend/pkg/auth"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReviewRepo struct {
	reviews map[[2]string]*entities.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[[2]string]*entities.Review)}
}

func (s *stubReviewRepo) Put(ctx context.Context, review *entities.Review) error {
	s.reviews[[2]string{review.UserID, review.GameID}] = review
	return nil
}

func (s *stubReviewRepo) Get(ctx context.Context, userID, gameID string) (*entities.Review, error) {
	review, ok := s.reviews[[2]string{userID, gameID}]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("review")
	}
	return review, nil
}

func (s *stubReviewRepo) Delete(ctx context.Context, userID, gameID string) error {
	delete(s.reviews, [2]string{userID, gameID})
	return nil
}

func (s *stubReviewRepo) ListByGame(ctx context.Context, gameID string) ([]*entities.Review, error) {
	reviews := make([]*entities.Review, 0)
	for key, review := range s.reviews {
		if key[1] == gameID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

type statsCall struct {
	gameID        string
	reviewsCount  int
	averageRating float64
}

type stubGameRepo struct {
	statsCalls []statsCall
}

func (s *stubGameRepo) NextID(ctx context.Context) (string, error) { return "1", nil }

func (s *stubGameRepo) Create(ctx context.Context, game *entities.Game) error { return nil }

func (s *stubGameRepo) GetByID(ctx context.Context, gameID string) (*entities.Game, error) {
	return &entities.Game{ID: gameID, Title: "Game"}, nil
}

func (s *stubGameRepo) List(ctx context.Context) ([]*entities.Game, error) { return nil, nil }

func (s *stubGameRepo) Update(ctx context.Context, game *entities.Game) error { return nil }

func (s *stubGameRepo) UpdateStats(ctx context.Context, gameID string, reviewsCount int, averageRating float64) error {
	s.statsCalls = append(s.statsCalls, statsCall{gameID, reviewsCount, averageRating})
	return nil
}

func (s *stubGameRepo) DeleteCascade(ctx context.Context, gameID string, entries []*entities.WatchlistEntry) error {
	return nil
}

type stubWatchlistRepo struct{}

func (s *stubWatchlistRepo) Create(ctx context.Context, entry *entities.WatchlistEntry) error {
	return nil
}

func (s *stubWatchlistRepo) Get(ctx context.Context, userID, gameID string) (*entities.WatchlistEntry, error) {
	return &entities.WatchlistEntry{UserID: userID, GameID: gameID, Status: valueobjects.StatusPlaying}, nil
}

func (s *stubWatchlistRepo) UpdateStatus(ctx context.Context, userID, gameID string, status valueobjects.WatchStatus) error {
	return nil
}

func (s *stubWatchlistRepo) Delete(ctx context.Context, userID, gameID string) error { return nil }

func (s *stubWatchlistRepo) ListByUser(ctx context.Context, userID string) ([]*entities.WatchlistEntry, error) {
	return nil, nil
}

func (s *stubWatchlistRepo) ListByGame(ctx context.Context, gameID string) ([]*entities.WatchlistEntry, error) {
	return nil, nil
}

type stubUserRepo struct{}

func (s *stubUserRepo) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	return nil, pkgerrors.NewNotFoundError("user")
}

type stubEventBus struct{}

func (s *stubEventBus) Publish(ctx context.Context, event events.DomainEvent) error { return nil }

func (s *stubEventBus) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	return nil
}

type reviewHandlerFixture struct {
	reviewRepo *stubReviewRepo
	gameRepo   *stubGameRepo
	handler    *ReviewHandler
}

func newReviewHandlerFixture() *reviewHandlerFixture {
	logger := zap.NewNop()
	reviewRepo := newStubReviewRepo()
	gameRepo := &stubGameRepo{}
	metrics := observability.NewMetrics("Test", nil, logger)

	stats := services.NewStatsService(reviewRepo, gameRepo, metrics, logger)
	svc := services.NewReviewService(reviewRepo, &stubWatchlistRepo{}, &stubUserRepo{}, stats, &stubEventBus{}, logger)

	return &reviewHandlerFixture{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		handler:    NewReviewHandler(svc, logger),
	}
}

// reviewRoutes mirrors the router's review bindings, with the caller's
// identity injected instead of a real token
func (f *reviewHandlerFixture) reviewRoutes(user *auth.UserContext) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), user)))
		})
	})
	router.Route("/games/{gameID}/reviews", func(r chi.Router) {
		r.Delete("/", f.handler.DeleteReview)
		r.With(middleware.RequireRole("admin")).Delete("/{userID}", f.handler.DeleteReviewForUser)
	})
	return router
}

func seedReview(t *testing.T, repo *stubReviewRepo, userID, gameID string) {
	t.Helper()
	review, err := entities.NewReview(userID, gameID, 4, "good", "PC", 10, "bob")
	require.NoError(t, err)
	review.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Put(context.Background(), review))
}

func TestDeleteReviewForUser_AdminRemovesAnotherUsersReview(t *testing.T) {
	// Arrange
	fx := newReviewHandlerFixture()
	seedReview(t, fx.reviewRepo, "u2", "g1")
	routes := fx.reviewRoutes(&auth.UserContext{UserID: "u1", Roles: []string{"admin"}})

	// Act
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/games/g1/reviews/u2", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := fx.reviewRepo.Get(context.Background(), "u2", "g1")
	assert.True(t, pkgerrors.IsNotFound(err))

	// Aggregates were recomputed after the removal
	require.NotEmpty(t, fx.gameRepo.statsCalls)
	last := fx.gameRepo.statsCalls[len(fx.gameRepo.statsCalls)-1]
	assert.Equal(t, statsCall{"g1", 0, 0.0}, last)
}

func TestDeleteReviewForUser_NonAdminForbidden(t *testing.T) {
	// Arrange
	fx := newReviewHandlerFixture()
	seedReview(t, fx.reviewRepo, "u2", "g1")
	routes := fx.reviewRoutes(&auth.UserContext{UserID: "u1", Roles: []string{"user"}})

	// Act
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/games/g1/reviews/u2", nil))

	// Assert
	assert.Equal(t, http.StatusForbidden, rec.Code)
	_, err := fx.reviewRepo.Get(context.Background(), "u2", "g1")
	assert.NoError(t, err)
}

func TestDeleteReviewForUser_AbsentReviewReportsNotFound(t *testing.T) {
	// Arrange
	fx := newReviewHandlerFixture()
	routes := fx.reviewRoutes(&auth.UserContext{UserID: "u1", Roles: []string{"admin"}})

	// Act
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/games/g1/reviews/ghost", nil))

	// Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteReview_RemovesOwnReview(t *testing.T) {
	// Arrange
	fx := newReviewHandlerFixture()
	seedReview(t, fx.reviewRepo, "u1", "g1")
	routes := fx.reviewRoutes(&auth.UserContext{UserID: "u1", Roles: []string{"user"}})

	// Act
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/games/g1/reviews", nil))

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := fx.reviewRepo.Get(context.Background(), "u1", "g1")
	assert.True(t, pkgerrors.IsNotFound(err))
}
