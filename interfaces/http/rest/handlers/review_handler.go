package handlers

import (
	"encoding/json"
	"net/http"

	"gamewatch-backend/application/services"
	"gamewatch-backend/pkg/auth"
	"gamewatch-backend/pkg/common"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
	logger        *zap.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// UpsertReviewRequest is the request body for writing a review
type UpsertReviewRequest struct {
	Rating        int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string  `json:"comment" validate:"required,min=1,max=5000"`
	Platform      string  `json:"platform" validate:"required"`
	PlaytimeHours float64 `json:"playtime_hours" validate:"gte=0"`
}

// UpsertReview handles PUT /games/{gameID}/reviews
func (h *ReviewHandler) UpsertReview(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}
	gameID := chi.URLParam(r, "gameID")

	var req UpsertReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	review, err := h.reviewService.Upsert(r.Context(), user.UserID, gameID, req.Rating, req.Comment, req.Platform, req.PlaytimeHours)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /games/{gameID}/reviews
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}
	gameID := chi.URLParam(r, "gameID")

	if err := h.reviewService.Delete(r.Context(), user.UserID, gameID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}

// DeleteReviewForUser handles DELETE /games/{gameID}/reviews/{userID},
// the moderation path for removing another user's review
func (h *ReviewHandler) DeleteReviewForUser(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	userID := chi.URLParam(r, "userID")

	if err := h.reviewService.Delete(r.Context(), userID, gameID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.logger.Info("Review removed by moderator",
		zap.String("userID", userID),
		zap.String("gameID", gameID),
	)

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}

// ListReviews handles GET /games/{gameID}/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	reviews, err := h.reviewService.ListForGame(r.Context(), gameID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, reviews)
}
