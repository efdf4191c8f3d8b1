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

// WatchlistHandler handles watchlist HTTP requests
type WatchlistHandler struct {
	watchlistService *services.WatchlistService
	logger           *zap.Logger
}

// NewWatchlistHandler creates a new watchlist handler
func NewWatchlistHandler(watchlistService *services.WatchlistService, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		logger:           logger,
	}
}

// AddWatchlistRequest is the request body for adding a game to the watchlist
type AddWatchlistRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=planned playing completed"`
}

// UpdateStatusRequest is the request body for a status change
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned playing completed"`
}

// AddEntry handles POST /watchlist
func (h *WatchlistHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}

	var req AddWatchlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	entry, err := h.watchlistService.Add(r.Context(), user.UserID, req.GameID, req.Status)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateStatus handles PUT /watchlist/{gameID}/status
func (h *WatchlistHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}
	gameID := chi.URLParam(r, "gameID")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	if err := h.watchlistService.UpdateStatus(r.Context(), user.UserID, gameID, req.Status); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// RemoveEntry handles DELETE /watchlist/{gameID}
func (h *WatchlistHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}
	gameID := chi.URLParam(r, "gameID")

	if err := h.watchlistService.Remove(r.Context(), user.UserID, gameID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "entry removed"})
}

// ListEntries handles GET /watchlist
func (h *WatchlistHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("unauthorized"))
		return
	}

	items, err := h.watchlistService.ListForUser(r.Context(), user.UserID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, items)
}
