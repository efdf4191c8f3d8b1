package handlers

import (
	"encoding/json"
	"net/http"

	"gamewatch-backend/application/services"
	"gamewatch-backend/domain/core/entities"
	"gamewatch-backend/pkg/common"
	pkgerrors "gamewatch-backend/pkg/errors"
	"gamewatch-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GameHandler handles game catalog HTTP requests
type GameHandler struct {
	gameService *services.GameService
	logger      *zap.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *services.GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		logger:      logger,
	}
}

// GameRequest is the request body for creating or updating a game
type GameRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Genre       string `json:"genre" validate:"required,min=1,max=100"`
	ReleaseDate string `json:"release_date" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description" validate:"max=5000"`
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	game, err := h.gameService.Create(r.Context(), req.Title, req.Genre, req.ReleaseDate, req.ImageURL, req.Description)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, game)
}

// GetGame handles GET /games/{gameID}
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	game, err := h.gameService.Get(r.Context(), gameID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, game)
}

// ListGames handles GET /games
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.List(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, games)
}

// UpdateGame handles PUT /games/{gameID}
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	game, err := h.gameService.Update(r.Context(), gameID, entities.GameDetails{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, game)
}

// DeleteGame handles DELETE /games/{gameID}
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	if err := h.gameService.Delete(r.Context(), gameID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "game deleted"})
}
