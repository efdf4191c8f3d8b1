package events

// GameCreated is raised when a new game is registered
type GameCreated struct {
	BaseEvent
	GameID string `json:"game_id"`
	Title  string `json:"title"`
}

// NewGameCreated creates a GameCreated event
func NewGameCreated(gameID, title string) GameCreated {
	return GameCreated{
		BaseEvent: newBaseEvent(gameID, "game.created"),
		GameID:    gameID,
		Title:     title,
	}
}

// GameDeleted is raised after a game and its watchlist entries are removed
type GameDeleted struct {
	BaseEvent
	GameID          string `json:"game_id"`
	WatchlistPurged int    `json:"watchlist_purged"`
}

// NewGameDeleted creates a GameDeleted event
func NewGameDeleted(gameID string, watchlistPurged int) GameDeleted {
	return GameDeleted{
		BaseEvent:       newBaseEvent(gameID, "game.deleted"),
		GameID:          gameID,
		WatchlistPurged: watchlistPurged,
	}
}
