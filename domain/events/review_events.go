package events

// ReviewUpserted is raised when a review is created or overwritten
type ReviewUpserted struct {
	BaseEvent
	UserID string `json:"user_id"`
	GameID string `json:"game_id"`
	Rating int    `json:"rating"`
}

// NewReviewUpserted creates a ReviewUpserted event
func NewReviewUpserted(userID, gameID string, rating int) ReviewUpserted {
	return ReviewUpserted{
		BaseEvent: newBaseEvent(gameID, "review.upserted"),
		UserID:    userID,
		GameID:    gameID,
		Rating:    rating,
	}
}

// ReviewDeleted is raised when a review is removed
type ReviewDeleted struct {
	BaseEvent
	UserID string `json:"user_id"`
	GameID string `json:"game_id"`
}

// NewReviewDeleted creates a ReviewDeleted event
func NewReviewDeleted(userID, gameID string) ReviewDeleted {
	return ReviewDeleted{
		BaseEvent: newBaseEvent(gameID, "review.deleted"),
		UserID:    userID,
		GameID:    gameID,
	}
}
