package valueobjects

import (
	pkgerrors "gamewatch-backend/pkg/errors"
)

// Rating is a whole-star review rating
type Rating int

const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

// NewRating validates a rating value
func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if r < MinRating || r > MaxRating {
		return 0, pkgerrors.NewValidationError("rating must be a whole number between 1 and 5")
	}
	return r, nil
}

func (r Rating) Int() int {
	return int(r)
}
