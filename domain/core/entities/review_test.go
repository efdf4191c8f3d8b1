package entities

import (
	"math"
	"testing"

	pkgerrors "gamewatch-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview_Valid(t *testing.T) {
	review, err := NewReview("u1", "g1", 4, "  solid entry  ", "PC", 12.5, "alice")

	require.NoError(t, err)
	assert.Equal(t, "solid entry", review.Comment)
	assert.Equal(t, 4, review.Rating.Int())
	assert.Equal(t, "PC", review.Platform.String())
	assert.False(t, review.CreatedAt.IsZero())
}

func TestNewReview_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		gameID   string
		rating   int
		comment  string
		platform string
		playtime float64
	}{
		{"missing user", "", "g1", 4, "ok", "PC", 1},
		{"missing game", "u1", "", 4, "ok", "PC", 1},
		{"rating too low", "u1", "g1", 0, "ok", "PC", 1},
		{"rating too high", "u1", "g1", 6, "ok", "PC", 1},
		{"blank comment", "u1", "g1", 4, "   ", "PC", 1},
		{"unknown platform", "u1", "g1", 4, "ok", "Steam", 1},
		{"negative playtime", "u1", "g1", 4, "ok", "PC", -1},
		{"NaN playtime", "u1", "g1", 4, "ok", "PC", math.NaN()},
		{"infinite playtime", "u1", "g1", 4, "ok", "PC", math.Inf(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReview(tc.userID, tc.gameID, tc.rating, tc.comment, tc.platform, tc.playtime, "")
			assert.True(t, pkgerrors.IsValidation(err))
		})
	}
}

func TestNewReview_ZeroPlaytimeAllowed(t *testing.T) {
	_, err := NewReview("u1", "g1", 1, "refunded it", "PC", 0, "")
	assert.NoError(t, err)
}
