package valueobjects

import (
	"testing"

	pkgerrors "gamewatch-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestNewRating_Bounds(t *testing.T) {
	for _, valid := range []int{1, 2, 3, 4, 5} {
		r, err := NewRating(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, r.Int())
	}

	for _, invalid := range []int{0, 6, -1, 100} {
		_, err := NewRating(invalid)
		assert.True(t, pkgerrors.IsValidation(err), "rating %d should be rejected", invalid)
	}
}

func TestParsePlatform(t *testing.T) {
	for _, valid := range []string{"PC", "PlayStation", "Xbox", "Nintendo", "Mobile"} {
		p, err := ParsePlatform(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, p.String())
	}

	// Case sensitive, no aliases
	for _, invalid := range []string{"pc", "Steam", "playstation", ""} {
		_, err := ParsePlatform(invalid)
		assert.True(t, pkgerrors.IsValidation(err), "platform %q should be rejected", invalid)
	}
}

func TestParseWatchStatus(t *testing.T) {
	for _, valid := range []string{"planned", "playing", "completed"} {
		s, err := ParseWatchStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	for _, invalid := range []string{"Planned", "dropped", ""} {
		_, err := ParseWatchStatus(invalid)
		assert.True(t, pkgerrors.IsValidation(err), "status %q should be rejected", invalid)
	}
}

func TestWatchStatus_AllowsReview(t *testing.T) {
	assert.False(t, StatusPlanned.AllowsReview())
	assert.True(t, StatusPlaying.AllowsReview())
	assert.True(t, StatusCompleted.AllowsReview())
}
