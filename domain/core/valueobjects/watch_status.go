package valueobjects

import (
	"fmt"
	"strings"

	pkgerrors "gamewatch-backend/pkg/errors"
)

// WatchStatus is the progress state of a watchlist entry.
// Transitions are unrestricted: users may re-shelve or un-finish a game,
// so any status may move to any other.
type WatchStatus string

const (
	StatusPlanned   WatchStatus = "planned"
	StatusPlaying   WatchStatus = "playing"
	StatusCompleted WatchStatus = "completed"
)

// AllStatuses lists every recognized watchlist status
var AllStatuses = []WatchStatus{StatusPlanned, StatusPlaying, StatusCompleted}

// ParseWatchStatus validates a raw status value
func ParseWatchStatus(raw string) (WatchStatus, error) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", pkgerrors.NewValidationError(
		fmt.Sprintf("status must be one of: %s", joinStatuses()),
	)
}

// AllowsReview reports whether a review may be posted under this status.
// Reviews require the user to have started or finished the game.
func (s WatchStatus) AllowsReview() bool {
	return s == StatusPlaying || s == StatusCompleted
}

func (s WatchStatus) String() string {
	return string(s)
}

func joinStatuses() string {
	names := make([]string, len(AllStatuses))
	for i, s := range AllStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
