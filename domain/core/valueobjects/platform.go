package valueobjects

import (
	"fmt"
	"strings"

	pkgerrors "gamewatch-backend/pkg/errors"
)

// Platform is the platform a review was played on
type Platform string

const (
	PlatformPC          Platform = "PC"
	PlatformPlayStation Platform = "PlayStation"
	PlatformXbox        Platform = "Xbox"
	PlatformNintendo    Platform = "Nintendo"
	PlatformMobile      Platform = "Mobile"
)

// AllPlatforms lists every recognized platform
var AllPlatforms = []Platform{
	PlatformPC,
	PlatformPlayStation,
	PlatformXbox,
	PlatformNintendo,
	PlatformMobile,
}

// ParsePlatform validates a raw platform value
func ParsePlatform(raw string) (Platform, error) {
	for _, p := range AllPlatforms {
		if string(p) == raw {
			return p, nil
		}
	}
	return "", pkgerrors.NewValidationError(
		fmt.Sprintf("platform must be one of: %s", joinPlatforms()),
	)
}

func (p Platform) String() string {
	return string(p)
}

func joinPlatforms() string {
	names := make([]string, len(AllPlatforms))
	for i, p := range AllPlatforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
