package entities

import "fmt"

// User is referenced by reviews and watchlist entries. This service only
// reads user records; account management lives elsewhere.
type User struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// DisplayName returns the username, falling back to a derived name when
// the record carries none
func (u *User) DisplayName() string {
	if u != nil && u.Username != "" {
		return u.Username
	}
	if u == nil {
		return ""
	}
	return FallbackUsername(u.ID)
}

// FallbackUsername is the placeholder used when no username is known
func FallbackUsername(userID string) string {
	return fmt.Sprintf("User_%s", userID)
}
