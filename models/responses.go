package models

// AuthResponse is returned by both login and registration.
// It never carries the password hash.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}
