package models

import (
	"strings"
	"time"
)

// Credentials is the caller-supplied key/id pair used against the upstream API.
type Credentials struct {
	APIKey    string    `json:"apiKey"`
	SteamID   string    `json:"steamId"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

func (c Credentials) IsComplete() bool {
	return strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.SteamID) != ""
}

// MaskedKey returns the API key with everything but the last four characters hidden.
func (c Credentials) MaskedKey() string {
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}
