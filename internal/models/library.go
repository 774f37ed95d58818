package models

import "time"

// Game is one entry of the user's library as returned by the upstream API.
type Game struct {
	AppID   int    `json:"appid"`
	Name    string `json:"name"`
	IconRef string `json:"iconRef"`
}

// AchievementDefinition is the static schema of one achievement of a game.
type AchievementDefinition struct {
	APIName     string `json:"apiname"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	IconRef     string `json:"iconRef"`
	IconGrayRef string `json:"iconGrayRef"`
	Hidden      bool   `json:"hidden"`
}

// PlayerAchievementState tells whether the player unlocked one achievement.
type PlayerAchievementState struct {
	APIName    string `json:"apiname"`
	Achieved   int    `json:"achieved"`
	UnlockTime int64  `json:"unlockTime,omitempty"`
}

// MergedAchievement is a definition joined with the player's state.
// Identity is (AppID, APIName).
type MergedAchievement struct {
	AppID       int    `json:"appid"`
	APIName     string `json:"apiname"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Achieved    int    `json:"achieved"`
	Hidden      bool   `json:"hidden"`
	UnlockTime  int64  `json:"unlockTime,omitempty"`
}

func (m MergedAchievement) Unlocked() bool {
	return m.Achieved == 1
}

// LibrarySnapshot is the unit cached and invalidated as a whole.
type LibrarySnapshot struct {
	RunID              string                      `json:"runId"`
	SteamID            string                      `json:"steamId"`
	Games              []Game                      `json:"games"`
	AchievementsByGame map[int][]MergedAchievement `json:"achievementsByGame"`
	FetchedAt          time.Time                   `json:"fetchedAt"`
}

// Age returns how old the snapshot is at now.
func (s LibrarySnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.FetchedAt)
}

// GameSummary holds completion counts for one game of a snapshot.
type GameSummary struct {
	Game     Game
	Total    int
	Unlocked int
}

// Summaries returns completion counts in the snapshot's game order.
func (s LibrarySnapshot) Summaries() []GameSummary {
	summaries := make([]GameSummary, 0, len(s.Games))
	for _, g := range s.Games {
		sum := GameSummary{Game: g}
		for _, a := range s.AchievementsByGame[g.AppID] {
			sum.Total++
			if a.Unlocked() {
				sum.Unlocked++
			}
		}
		summaries = append(summaries, sum)
	}
	return summaries
}

// CachePolicy controls whether LoadLibrary may serve a cached snapshot.
type CachePolicy struct {
	ForceRefresh bool
	// FreshnessWindow overrides the service default when > 0.
	FreshnessWindow time.Duration
}
