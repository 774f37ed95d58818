package services

import (
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/pkg/steam"
)

// Merge left-joins a game's definitions with the player's state.
// The result follows definition order; a definition without state is locked.
func Merge(appID int, definitions []models.AchievementDefinition, states []models.PlayerAchievementState) []models.MergedAchievement {
	lookup := make(map[string]models.PlayerAchievementState, len(states))
	for _, st := range states {
		lookup[st.APIName] = st
	}

	merged := make([]models.MergedAchievement, 0, len(definitions))
	for _, d := range definitions {
		m := models.MergedAchievement{
			AppID:       appID,
			APIName:     d.APIName,
			DisplayName: d.DisplayName,
			Description: d.Description,
			Hidden:      d.Hidden,
		}
		if st, ok := lookup[d.APIName]; ok && st.Achieved == 1 {
			m.Achieved = 1
			m.UnlockTime = st.UnlockTime
		}
		if m.Achieved == 1 {
			m.Icon = d.IconRef
		} else {
			m.Icon = d.IconGrayRef
		}
		merged = append(merged, m)
	}
	return merged
}

// ResolveIcon returns the URL to render for a merged achievement.
func ResolveIcon(m models.MergedAchievement) string {
	return steam.IconURL(m.AppID, m.Icon)
}

// ResolveGameIcon returns the URL to render for a game.
func ResolveGameIcon(g models.Game) string {
	return steam.IconURL(g.AppID, g.IconRef)
}
