package v1

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types -package v1 -o types.gen.go openapi.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate gin -package v1 -o server.gen.go openapi.yaml

import (
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/services"
	"github.com/tupyy/achievement-tracker/internal/util"
)

// NewLibrary converts a snapshot to the API library, games in snapshot order.
func NewLibrary(s models.LibrarySnapshot) Library {
	games := make([]Game, 0, len(s.Games))
	for _, sum := range s.Summaries() {
		games = append(games, NewGame(sum))
	}

	lib := Library{
		FetchedAt: s.FetchedAt,
		Games:     games,
	}
	if s.RunID != "" {
		lib.RunId = util.Ptr(s.RunID)
	}
	return lib
}

func NewGame(sum models.GameSummary) Game {
	return Game{
		Appid:      sum.Game.AppID,
		Name:       sum.Game.Name,
		Icon:       services.ResolveGameIcon(sum.Game),
		Total:      sum.Total,
		Unlocked:   sum.Unlocked,
		Completion: util.Percent(sum.Unlocked, sum.Total),
	}
}

// NewAchievement converts a merged achievement. The icon is resolved to a URL.
func NewAchievement(m models.MergedAchievement) Achievement {
	return Achievement{
		Apiname:     m.APIName,
		DisplayName: m.DisplayName,
		Description: m.Description,
		Icon:        services.ResolveIcon(m),
		Achieved:    m.Unlocked(),
		Hidden:      m.Hidden,
		UnlockedAt:  util.UnixTime(m.UnlockTime),
	}
}

func NewGameAchievements(game models.Game, merged []models.MergedAchievement) GameAchievements {
	sum := models.GameSummary{Game: game}
	achievements := make([]Achievement, 0, len(merged))
	for _, m := range merged {
		sum.Total++
		if m.Unlocked() {
			sum.Unlocked++
		}
		achievements = append(achievements, NewAchievement(m))
	}
	return GameAchievements{
		Game:         NewGame(sum),
		Achievements: achievements,
	}
}

func NewCollection(c models.Collection) Collection {
	entries := make([]CollectionEntry, 0, len(c.Entries))
	for _, e := range c.Entries {
		entry := CollectionEntry{
			Appid:       e.AppID,
			Apiname:     e.APIName,
			DisplayName: e.DisplayName,
			Icon:        services.ResolveIcon(models.MergedAchievement{AppID: e.AppID, Icon: e.Icon}),
		}
		if e.GameName != "" {
			entry.GameName = util.Ptr(e.GameName)
		}
		entries = append(entries, entry)
	}
	return Collection{Name: c.Name, Entries: entries}
}

func NewCollectionList(collections []models.Collection) CollectionList {
	list := CollectionList{Collections: make([]Collection, 0, len(collections))}
	for _, c := range collections {
		list.Collections = append(list.Collections, NewCollection(c))
	}
	return list
}

// NewCredentials converts stored credentials. The API key is masked.
func NewCredentials(c models.Credentials) Credentials {
	creds := Credentials{
		SteamId: c.SteamID,
		ApiKey:  c.MaskedKey(),
	}
	if !c.UpdatedAt.IsZero() {
		creds.UpdatedAt = util.Ptr(c.UpdatedAt)
	}
	return creds
}
