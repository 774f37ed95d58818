package models

// Collection is a user-defined named group of achievements across games.
type Collection struct {
	Name    string            `json:"name"`
	Entries []CollectionEntry `json:"entries"`
}

// Contains reports whether an entry with the same (AppID, APIName) is already present.
func (c Collection) Contains(appID int, apiName string) bool {
	for _, e := range c.Entries {
		if e.AppID == appID && e.APIName == apiName {
			return true
		}
	}
	return false
}

// CollectionEntry references one achievement. Display fields are copied at add time.
type CollectionEntry struct {
	AppID       int    `json:"appid"`
	APIName     string `json:"apiname"`
	GameName    string `json:"gameName,omitempty"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
}

// NewCollectionEntry denormalizes a merged achievement into an entry.
func NewCollectionEntry(gameName string, a MergedAchievement) CollectionEntry {
	return CollectionEntry{
		AppID:       a.AppID,
		APIName:     a.APIName,
		GameName:    gameName,
		DisplayName: a.DisplayName,
		Icon:        a.Icon,
	}
}
