package steam

import (
	"fmt"
	"strings"
)

const mediaBaseURL = "https://media.steampowered.com/steamcommunity/public/images/apps"

// IconURL expands an icon hash into a media URL. Absolute URLs are returned as is.
func IconURL(appID int, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return fmt.Sprintf("%s/%d/%s.jpg", mediaBaseURL, appID, ref)
}
