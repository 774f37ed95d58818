package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/util"
)

// GetLibrary returns the games with achievements and their completion
// (GET /library)
func (h *Handler) GetLibrary(c *gin.Context, params v1.GetLibraryParams) {
	creds, err := h.credentialsSrv.Get(c.Request.Context())
	if err != nil {
		writeError(c, "library_handler", "failed to read credentials", err)
		return
	}

	policy := models.CachePolicy{}
	if params.Refresh != nil {
		policy.ForceRefresh = *params.Refresh
	}

	snapshot, err := h.librarySrv.LoadLibrary(c.Request.Context(), creds, policy)
	if err != nil {
		writeError(c, "library_handler", "failed to load library", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewLibrary(*snapshot))
}

// RefreshLibrary drops the cache and aggregates the library again
// (POST /library/refresh)
func (h *Handler) RefreshLibrary(c *gin.Context) {
	h.GetLibrary(c, v1.GetLibraryParams{Refresh: util.Ptr(true)})
}

// GetGameAchievements returns the merged achievements of one game
// (GET /library/games/{appid}/achievements)
func (h *Handler) GetGameAchievements(c *gin.Context, appid int) {
	creds, err := h.credentialsSrv.Get(c.Request.Context())
	if err != nil {
		writeError(c, "library_handler", "failed to read credentials", err)
		return
	}

	game, merged, err := h.librarySrv.GameAchievements(c.Request.Context(), creds, appid)
	if err != nil {
		writeError(c, "library_handler", "failed to load achievements", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewGameAchievements(game, merged))
}
