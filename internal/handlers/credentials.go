package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/achievement-tracker/api/v1"
)

// GetCredentials returns the stored steam id and the masked api key
// (GET /settings/credentials)
func (h *Handler) GetCredentials(c *gin.Context) {
	creds, err := h.credentialsSrv.Get(c.Request.Context())
	if err != nil {
		writeError(c, "credentials_handler", "failed to read credentials", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCredentials(creds))
}

// PutCredentials stores the api key and steam id
// (PUT /settings/credentials)
func (h *Handler) PutCredentials(c *gin.Context) {
	var req v1.PutCredentialsJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	creds, err := h.credentialsSrv.Save(c.Request.Context(), req.ApiKey, req.SteamId)
	if err != nil {
		writeError(c, "credentials_handler", "failed to save credentials", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCredentials(creds))
}

// DeleteCredentials removes the stored credentials
// (DELETE /settings/credentials)
func (h *Handler) DeleteCredentials(c *gin.Context) {
	if err := h.credentialsSrv.Delete(c.Request.Context()); err != nil {
		writeError(c, "credentials_handler", "failed to delete credentials", err)
		return
	}
	c.Status(http.StatusNoContent)
}
